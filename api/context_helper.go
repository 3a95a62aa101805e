package api

import (
	"context"
	"time"

	"github.com/codementee/codementee-api/models"
)

// QueryTimeout is the default timeout for database queries
const QueryTimeout = 10 * time.Second

type contextKey string

const actorKey contextKey = "actor"

// Actor is the authenticated caller extracted from the bearer token
type Actor struct {
	ID    string
	Name  string
	Email string
	Role  models.Role
}

// WithActor stores the authenticated actor on the request context
func WithActor(parent context.Context, actor Actor) context.Context {
	return context.WithValue(parent, actorKey, actor)
}

// ActorFromContext returns the authenticated actor, if any
func ActorFromContext(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKey).(Actor)
	return actor, ok
}

// WithQueryTimeout creates a context with query timeout
func WithQueryTimeout(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, QueryTimeout)
}

