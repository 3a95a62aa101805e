package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/shaj13/go-guardian/auth"
	"github.com/shaj13/go-guardian/auth/strategies/bearer"
	"github.com/shaj13/go-guardian/store"
	"go.uber.org/zap"

	"github.com/codementee/codementee-api/models"
)

var authenticator auth.Authenticator
var cache store.Cache

// MiddlewareJWT holds the secret used to verify bearer tokens
type MiddlewareJWT struct {
	Secret string
}

// SetupGoGuardian sets up the go-guardian middleware
func (m MiddlewareJWT) SetupGoGuardian() {
	authenticator = auth.New()
	cache = store.NewFIFO(context.Background(), time.Minute*5)
	tokenStrategy := bearer.New(m.verifyToken, cache)

	authenticator.EnableStrategy(bearer.CachedStrategyKey, tokenStrategy)
}

// verifyToken parses and validates a signed JWT and maps its claims to an
// auth.Info. Tokens signed with anything but HMAC are rejected.
func (m MiddlewareJWT) verifyToken(ctx context.Context, r *http.Request, tokenString string) (auth.Info, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(m.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	sub, _ := claims["sub"].(string)
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if sub == "" || role == "" {
		return nil, fmt.Errorf("token missing subject or role")
	}

	extensions := map[string][]string{
		"role":  {role},
		"email": {email},
	}
	return auth.NewDefaultUser(name, sub, nil, extensions), nil
}

// Middleware adds bearer token authentication around accessing the routes
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		user, err := authenticator.Authenticate(r)
		if err != nil {
			zap.S().Errorw("unauthorized",
				"url", r.URL)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "unauthorized"}`))
			return
		}
		zap.S().Debugf("User %s Authenticated\n", user.UserName())

		actor := Actor{
			ID:   user.ID(),
			Name: user.UserName(),
		}
		if ext := user.Extensions(); ext != nil {
			if roles, ok := ext["role"]; ok && len(roles) > 0 {
				actor.Role = models.Role(roles[0])
			}
			if emails, ok := ext["email"]; ok && len(emails) > 0 {
				actor.Email = emails[0]
			}
		}
		next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
	})
}

// RequireRole rejects any caller whose role is not in the allowed set. It must
// wrap handlers inside Middleware so the actor is already on the context.
func RequireRole(next http.Handler, roles ...models.Role) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ActorFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "unauthorized"}`))
			return
		}
		for _, role := range roles {
			if actor.Role == role {
				next.ServeHTTP(w, r)
				return
			}
		}
		zap.S().Warnw("forbidden",
			"url", r.URL,
			"role", actor.Role)
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": "forbidden"}`))
	})
}
