package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/codementee/codementee-api/api"
	"github.com/codementee/codementee-api/config"
	"github.com/codementee/codementee-api/databases"
	"github.com/codementee/codementee-api/models"
)

// MeetLink exported for testing purposes
type MeetLink struct {
	DB databases.MeetLinkDatabase
}

type createMeetLinkRequest struct {
	Link string `json:"link"`
	Name string `json:"name"`
}

// CreateMeetLinkHandler adds a reusable meeting room URL to the pool
func (m MeetLink) CreateMeetLinkHandler(w http.ResponseWriter, r *http.Request) {
	var req createMeetLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.Link == "" {
		config.ErrorStatus("link is required", http.StatusBadRequest, w, fmt.Errorf("missing link"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	link := models.MeetLink{
		ID:        uuid.New().String(),
		Link:      req.Link,
		Name:      req.Name,
		Status:    models.LinkAvailable,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := m.DB.InsertOne(ctx, link); err != nil {
		config.ErrorStatus("failed to create meet link", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(link)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// MeetLinksHandler returns the whole meet link pool, optionally filtered by
// status
func (m MeetLink) MeetLinksHandler(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := m.DB.Find(ctx, filter)
	if err != nil {
		config.ErrorStatus("failed to get meet links", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.MeetLink{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ReleaseMeetLinkHandler returns a link to the available pool after the
// interview happened. Turnover is manual and admin-driven; nothing releases
// links automatically.
func (m MeetLink) ReleaseMeetLinkHandler(w http.ResponseWriter, r *http.Request) {
	linkID := mux.Vars(r)["link_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	link, err := m.DB.FindOne(ctx, bson.M{"id": linkID})
	if err != nil {
		config.ErrorStatus("meet link not found", http.StatusNotFound, w, err)
		return
	}

	if err := m.DB.Release(ctx, linkID); err != nil {
		config.ErrorStatus("failed to release meet link", http.StatusInternalServerError, w, err)
		return
	}

	zap.S().Infow("meet link released",
		"link_id", linkID,
		"previous_booking_id", link.CurrentBookingID)

	b, _ := json.Marshal(map[string]string{
		"id":     linkID,
		"status": models.LinkAvailable,
	})
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
