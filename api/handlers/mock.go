package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/codementee/codementee-api/api"
	"github.com/codementee/codementee-api/config"
	"github.com/codementee/codementee-api/databases"
	"github.com/codementee/codementee-api/models"
)

// Mock exported for testing purposes
type Mock struct {
	DB  databases.MockInterviewDatabase
	UDB databases.UserDatabase
}

type createMockRequest struct {
	MenteeID    string `json:"mentee_id"`
	MentorID    string `json:"mentor_id"`
	CompanyName string `json:"company_name"`
	ScheduledAt string `json:"scheduled_at"`
	MeetLink    string `json:"meet_link"`
}

// CreateMockHandler schedules a mock interview directly, bypassing the slot
// and meet link pools entirely. Admins name the mentor; mentors schedule for
// themselves.
func (m Mock) CreateMockHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := api.ActorFromContext(r.Context())
	if !ok {
		config.ErrorStatus("no authenticated actor", http.StatusUnauthorized, w, fmt.Errorf("missing actor"))
		return
	}

	var req createMockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.MenteeID == "" || req.ScheduledAt == "" {
		config.ErrorStatus("mentee_id and scheduled_at are required", http.StatusBadRequest, w, fmt.Errorf("missing required fields"))
		return
	}

	mentorID := req.MentorID
	if actor.Role == models.RoleMentor {
		mentorID = actor.ID
	}
	if mentorID == "" {
		config.ErrorStatus("mentor_id is required", http.StatusBadRequest, w, fmt.Errorf("missing mentor_id"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := m.UDB.FindOne(ctx, bson.M{"id": req.MenteeID, "role": models.RoleMentee}); err != nil {
		config.ErrorStatus("mentee not found", http.StatusNotFound, w, err)
		return
	}

	mock := models.MockInterview{
		ID:          uuid.New().String(),
		MenteeID:    req.MenteeID,
		MentorID:    mentorID,
		CompanyName: req.CompanyName,
		ScheduledAt: req.ScheduledAt,
		MeetLink:    req.MeetLink,
		Status:      models.MockScheduled,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := m.DB.InsertOne(ctx, mock); err != nil {
		config.ErrorStatus("failed to create mock interview", http.StatusInternalServerError, w, err)
		return
	}

	sendNotificationToUser(req.MenteeID, "mock_scheduled", mock)

	b, err := json.Marshal(mock)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// MocksHandler lists mock interviews scoped to the caller
func (m Mock) MocksHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := api.ActorFromContext(r.Context())
	if !ok {
		config.ErrorStatus("no authenticated actor", http.StatusUnauthorized, w, fmt.Errorf("missing actor"))
		return
	}

	filter := bson.M{}
	switch actor.Role {
	case models.RoleMentee:
		filter["mentee_id"] = actor.ID
	case models.RoleMentor:
		filter["mentor_id"] = actor.ID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := m.DB.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "scheduled_at", Value: 1}}))
	if err != nil {
		config.ErrorStatus("failed to get mock interviews", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.MockInterview{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CompleteMockHandler marks a mock interview completed
func (m Mock) CompleteMockHandler(w http.ResponseWriter, r *http.Request) {
	mockID := mux.Vars(r)["mock_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := m.DB.FindOne(ctx, bson.M{"id": mockID}); err != nil {
		config.ErrorStatus("mock interview not found", http.StatusNotFound, w, err)
		return
	}

	err := m.DB.UpdateOne(ctx, bson.M{"id": mockID}, bson.M{"$set": bson.M{"status": models.MockCompleted}})
	if err != nil {
		config.ErrorStatus("failed to complete mock interview", http.StatusInternalServerError, w, err)
		return
	}

	b, _ := json.Marshal(map[string]string{"id": mockID, "status": models.MockCompleted})
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
