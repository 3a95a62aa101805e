package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/codementee/codementee-api/api"
	"github.com/codementee/codementee-api/config"
	"github.com/codementee/codementee-api/databases"
	"github.com/codementee/codementee-api/models"
)

// Feedback exported for testing purposes
type Feedback struct {
	DB  databases.FeedbackDatabase
	MDB databases.MockInterviewDatabase
}

type submitFeedbackRequest struct {
	MockID         string `json:"mock_id"`
	ProblemSolving int    `json:"problem_solving"`
	Communication  int    `json:"communication"`
	TechnicalDepth int    `json:"technical_depth"`
	CodeQuality    int    `json:"code_quality"`
	Overall        int    `json:"overall"`
	Strengths      string `json:"strengths"`
	Improvements   string `json:"improvements"`
	Hireability    string `json:"hireability"`
	ActionItems    string `json:"action_items"`
}

func (req submitFeedbackRequest) validate() error {
	if req.MockID == "" {
		return fmt.Errorf("mock_id is required")
	}
	for name, score := range map[string]int{
		"problem_solving": req.ProblemSolving,
		"communication":   req.Communication,
		"technical_depth": req.TechnicalDepth,
		"code_quality":    req.CodeQuality,
		"overall":         req.Overall,
	} {
		if score < 0 || score > 5 {
			return fmt.Errorf("%s must be between 0 and 5", name)
		}
	}
	return nil
}

// SubmitFeedbackHandler records a mentor's scorecard for a mock interview
// they ran and marks the interview completed
func (f Feedback) SubmitFeedbackHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := api.ActorFromContext(r.Context())
	if !ok {
		config.ErrorStatus("no authenticated actor", http.StatusUnauthorized, w, fmt.Errorf("missing actor"))
		return
	}

	var req submitFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := req.validate(); err != nil {
		config.ErrorStatus("invalid feedback", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	filter := bson.M{"id": req.MockID}
	if actor.Role == models.RoleMentor {
		filter["mentor_id"] = actor.ID
	}
	mock, err := f.MDB.FindOne(ctx, filter)
	if err != nil {
		config.ErrorStatus("mock interview not found", http.StatusNotFound, w, err)
		return
	}

	feedback := models.Feedback{
		ID:             uuid.New().String(),
		MockID:         mock.ID,
		MentorID:       mock.MentorID,
		MenteeID:       mock.MenteeID,
		ProblemSolving: req.ProblemSolving,
		Communication:  req.Communication,
		TechnicalDepth: req.TechnicalDepth,
		CodeQuality:    req.CodeQuality,
		Overall:        req.Overall,
		Strengths:      req.Strengths,
		Improvements:   req.Improvements,
		Hireability:    req.Hireability,
		ActionItems:    req.ActionItems,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}
	if err := f.DB.InsertOne(ctx, feedback); err != nil {
		config.ErrorStatus("failed to submit feedback", http.StatusInternalServerError, w, err)
		return
	}

	err = f.MDB.UpdateOne(ctx, bson.M{"id": mock.ID}, bson.M{"$set": bson.M{"status": models.MockCompleted}})
	if err != nil {
		zap.S().Errorw("failed to mark mock interview completed",
			"mock_id", mock.ID,
			"error", err)
	}

	sendNotificationToUser(mock.MenteeID, "feedback_received", feedback)

	b, err := json.Marshal(feedback)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// FeedbacksHandler lists feedback scoped to the caller
func (f Feedback) FeedbacksHandler(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := f.DB.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		config.ErrorStatus("failed to get feedbacks", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.Feedback{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
