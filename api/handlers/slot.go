package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/codementee/codementee-api/api"
	"github.com/codementee/codementee-api/config"
	"github.com/codementee/codementee-api/databases"
	"github.com/codementee/codementee-api/models"
)

// Slot exported for testing purposes
type Slot struct {
	DB databases.SlotDatabase
}

type createSlotRequest struct {
	Date           string   `json:"date"`
	StartTime      string   `json:"start_time"`
	EndTime        string   `json:"end_time"`
	MentorID       string   `json:"mentor_id"`
	InterviewTypes []string `json:"interview_types"`
}

type createSlotsBulkRequest struct {
	Slots []createSlotRequest `json:"slots"`
}

func (req createSlotRequest) validate() error {
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return fmt.Errorf("date must be formatted as 2006-01-02: %w", err)
	}
	if _, err := time.Parse("15:04", req.StartTime); err != nil {
		return fmt.Errorf("start_time must be formatted as 15:04: %w", err)
	}
	if _, err := time.Parse("15:04", req.EndTime); err != nil {
		return fmt.Errorf("end_time must be formatted as 15:04: %w", err)
	}
	return nil
}

func (req createSlotRequest) toSlot() models.TimeSlot {
	return models.TimeSlot{
		ID:             uuid.New().String(),
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		MentorID:       req.MentorID,
		InterviewTypes: req.InterviewTypes,
		Status:         models.SlotAvailable,
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	}
}

// CreateSlotHandler adds a single time slot to the pool
func (s Slot) CreateSlotHandler(w http.ResponseWriter, r *http.Request) {
	var req createSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := req.validate(); err != nil {
		config.ErrorStatus("invalid slot", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	slot := req.toSlot()
	if err := s.DB.InsertOne(ctx, slot); err != nil {
		config.ErrorStatus("failed to create slot", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(slot)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// CreateSlotsBulkHandler adds a batch of time slots. The batch is validated
// up front so a bad entry rejects the whole request before any insert.
func (s Slot) CreateSlotsBulkHandler(w http.ResponseWriter, r *http.Request) {
	var req createSlotsBulkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if len(req.Slots) == 0 {
		config.ErrorStatus("slots are required", http.StatusBadRequest, w, fmt.Errorf("empty slots"))
		return
	}
	for i, sr := range req.Slots {
		if err := sr.validate(); err != nil {
			config.ErrorStatus(fmt.Sprintf("invalid slot at index %d", i), http.StatusBadRequest, w, err)
			return
		}
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	ids := make([]string, 0, len(req.Slots))
	for _, sr := range req.Slots {
		slot := sr.toSlot()
		if err := s.DB.InsertOne(ctx, slot); err != nil {
			config.ErrorStatus("failed to create slots", http.StatusInternalServerError, w, err)
			return
		}
		ids = append(ids, slot.ID)
	}

	b, _ := json.Marshal(map[string]interface{}{
		"created": len(ids),
		"ids":     ids,
	})
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// SlotsHandler returns all time slots, optionally filtered by status
func (s Slot) SlotsHandler(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := s.DB.Find(ctx, filter, slotListOrder())
	if err != nil {
		config.ErrorStatus("failed to get slots", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.TimeSlot{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// AvailableSlotsHandler returns the available slot pool for mentees to pick
// from when submitting a booking request
func (s Slot) AvailableSlotsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := s.DB.Find(ctx, bson.M{"status": models.SlotAvailable}, slotListOrder())
	if err != nil {
		config.ErrorStatus("failed to get available slots", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.TimeSlot{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

func slotListOrder() *options.FindOptions {
	return options.Find().SetSort(bson.D{
		{Key: "date", Value: 1},
		{Key: "start_time", Value: 1},
	})
}
