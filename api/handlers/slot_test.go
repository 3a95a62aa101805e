package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/codementee/codementee-api/api/handlers"
	"github.com/codementee/codementee-api/databases/mocks"
	"github.com/codementee/codementee-api/models"
)

func TestSlot_CreateSlotHandler_InvalidDate(t *testing.T) {
	s := handlers.Slot{}

	body, _ := json.Marshal(map[string]string{
		"date": "10-09-2026", "start_time": "10:00", "end_time": "11:00",
	})
	req, _ := http.NewRequest("POST", "/api/v1/admin/slots", bytes.NewReader(body))

	rr := httptest.NewRecorder()
	http.HandlerFunc(s.CreateSlotHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid slot")
}

func TestSlot_CreateSlotHandler_Success(t *testing.T) {
	slotDB := &mocks.SlotDatabase{}
	slotDB.On("InsertOne", mock.Anything, mock.MatchedBy(func(slot models.TimeSlot) bool {
		return slot.Status == models.SlotAvailable && slot.Date == "2026-09-10" && slot.ID != ""
	})).Return(nil)

	s := handlers.Slot{DB: slotDB}

	body, _ := json.Marshal(map[string]interface{}{
		"date": "2026-09-10", "start_time": "10:00", "end_time": "11:00",
		"interview_types": []string{"dsa", "system-design"},
	})
	req, _ := http.NewRequest("POST", "/api/v1/admin/slots", bytes.NewReader(body))

	rr := httptest.NewRecorder()
	http.HandlerFunc(s.CreateSlotHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	slotDB.AssertExpectations(t)
}

func TestSlot_CreateSlotsBulkHandler_RejectsWholeBatchOnBadEntry(t *testing.T) {
	slotDB := &mocks.SlotDatabase{}
	s := handlers.Slot{DB: slotDB}

	body, _ := json.Marshal(map[string]interface{}{
		"slots": []map[string]string{
			{"date": "2026-09-10", "start_time": "10:00", "end_time": "11:00"},
			{"date": "2026-09-11", "start_time": "25:00", "end_time": "11:00"},
		},
	})
	req, _ := http.NewRequest("POST", "/api/v1/admin/slots/bulk", bytes.NewReader(body))

	rr := httptest.NewRecorder()
	http.HandlerFunc(s.CreateSlotsBulkHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid slot at index 1")
	slotDB.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestSlot_AvailableSlotsHandler(t *testing.T) {
	slotDB := &mocks.SlotDatabase{}
	slotDB.On("Find", mock.Anything, bson.M{"status": models.SlotAvailable}, mock.Anything).Return([]models.TimeSlot{
		{ID: "slot-1", Date: "2026-09-10", StartTime: "10:00", EndTime: "11:00", Status: models.SlotAvailable},
	}, nil)

	s := handlers.Slot{DB: slotDB}

	req, _ := http.NewRequest("GET", "/api/v1/mentee/slots", nil)
	rr := httptest.NewRecorder()
	http.HandlerFunc(s.AvailableSlotsHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var slots []models.TimeSlot
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &slots))
	assert.Len(t, slots, 1)
	assert.Equal(t, "slot-1", slots[0].ID)
}

func TestSlot_SlotsHandler_EmptyResultIsEmptyArray(t *testing.T) {
	slotDB := &mocks.SlotDatabase{}
	slotDB.On("Find", mock.Anything, bson.M{}, mock.Anything).Return(nil, nil)

	s := handlers.Slot{DB: slotDB}

	req, _ := http.NewRequest("GET", "/api/v1/admin/slots", nil)
	rr := httptest.NewRecorder()
	http.HandlerFunc(s.SlotsHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
}
