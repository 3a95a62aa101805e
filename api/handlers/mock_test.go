package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/codementee/codementee-api/api"
	"github.com/codementee/codementee-api/api/handlers"
	"github.com/codementee/codementee-api/databases/mocks"
	"github.com/codementee/codementee-api/models"
)

func TestMock_CreateMockHandler_MissingFields(t *testing.T) {
	m := handlers.Mock{}

	body, _ := json.Marshal(map[string]string{"mentor_id": "mentor-1"})
	req, _ := http.NewRequest("POST", "/api/v1/mocks", bytes.NewReader(body))
	req = req.WithContext(api.WithActor(req.Context(), api.Actor{ID: "admin-1", Role: models.RoleAdmin}))

	rr := httptest.NewRecorder()
	http.HandlerFunc(m.CreateMockHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "mentee_id and scheduled_at are required")
}

func TestMock_CreateMockHandler_MentorSchedulesForSelf(t *testing.T) {
	mockDB := &mocks.MockInterviewDatabase{}
	userDB := &mocks.UserDatabase{}

	userDB.On("FindOne", mock.Anything, bson.M{"id": "mentee-1", "role": models.RoleMentee}).Return(&models.User{
		ID: "mentee-1", Role: models.RoleMentee,
	}, nil)
	mockDB.On("InsertOne", mock.Anything, mock.MatchedBy(func(mi models.MockInterview) bool {
		return mi.MentorID == "mentor-1" && mi.Status == models.MockScheduled && mi.BookingRequestID == ""
	})).Return(nil)

	m := handlers.Mock{DB: mockDB, UDB: userDB}

	body, _ := json.Marshal(map[string]string{
		"mentee_id":    "mentee-1",
		"scheduled_at": "2026-09-10T10:00:00Z",
		"meet_link":    "https://meet.example.com/direct",
	})
	req, _ := http.NewRequest("POST", "/api/v1/mocks", bytes.NewReader(body))
	req = req.WithContext(api.WithActor(req.Context(), api.Actor{ID: "mentor-1", Role: models.RoleMentor}))

	rr := httptest.NewRecorder()
	http.HandlerFunc(m.CreateMockHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	mockDB.AssertExpectations(t)
}

func TestMock_MocksHandler_ScopedToMentor(t *testing.T) {
	mockDB := &mocks.MockInterviewDatabase{}
	mockDB.On("Find", mock.Anything, bson.M{"mentor_id": "mentor-1"}, mock.Anything).Return([]models.MockInterview{
		{ID: "mock-1", MentorID: "mentor-1", MenteeID: "mentee-1", Status: models.MockScheduled},
	}, nil)

	m := handlers.Mock{DB: mockDB}

	req, _ := http.NewRequest("GET", "/api/v1/mocks", nil)
	req = req.WithContext(api.WithActor(req.Context(), api.Actor{ID: "mentor-1", Role: models.RoleMentor}))

	rr := httptest.NewRecorder()
	http.HandlerFunc(m.MocksHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var result []models.MockInterview
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Len(t, result, 1)
	assert.Equal(t, "mock-1", result[0].ID)
}

func TestMock_MocksHandler_AdminSeesAll(t *testing.T) {
	mockDB := &mocks.MockInterviewDatabase{}
	mockDB.On("Find", mock.Anything, bson.M{}, mock.Anything).Return([]models.MockInterview{
		{ID: "mock-1"}, {ID: "mock-2"},
	}, nil)

	m := handlers.Mock{DB: mockDB}

	req, _ := http.NewRequest("GET", "/api/v1/admin/mocks", nil)
	req = req.WithContext(api.WithActor(req.Context(), api.Actor{ID: "admin-1", Role: models.RoleAdmin}))

	rr := httptest.NewRecorder()
	http.HandlerFunc(m.MocksHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var result []models.MockInterview
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Len(t, result, 2)
}

func TestMock_CompleteMockHandler(t *testing.T) {
	mockDB := &mocks.MockInterviewDatabase{}
	mockDB.On("FindOne", mock.Anything, bson.M{"id": "mock-1"}).Return(&models.MockInterview{
		ID: "mock-1", Status: models.MockScheduled,
	}, nil)
	mockDB.On("UpdateOne", mock.Anything, bson.M{"id": "mock-1"},
		bson.M{"$set": bson.M{"status": models.MockCompleted}}).Return(nil)

	m := handlers.Mock{DB: mockDB}

	req, _ := http.NewRequest("PUT", "/api/v1/admin/mock/mock-1/complete", nil)
	req = mux.SetURLVars(req, map[string]string{"mock_id": "mock-1"})

	rr := httptest.NewRecorder()
	http.HandlerFunc(m.CompleteMockHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockDB.AssertExpectations(t)
}
