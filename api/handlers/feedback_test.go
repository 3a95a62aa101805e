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
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/codementee/codementee-api/api"
	"github.com/codementee/codementee-api/api/handlers"
	"github.com/codementee/codementee-api/databases/mocks"
	"github.com/codementee/codementee-api/models"
)

func TestFeedback_SubmitFeedbackHandler_ScoreOutOfRange(t *testing.T) {
	f := handlers.Feedback{}

	body, _ := json.Marshal(map[string]interface{}{"mock_id": "mock-1", "overall": 9})
	req, _ := http.NewRequest("POST", "/api/v1/mentor/feedback", bytes.NewReader(body))
	req = req.WithContext(api.WithActor(req.Context(), api.Actor{ID: "mentor-1", Role: models.RoleMentor}))

	rr := httptest.NewRecorder()
	http.HandlerFunc(f.SubmitFeedbackHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "between 0 and 5")
}

func TestFeedback_SubmitFeedbackHandler_MockOutOfScope(t *testing.T) {
	mockDB := &mocks.MockInterviewDatabase{}
	mockDB.On("FindOne", mock.Anything, bson.M{"id": "mock-1", "mentor_id": "mentor-2"}).
		Return(nil, mongo.ErrNoDocuments)

	f := handlers.Feedback{MDB: mockDB}

	body, _ := json.Marshal(map[string]interface{}{"mock_id": "mock-1", "overall": 4})
	req, _ := http.NewRequest("POST", "/api/v1/mentor/feedback", bytes.NewReader(body))
	req = req.WithContext(api.WithActor(req.Context(), api.Actor{ID: "mentor-2", Role: models.RoleMentor}))

	rr := httptest.NewRecorder()
	http.HandlerFunc(f.SubmitFeedbackHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "mock interview not found")
}

func TestFeedback_SubmitFeedbackHandler_MarksMockCompleted(t *testing.T) {
	feedbackDB := &mocks.FeedbackDatabase{}
	mockDB := &mocks.MockInterviewDatabase{}

	mockDB.On("FindOne", mock.Anything, bson.M{"id": "mock-1", "mentor_id": "mentor-1"}).Return(&models.MockInterview{
		ID: "mock-1", MentorID: "mentor-1", MenteeID: "mentee-1", Status: models.MockScheduled,
	}, nil)
	feedbackDB.On("InsertOne", mock.Anything, mock.MatchedBy(func(fb models.Feedback) bool {
		return fb.MockID == "mock-1" && fb.MentorID == "mentor-1" && fb.MenteeID == "mentee-1"
	})).Return(nil)
	mockDB.On("UpdateOne", mock.Anything, bson.M{"id": "mock-1"},
		bson.M{"$set": bson.M{"status": models.MockCompleted}}).Return(nil)

	f := handlers.Feedback{DB: feedbackDB, MDB: mockDB}

	body, _ := json.Marshal(map[string]interface{}{
		"mock_id": "mock-1", "problem_solving": 4, "communication": 5,
		"technical_depth": 4, "code_quality": 3, "overall": 4,
		"strengths": "clear thinking", "improvements": "edge cases",
	})
	req, _ := http.NewRequest("POST", "/api/v1/mentor/feedback", bytes.NewReader(body))
	req = req.WithContext(api.WithActor(req.Context(), api.Actor{ID: "mentor-1", Role: models.RoleMentor}))

	rr := httptest.NewRecorder()
	http.HandlerFunc(f.SubmitFeedbackHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	feedbackDB.AssertExpectations(t)
	mockDB.AssertExpectations(t)
}

func TestFeedback_FeedbacksHandler_ScopedToMentee(t *testing.T) {
	feedbackDB := &mocks.FeedbackDatabase{}
	feedbackDB.On("Find", mock.Anything, bson.M{"mentee_id": "mentee-1"}, mock.Anything).Return([]models.Feedback{
		{ID: "fb-1", MenteeID: "mentee-1"},
	}, nil)

	f := handlers.Feedback{DB: feedbackDB}

	req, _ := http.NewRequest("GET", "/api/v1/mentee/feedbacks", nil)
	req = req.WithContext(api.WithActor(req.Context(), api.Actor{ID: "mentee-1", Role: models.RoleMentee}))

	rr := httptest.NewRecorder()
	http.HandlerFunc(f.FeedbacksHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var result []models.Feedback
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Len(t, result, 1)
}
