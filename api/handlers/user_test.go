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
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/codementee/codementee-api/api/handlers"
	"github.com/codementee/codementee-api/databases/mocks"
	"github.com/codementee/codementee-api/models"
)

func TestUser_MenteesHandler(t *testing.T) {
	userDB := &mocks.UserDatabase{}
	userDB.On("Find", mock.Anything, bson.M{"role": models.RoleMentee}).Return([]models.User{
		{ID: "mentee-1", Role: models.RoleMentee},
		{ID: "mentee-2", Role: models.RoleMentee},
	}, nil)

	u := handlers.User{DB: userDB}

	req, _ := http.NewRequest("GET", "/api/v1/admin/mentees", nil)
	rr := httptest.NewRecorder()
	http.HandlerFunc(u.MenteesHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var result []models.User
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Len(t, result, 2)
}

func TestUser_AssignMentorHandler_MissingFields(t *testing.T) {
	u := handlers.User{}

	body, _ := json.Marshal(map[string]string{"mentee_id": "mentee-1"})
	req, _ := http.NewRequest("POST", "/api/v1/admin/assign-mentor", bytes.NewReader(body))

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.AssignMentorHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "mentee_id and mentor_id are required")
}

func TestUser_AssignMentorHandler_MentorNotFound(t *testing.T) {
	userDB := &mocks.UserDatabase{}
	userDB.On("FindOne", mock.Anything, bson.M{"id": "mentor-404", "role": models.RoleMentor}).
		Return(nil, mongo.ErrNoDocuments)

	u := handlers.User{DB: userDB}

	body, _ := json.Marshal(map[string]string{"mentee_id": "mentee-1", "mentor_id": "mentor-404"})
	req, _ := http.NewRequest("POST", "/api/v1/admin/assign-mentor", bytes.NewReader(body))

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.AssignMentorHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "mentor not found")
	userDB.AssertNotCalled(t, "UpdateOne", mock.Anything, mock.Anything, mock.Anything)
}

func TestUser_AssignMentorHandler_Success(t *testing.T) {
	userDB := &mocks.UserDatabase{}
	userDB.On("FindOne", mock.Anything, bson.M{"id": "mentor-1", "role": models.RoleMentor}).Return(&models.User{
		ID: "mentor-1", Name: "Priya", Role: models.RoleMentor,
	}, nil)
	userDB.On("FindOne", mock.Anything, bson.M{"id": "mentee-1", "role": models.RoleMentee}).Return(&models.User{
		ID: "mentee-1", Role: models.RoleMentee,
	}, nil)
	userDB.On("UpdateOne", mock.Anything, bson.M{"id": "mentee-1"},
		bson.M{"$set": bson.M{"mentor_id": "mentor-1"}}).Return(nil)

	u := handlers.User{DB: userDB}

	body, _ := json.Marshal(map[string]string{"mentee_id": "mentee-1", "mentor_id": "mentor-1"})
	req, _ := http.NewRequest("POST", "/api/v1/admin/assign-mentor", bytes.NewReader(body))

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.AssignMentorHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Priya", resp["mentor_name"])
	userDB.AssertExpectations(t)
}

func TestUser_UpdateMenteeStatusHandler(t *testing.T) {
	userDB := &mocks.UserDatabase{}
	userDB.On("FindOne", mock.Anything, bson.M{"id": "mentee-1", "role": models.RoleMentee}).Return(&models.User{
		ID: "mentee-1", Role: models.RoleMentee,
	}, nil)
	userDB.On("UpdateOne", mock.Anything, bson.M{"id": "mentee-1"},
		bson.M{"$set": bson.M{"status": "paused"}}).Return(nil)

	u := handlers.User{DB: userDB}

	body, _ := json.Marshal(map[string]string{"status": "paused"})
	req, _ := http.NewRequest("PUT", "/api/v1/admin/mentee/mentee-1/status", bytes.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"mentee_id": "mentee-1"})

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.UpdateMenteeStatusHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	userDB.AssertExpectations(t)
}
