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
	"golang.org/x/crypto/bcrypt"

	"github.com/codementee/codementee-api/api"
	"github.com/codementee/codementee-api/api/handlers"
	"github.com/codementee/codementee-api/config"
	"github.com/codementee/codementee-api/databases/mocks"
	"github.com/codementee/codementee-api/models"
)

func TestAuth_RegisterHandler_MissingFields(t *testing.T) {
	a := handlers.Auth{Config: config.Config{JWTSecret: "test-secret"}}

	body, _ := json.Marshal(map[string]string{"email": "asha@example.com"})
	req, _ := http.NewRequest("POST", "/api/v1/auth/register", bytes.NewReader(body))

	rr := httptest.NewRecorder()
	http.HandlerFunc(a.RegisterHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "name, email and password are required")
}

func TestAuth_RegisterHandler_UnknownRole(t *testing.T) {
	a := handlers.Auth{Config: config.Config{JWTSecret: "test-secret"}}

	body, _ := json.Marshal(map[string]string{
		"name": "Asha", "email": "asha@example.com", "password": "hunter22", "role": "superuser",
	})
	req, _ := http.NewRequest("POST", "/api/v1/auth/register", bytes.NewReader(body))

	rr := httptest.NewRecorder()
	http.HandlerFunc(a.RegisterHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "unknown role")
}

func TestAuth_RegisterHandler_RejectsAdminRole(t *testing.T) {
	userDB := &mocks.UserDatabase{}
	a := handlers.Auth{DB: userDB, Config: config.Config{JWTSecret: "test-secret"}}

	body, _ := json.Marshal(map[string]string{
		"name": "Mallory", "email": "mallory@example.com", "password": "hunter22", "role": "admin",
	})
	req, _ := http.NewRequest("POST", "/api/v1/auth/register", bytes.NewReader(body))

	rr := httptest.NewRecorder()
	http.HandlerFunc(a.RegisterHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "admin accounts cannot be self-registered")
	userDB.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestAuth_RegisterHandler_Success(t *testing.T) {
	userDB := &mocks.UserDatabase{}
	userDB.On("FindOne", mock.Anything, bson.M{"email": "asha@example.com"}).Return(nil, mongo.ErrNoDocuments)
	userDB.On("InsertOne", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		return u.Email == "asha@example.com" && u.Role == models.RoleMentee && u.Password != "hunter22"
	})).Return(nil)

	a := handlers.Auth{DB: userDB, Config: config.Config{JWTSecret: "test-secret"}}

	body, _ := json.Marshal(map[string]string{
		"name": "Asha", "email": "asha@example.com", "password": "hunter22",
	})
	req, _ := http.NewRequest("POST", "/api/v1/auth/register", bytes.NewReader(body))

	rr := httptest.NewRecorder()
	http.HandlerFunc(a.RegisterHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Contains(t, resp, "token")
	// hashed password never leaves the API
	assert.NotContains(t, rr.Body.String(), "hunter22")
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestAuth_LoginHandler_WrongPassword(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	userDB := &mocks.UserDatabase{}
	userDB.On("FindOne", mock.Anything, bson.M{"email": "asha@example.com"}).Return(&models.User{
		ID: "mentee-1", Email: "asha@example.com", Password: string(hashed), Role: models.RoleMentee,
	}, nil)

	a := handlers.Auth{DB: userDB, Config: config.Config{JWTSecret: "test-secret"}}

	body, _ := json.Marshal(map[string]string{"email": "asha@example.com", "password": "wrong"})
	req, _ := http.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(body))

	rr := httptest.NewRecorder()
	http.HandlerFunc(a.LoginHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid email or password")
}

func TestAuth_LoginHandler_Success(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	userDB := &mocks.UserDatabase{}
	userDB.On("FindOne", mock.Anything, bson.M{"email": "asha@example.com"}).Return(&models.User{
		ID: "mentee-1", Name: "Asha", Email: "asha@example.com", Password: string(hashed), Role: models.RoleMentee,
	}, nil)

	a := handlers.Auth{DB: userDB, Config: config.Config{JWTSecret: "test-secret"}}

	body, _ := json.Marshal(map[string]string{"email": "asha@example.com", "password": "correct-password"})
	req, _ := http.NewRequest("POST", "/api/v1/auth/login", bytes.NewReader(body))

	rr := httptest.NewRecorder()
	http.HandlerFunc(a.LoginHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "mentee-1", resp.User.ID)
}

func TestAuth_MeHandler(t *testing.T) {
	userDB := &mocks.UserDatabase{}
	userDB.On("FindOne", mock.Anything, bson.M{"id": "mentee-1"}).Return(&models.User{
		ID: "mentee-1", Name: "Asha", Role: models.RoleMentee,
	}, nil)

	a := handlers.Auth{DB: userDB}

	req, _ := http.NewRequest("GET", "/api/v1/auth/me", nil)
	req = req.WithContext(api.WithActor(req.Context(), api.Actor{ID: "mentee-1", Role: models.RoleMentee}))

	rr := httptest.NewRecorder()
	http.HandlerFunc(a.MeHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var user models.User
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	assert.Equal(t, "mentee-1", user.ID)
}
