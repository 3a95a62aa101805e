package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/codementee/codementee-api/config"
)

var a App

func TestMain(m *testing.M) {
	a = App{Config: config.Config{JWTSecret: "test-secret"}}
	a.Router = a.New()
	os.Exit(m.Run())
}

func executeRequest(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)
	return rr
}

func checkResponseCode(t *testing.T, expected, actual int) {
	if expected != actual {
		t.Errorf("Expected response code %d. Got %d\n", expected, actual)
	}
}

func signedToken(t *testing.T, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   "user-1",
		"name":  "Asha",
		"email": "asha@example.com",
		"role":  role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestHealthCheckRoute(t *testing.T) {
	req, _ := http.NewRequest("GET", "/health", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusOK, response.Code)
	assert.Contains(t, response.Body.String(), "alive")
}

func TestUnknownRoute(t *testing.T) {
	req, _ := http.NewRequest("GET", "/nope", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusNotFound, response.Code)
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	req, _ := http.NewRequest("GET", "/api/v1/auth/me", nil)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusUnauthorized, response.Code)
	assert.Contains(t, response.Body.String(), "unauthorized")
}

func TestProtectedRouteWithInvalidToken(t *testing.T) {
	req, _ := http.NewRequest("GET", "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	response := executeRequest(req)

	checkResponseCode(t, http.StatusUnauthorized, response.Code)
}

func TestAdminRouteRejectsMentee(t *testing.T) {
	req, _ := http.NewRequest("GET", "/api/v1/admin/slots", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "mentee"))
	response := executeRequest(req)

	checkResponseCode(t, http.StatusForbidden, response.Code)
	assert.Contains(t, response.Body.String(), "forbidden")
}

func TestAdminRouteRejectsWrongSecret(t *testing.T) {
	claims := jwt.MapClaims{
		"sub":  "user-1",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("wrong-secret"))

	req, _ := http.NewRequest("GET", "/api/v1/admin/slots", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	response := executeRequest(req)

	checkResponseCode(t, http.StatusUnauthorized, response.Code)
}
