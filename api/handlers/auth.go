package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/codementee/codementee-api/api"
	"github.com/codementee/codementee-api/config"
	"github.com/codementee/codementee-api/databases"
	"github.com/codementee/codementee-api/models"
)

// Auth exported for testing purposes
type Auth struct {
	DB     databases.UserDatabase
	Config config.Config
}

type registerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	CurrentRole string `json:"current_role"`
	TargetRole  string `json:"target_role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// RegisterHandler creates a user account with a bcrypt-hashed password
func (a Auth) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		config.ErrorStatus("name, email and password are required", http.StatusBadRequest, w, fmt.Errorf("missing required fields"))
		return
	}

	role := models.Role(req.Role)
	if role == "" {
		role = models.RoleMentee
	}
	// Admin accounts are seeded directly in the database, never self-registered.
	if role == models.RoleAdmin {
		config.ErrorStatus("admin accounts cannot be self-registered", http.StatusBadRequest, w,
			fmt.Errorf("role %q is not open for registration", req.Role))
		return
	}
	if role != models.RoleMentor && role != models.RoleMentee {
		config.ErrorStatus("unknown role", http.StatusBadRequest, w, fmt.Errorf("role %q is not valid", req.Role))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	existing, err := a.DB.FindOne(ctx, bson.M{"email": req.Email})
	if err != nil && err != mongo.ErrNoDocuments {
		config.ErrorStatus("failed to check existing email", http.StatusInternalServerError, w, err)
		return
	}
	if existing != nil {
		config.ErrorStatus("email already registered", http.StatusBadRequest, w, fmt.Errorf("email %s already registered", req.Email))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		config.ErrorStatus("failed to hash password", http.StatusInternalServerError, w, err)
		return
	}

	user := models.User{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Email:       req.Email,
		Password:    string(hashed),
		Role:        role,
		Status:      "active",
		CurrentRole: req.CurrentRole,
		TargetRole:  req.TargetRole,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}
	if err := a.DB.InsertOne(ctx, user); err != nil {
		config.ErrorStatus("failed to create user", http.StatusInternalServerError, w, err)
		return
	}

	token, err := a.createToken(user)
	if err != nil {
		config.ErrorStatus("failed to create token", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(authResponse{Token: token, User: user})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// LoginHandler verifies credentials and returns a signed JWT
func (a Auth) LoginHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := a.DB.FindOne(ctx, bson.M{"email": req.Email})
	if err != nil {
		config.ErrorStatus("invalid email or password", http.StatusUnauthorized, w, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		config.ErrorStatus("invalid email or password", http.StatusUnauthorized, w, err)
		return
	}

	token, err := a.createToken(*user)
	if err != nil {
		config.ErrorStatus("failed to create token", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(authResponse{Token: token, User: *user})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// MeHandler returns the authenticated caller's own record
func (a Auth) MeHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := api.ActorFromContext(r.Context())
	if !ok {
		config.ErrorStatus("no authenticated actor", http.StatusUnauthorized, w, fmt.Errorf("missing actor"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := a.DB.FindOne(ctx, bson.M{"id": actor.ID})
	if err != nil {
		config.ErrorStatus("failed to get user by ID", http.StatusNotFound, w, err)
		return
	}

	b, err := json.Marshal(user)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// createToken signs a 24h HS256 access token carrying the actor's identity
func (a Auth) createToken(user models.User) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  string(user.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(a.Config.JWTSecret))
}
