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

// Company exported for testing purposes
type Company struct {
	DB databases.CompanyDatabase
}

type createCompanyRequest struct {
	Name             string   `json:"name"`
	LogoURL          string   `json:"logo_url"`
	Description      string   `json:"description"`
	Category         string   `json:"category"`
	InterviewTracks  []string `json:"interview_tracks"`
	DifficultyLevels []string `json:"difficulty_levels"`
}

// CompaniesHandler returns the company catalog
func (c Company) CompaniesHandler(w http.ResponseWriter, r *http.Request) {
	filter := bson.M{}
	if category := r.URL.Query().Get("category"); category != "" {
		filter["category"] = category
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := c.DB.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		config.ErrorStatus("failed to get companies", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.Company{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateCompanyHandler adds a company to the catalog
func (c Company) CreateCompanyHandler(w http.ResponseWriter, r *http.Request) {
	var req createCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.Name == "" {
		config.ErrorStatus("name is required", http.StatusBadRequest, w, fmt.Errorf("missing name"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	company := models.Company{
		ID:               uuid.New().String(),
		Name:             req.Name,
		LogoURL:          req.LogoURL,
		Description:      req.Description,
		Category:         req.Category,
		InterviewTracks:  req.InterviewTracks,
		DifficultyLevels: req.DifficultyLevels,
		CreatedAt:        time.Now().UTC().Format(time.RFC3339),
	}
	if err := c.DB.InsertOne(ctx, company); err != nil {
		config.ErrorStatus("failed to create company", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(company)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}
