package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/codementee/codementee-api/api"
	"github.com/codementee/codementee-api/config"
	"github.com/codementee/codementee-api/databases"
	"github.com/codementee/codementee-api/models"
)

// User exported for testing purposes
type User struct {
	DB databases.UserDatabase
}

type assignMentorRequest struct {
	MenteeID string `json:"mentee_id"`
	MentorID string `json:"mentor_id"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// MenteesHandler returns all mentee accounts
func (u User) MenteesHandler(w http.ResponseWriter, r *http.Request) {
	u.usersByRole(w, r, models.RoleMentee)
}

// MentorsHandler returns all mentor accounts
func (u User) MentorsHandler(w http.ResponseWriter, r *http.Request) {
	u.usersByRole(w, r, models.RoleMentor)
}

func (u User) usersByRole(w http.ResponseWriter, r *http.Request, role models.Role) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := u.DB.Find(ctx, bson.M{"role": role})
	if err != nil {
		config.ErrorStatus("failed to get users", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.User{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// AssignMentorHandler binds a mentee to a mentor. Future booking requests from
// the mentee route to this mentor.
func (u User) AssignMentorHandler(w http.ResponseWriter, r *http.Request) {
	var req assignMentorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.MenteeID == "" || req.MentorID == "" {
		config.ErrorStatus("mentee_id and mentor_id are required", http.StatusBadRequest, w, fmt.Errorf("missing required fields"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	mentor, err := u.DB.FindOne(ctx, bson.M{"id": req.MentorID, "role": models.RoleMentor})
	if err != nil {
		config.ErrorStatus("mentor not found", http.StatusNotFound, w, err)
		return
	}
	if _, err := u.DB.FindOne(ctx, bson.M{"id": req.MenteeID, "role": models.RoleMentee}); err != nil {
		config.ErrorStatus("mentee not found", http.StatusNotFound, w, err)
		return
	}

	err = u.DB.UpdateOne(ctx, bson.M{"id": req.MenteeID}, bson.M{"$set": bson.M{"mentor_id": req.MentorID}})
	if err != nil {
		config.ErrorStatus("failed to assign mentor", http.StatusInternalServerError, w, err)
		return
	}

	zap.S().Infow("mentor assigned",
		"mentee_id", req.MenteeID,
		"mentor_id", req.MentorID)

	b, _ := json.Marshal(map[string]string{
		"mentee_id":   req.MenteeID,
		"mentor_id":   mentor.ID,
		"mentor_name": mentor.Name,
	})
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// UpdateMenteeStatusHandler updates a mentee's account status
func (u User) UpdateMenteeStatusHandler(w http.ResponseWriter, r *http.Request) {
	menteeID := mux.Vars(r)["mentee_id"]

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.Status == "" {
		config.ErrorStatus("status is required", http.StatusBadRequest, w, fmt.Errorf("missing status"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	if _, err := u.DB.FindOne(ctx, bson.M{"id": menteeID, "role": models.RoleMentee}); err != nil {
		config.ErrorStatus("mentee not found", http.StatusNotFound, w, err)
		return
	}

	err := u.DB.UpdateOne(ctx, bson.M{"id": menteeID}, bson.M{"$set": bson.M{"status": req.Status}})
	if err != nil {
		config.ErrorStatus("failed to update status", http.StatusInternalServerError, w, err)
		return
	}

	b, _ := json.Marshal(map[string]string{"id": menteeID, "status": req.Status})
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
