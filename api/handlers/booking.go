package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/codementee/codementee-api/api"
	"github.com/codementee/codementee-api/config"
	"github.com/codementee/codementee-api/databases"
	"github.com/codementee/codementee-api/models"
	templates "github.com/codementee/codementee-api/templates/html"
)

const maxPreferredSlots = 2

var errNoMentorAvailable = fmt.Errorf("no mentor-role users exist")

// Booking exported for testing purposes
type Booking struct {
	DB  databases.BookingDatabase
	SDB databases.SlotDatabase
	LDB databases.MeetLinkDatabase
	MDB databases.MockInterviewDatabase
	UDB databases.UserDatabase
	CDB databases.CompanyDatabase
}

type submitBookingRequest struct {
	SlotIDs         []string `json:"slot_ids"`
	CompanyID       string   `json:"company_id"`
	InterviewType   string   `json:"interview_type"`
	ExperienceLevel string   `json:"experience_level"`
	Notes           string   `json:"notes"`
}

type confirmBookingRequest struct {
	BookingRequestID string `json:"booking_request_id"`
	SlotID           string `json:"slot_id"`
	MentorID         string `json:"mentor_id"`
}

type confirmBookingResponse struct {
	MockInterviewID string `json:"mock_interview_id"`
	MeetingLink     string `json:"meeting_link"`
	MentorName      string `json:"mentor_name,omitempty"`
}

// SubmitBookingRequestHandler files a mentee's booking request. The preferred
// slots are snapshotted at submission time and the request is routed to the
// mentee's assigned mentor, falling back to any mentor on the platform.
func (b Booking) SubmitBookingRequestHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := api.ActorFromContext(r.Context())
	if !ok {
		config.ErrorStatus("no authenticated actor", http.StatusUnauthorized, w, fmt.Errorf("missing actor"))
		return
	}

	var req submitBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if len(req.SlotIDs) == 0 || len(req.SlotIDs) > maxPreferredSlots {
		config.ErrorStatus("between 1 and 2 preferred slots are required", http.StatusBadRequest, w,
			fmt.Errorf("got %d slot ids", len(req.SlotIDs)))
		return
	}
	if len(req.SlotIDs) == 2 && req.SlotIDs[0] == req.SlotIDs[1] {
		config.ErrorStatus("preferred slots must be distinct", http.StatusBadRequest, w, fmt.Errorf("duplicate slot id"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	// All-or-nothing: every preferred slot must be available right now or the
	// submission is rejected without touching anything.
	available, err := b.SDB.CountAvailable(ctx, req.SlotIDs)
	if err != nil {
		config.ErrorStatus("failed to check slot availability", http.StatusInternalServerError, w, err)
		return
	}
	if available != int64(len(req.SlotIDs)) {
		config.ErrorStatus("one or more requested slots are not available", http.StatusBadRequest, w,
			fmt.Errorf("%d of %d slots available", available, len(req.SlotIDs)))
		return
	}

	slots, err := b.SDB.Find(ctx, bson.M{"id": bson.M{"$in": req.SlotIDs}})
	if err != nil || len(slots) != len(req.SlotIDs) {
		config.ErrorStatus("failed to load requested slots", http.StatusInternalServerError, w, err)
		return
	}
	// Snapshot in the order the mentee submitted.
	byID := make(map[string]models.TimeSlot, len(slots))
	for _, s := range slots {
		byID[s.ID] = s
	}
	snapshots := make([]models.SlotSnapshot, 0, len(req.SlotIDs))
	for _, id := range req.SlotIDs {
		s := byID[id]
		snapshots = append(snapshots, models.SlotSnapshot{
			ID:        s.ID,
			Date:      s.Date,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
		})
	}

	mentee, err := b.UDB.FindOne(ctx, bson.M{"id": actor.ID})
	if err != nil {
		config.ErrorStatus("failed to get mentee", http.StatusNotFound, w, err)
		return
	}

	mentorID, mentorName, mentorEmail, err := b.routeMentor(ctx, mentee)
	if err != nil {
		if err == errNoMentorAvailable {
			config.ErrorStatus("no mentor available", http.StatusBadRequest, w, err)
			return
		}
		config.ErrorStatus("failed to route mentor", http.StatusInternalServerError, w, err)
		return
	}

	var companyID, companyName string
	if req.CompanyID != "" {
		company, err := b.CDB.FindOne(ctx, bson.M{"id": req.CompanyID})
		if err != nil {
			config.ErrorStatus("company not found", http.StatusNotFound, w, err)
			return
		}
		companyID, companyName = company.ID, company.Name
	}

	request := models.BookingRequest{
		ID:              uuid.New().String(),
		MenteeID:        mentee.ID,
		MenteeName:      mentee.Name,
		MenteeEmail:     mentee.Email,
		MentorID:        mentorID,
		MentorName:      mentorName,
		CompanyID:       companyID,
		CompanyName:     companyName,
		PreferredSlots:  snapshots,
		InterviewType:   req.InterviewType,
		ExperienceLevel: req.ExperienceLevel,
		Notes:           req.Notes,
		Status:          models.BookingPending,
		CreatedAt:       time.Now().UTC().Format(time.RFC3339),
	}
	if err := b.DB.InsertOne(ctx, request); err != nil {
		config.ErrorStatus("failed to create booking request", http.StatusInternalServerError, w, err)
		return
	}

	html := templates.RenderBookingRequestedEmail(mentee.Name, companyName, snapshots)
	sendEmailAsync(mentorEmail, mentorName, "New Mock Interview Request",
		fmt.Sprintf("%s has requested a mock interview.", mentee.Name), html)
	sendNotificationToUser(mentorID, "booking_requested", request)

	b2, err := json.Marshal(request)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b2)
}

// routeMentor picks the mentor a new request goes to: the mentee's assigned
// mentor when one exists, otherwise any mentor on the platform. With no mentor
// to route to, the submission is rejected rather than filed unroutable.
func (b Booking) routeMentor(ctx context.Context, mentee *models.User) (id, name, email string, err error) {
	if mentee.MentorID != "" {
		mentor, ferr := b.UDB.FindOne(ctx, bson.M{"id": mentee.MentorID, "role": models.RoleMentor})
		if ferr == nil {
			return mentor.ID, mentor.Name, mentor.Email, nil
		}
		zap.S().Warnw("assigned mentor not found, falling back",
			"mentee_id", mentee.ID,
			"mentor_id", mentee.MentorID)
	}

	mentors, ferr := b.UDB.Find(ctx, bson.M{"role": models.RoleMentor}, options.Find().SetLimit(1))
	if ferr != nil {
		return "", "", "", ferr
	}
	if len(mentors) == 0 {
		return "", "", "", errNoMentorAvailable
	}
	return mentors[0].ID, mentors[0].Name, mentors[0].Email, nil
}

// BookingRequestsHandler lists booking requests scoped to the caller: mentees
// see their own, mentors see requests routed to them, admins see everything.
func (b Booking) BookingRequestsHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := api.ActorFromContext(r.Context())
	if !ok {
		config.ErrorStatus("no authenticated actor", http.StatusUnauthorized, w, fmt.Errorf("missing actor"))
		return
	}

	filter := bson.M{}
	switch actor.Role {
	case models.RoleMentee:
		filter["mentee_id"] = actor.ID
	case models.RoleMentor:
		filter["mentor_id"] = actor.ID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := b.DB.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		config.ErrorStatus("failed to get booking requests", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.BookingRequest{}
	}
	b2, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b2)
}

// ConfirmBookingHandler is the mentor path for confirming a pending booking
// request against one of its preferred slots.
func (b Booking) ConfirmBookingHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := api.ActorFromContext(r.Context())
	if !ok {
		config.ErrorStatus("no authenticated actor", http.StatusUnauthorized, w, fmt.Errorf("missing actor"))
		return
	}

	var req confirmBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	// Scoped lookup: a mentor can only see requests routed to them. Requests
	// outside that scope are indistinguishable from missing ones.
	request, err := b.DB.FindOne(ctx, bson.M{"id": req.BookingRequestID, "mentor_id": actor.ID})
	if err != nil {
		config.ErrorStatus("booking request not found", http.StatusNotFound, w, err)
		return
	}

	b.confirm(ctx, w, request, req.SlotID, actor.ID, nil)
}

// AdminConfirmBookingHandler is the admin path: it can confirm any pending
// request and must name the mentor, re-binding the request to them.
func (b Booking) AdminConfirmBookingHandler(w http.ResponseWriter, r *http.Request) {
	actor, ok := api.ActorFromContext(r.Context())
	if !ok {
		config.ErrorStatus("no authenticated actor", http.StatusUnauthorized, w, fmt.Errorf("missing actor"))
		return
	}

	var req confirmBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if req.MentorID == "" {
		config.ErrorStatus("mentor_id is required", http.StatusBadRequest, w, fmt.Errorf("missing mentor_id"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	mentor, err := b.UDB.FindOne(ctx, bson.M{"id": req.MentorID, "role": models.RoleMentor})
	if err != nil {
		config.ErrorStatus("mentor not found", http.StatusNotFound, w, err)
		return
	}

	request, err := b.DB.FindOne(ctx, bson.M{"id": req.BookingRequestID})
	if err != nil {
		config.ErrorStatus("booking request not found", http.StatusNotFound, w, err)
		return
	}

	b.confirm(ctx, w, request, req.SlotID, actor.ID, mentor)
}

// confirm runs the allocation: claim a meet link, book the chosen slot, flip
// the request to confirmed, record the mock interview. Every claim is a
// conditional update, and a failure after a claim rolls the earlier claims
// back so no resource is left stranded.
func (b Booking) confirm(ctx context.Context, w http.ResponseWriter, request *models.BookingRequest,
	slotID, confirmedBy string, rebindMentor *models.User) {

	if request.Status != models.BookingPending {
		config.ErrorStatus("booking request already processed", http.StatusBadRequest, w,
			fmt.Errorf("status is %s", request.Status))
		return
	}

	var chosen *models.SlotSnapshot
	for i := range request.PreferredSlots {
		if request.PreferredSlots[i].ID == slotID {
			chosen = &request.PreferredSlots[i]
			break
		}
	}
	if chosen == nil {
		config.ErrorStatus("slot is not one of the requested preferred slots", http.StatusBadRequest, w,
			fmt.Errorf("slot %s not in preferred slots", slotID))
		return
	}

	// Claim order is link first, slot second: a link is the scarcer resource
	// and failing early leaves nothing to unwind.
	link, err := b.LDB.ClaimAvailable(ctx, request.ID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			config.ErrorStatus("no meeting links available", http.StatusBadRequest, w, err)
			return
		}
		config.ErrorStatus("failed to claim meeting link", http.StatusInternalServerError, w, err)
		return
	}

	if _, err := b.SDB.MarkBooked(ctx, slotID); err != nil {
		b.rollbackLink(link.ID)
		if err == mongo.ErrNoDocuments {
			config.ErrorStatus("slot is no longer available", http.StatusBadRequest, w, err)
			return
		}
		config.ErrorStatus("failed to book slot", http.StatusInternalServerError, w, err)
		return
	}

	confirmedAt := time.Now().UTC().Format(time.RFC3339)
	set := bson.M{
		"status":         models.BookingConfirmed,
		"confirmed_slot": chosen,
		"meet_link":      link.Link,
		"meet_link_id":   link.ID,
		"confirmed_by":   confirmedBy,
		"confirmed_at":   confirmedAt,
	}
	mentorID := request.MentorID
	mentorName := request.MentorName
	if rebindMentor != nil {
		mentorID = rebindMentor.ID
		mentorName = rebindMentor.Name
		set["mentor_id"] = mentorID
		set["mentor_name"] = mentorName
	}

	confirmed, err := b.DB.ConfirmPending(ctx, request.ID, set)
	if err != nil {
		b.rollbackSlot(slotID)
		b.rollbackLink(link.ID)
		if err == mongo.ErrNoDocuments {
			config.ErrorStatus("booking request already processed", http.StatusBadRequest, w, err)
			return
		}
		config.ErrorStatus("failed to confirm booking request", http.StatusInternalServerError, w, err)
		return
	}

	scheduledAt := chosen.Date + " " + chosen.StartTime
	if t, perr := time.ParseInLocation("2006-01-02 15:04", scheduledAt, time.UTC); perr == nil {
		scheduledAt = t.Format(time.RFC3339)
	}

	mock := models.MockInterview{
		ID:               uuid.New().String(),
		MenteeID:         confirmed.MenteeID,
		MentorID:         mentorID,
		CompanyName:      confirmed.CompanyName,
		ScheduledAt:      scheduledAt,
		MeetLink:         link.Link,
		Status:           models.MockScheduled,
		BookingRequestID: confirmed.ID,
		CreatedAt:        time.Now().UTC().Format(time.RFC3339),
	}
	if err := b.MDB.InsertOne(ctx, mock); err != nil {
		// Without the mock record the confirmation never happened: revert the
		// ledger flip and release both claims so the request stays retryable.
		b.rollbackRequest(confirmed.ID)
		b.rollbackSlot(slotID)
		b.rollbackLink(link.ID)
		config.ErrorStatus("failed to create mock interview", http.StatusInternalServerError, w, err)
		return
	}

	zap.S().Infow("booking confirmed",
		"booking_request_id", confirmed.ID,
		"slot_id", slotID,
		"meet_link_id", link.ID,
		"mock_interview_id", mock.ID,
		"confirmed_by", confirmedBy)

	html := templates.RenderBookingConfirmedEmail(mentorName, *chosen, link.Link)
	sendEmailAsync(confirmed.MenteeEmail, confirmed.MenteeName, "Mock Interview Confirmed",
		fmt.Sprintf("Your mock interview on %s at %s has been confirmed.", chosen.Date, chosen.StartTime), html)
	sendNotificationToUser(confirmed.MenteeID, "booking_confirmed", confirmed)
	if mentorID != "" {
		mentorEmail := ""
		if rebindMentor != nil {
			mentorEmail = rebindMentor.Email
		} else if mentor, merr := b.UDB.FindOne(ctx, bson.M{"id": mentorID}); merr == nil {
			mentorEmail = mentor.Email
		}
		if mentorEmail != "" {
			sendEmailAsync(mentorEmail, mentorName, "Mock Interview Confirmed",
				fmt.Sprintf("Your mock interview with %s on %s at %s has been confirmed.",
					confirmed.MenteeName, chosen.Date, chosen.StartTime), html)
		}
		if mentorID != confirmedBy {
			sendNotificationToUser(mentorID, "booking_confirmed", confirmed)
		}
	}

	resp := confirmBookingResponse{
		MockInterviewID: mock.ID,
		MeetingLink:     link.Link,
	}
	if rebindMentor != nil {
		resp.MentorName = mentorName
	}
	b2, err := json.Marshal(resp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b2)
}

// rollbackLink compensates a claimed link after a later step failed. Rollback
// uses a fresh context so a cancelled request cannot strand the link.
func (b Booking) rollbackLink(linkID string) {
	ctx, cancel := api.WithQueryTimeout(context.Background())
	defer cancel()
	if err := b.LDB.Release(ctx, linkID); err != nil {
		zap.S().Errorw("failed to roll back meet link claim",
			"link_id", linkID,
			"error", err)
	}
}

// rollbackRequest reverts a confirmed booking request to pending after the
// mock record could not be written, clearing the confirmation fields
func (b Booking) rollbackRequest(requestID string) {
	ctx, cancel := api.WithQueryTimeout(context.Background())
	defer cancel()
	filter := bson.M{"id": requestID, "status": models.BookingConfirmed}
	update := bson.M{
		"$set": bson.M{"status": models.BookingPending},
		"$unset": bson.M{
			"confirmed_slot": "",
			"meet_link":      "",
			"meet_link_id":   "",
			"confirmed_by":   "",
			"confirmed_at":   "",
		},
	}
	if err := b.DB.UpdateOne(ctx, filter, update); err != nil {
		zap.S().Errorw("failed to roll back booking confirmation",
			"booking_request_id", requestID,
			"error", err)
	}
}

// rollbackSlot compensates a booked slot after the ledger flip failed
func (b Booking) rollbackSlot(slotID string) {
	ctx, cancel := api.WithQueryTimeout(context.Background())
	defer cancel()
	if err := b.SDB.Release(ctx, slotID); err != nil {
		zap.S().Errorw("failed to roll back slot booking",
			"slot_id", slotID,
			"error", err)
	}
}
