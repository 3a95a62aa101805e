package models

// Booking request statuses
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

// SlotSnapshot is a denormalized copy of a time slot taken at submission
// time. Later edits to the live slot never change what the mentee asked for.
type SlotSnapshot struct {
	ID        string `json:"id" bson:"id"`
	Date      string `json:"date" bson:"date"`
	StartTime string `json:"start_time" bson:"start_time"`
	EndTime   string `json:"end_time" bson:"end_time"`
}

// BookingRequest is a mentee's ask for a mock interview: up to two preferred
// slot snapshots plus routing metadata. It is created pending and flipped to
// confirmed exactly once by a booking confirmation.
type BookingRequest struct {
	ID              string         `json:"id" bson:"id"`
	MenteeID        string         `json:"mentee_id" bson:"mentee_id"`
	MenteeName      string         `json:"mentee_name" bson:"mentee_name"`
	MenteeEmail     string         `json:"mentee_email" bson:"mentee_email"`
	MentorID        string         `json:"mentor_id" bson:"mentor_id"`
	MentorName      string         `json:"mentor_name" bson:"mentor_name"`
	CompanyID       string         `json:"company_id" bson:"company_id"`
	CompanyName     string         `json:"company_name" bson:"company_name"`
	PreferredSlots  []SlotSnapshot `json:"preferred_slots" bson:"preferred_slots"`
	InterviewType   string         `json:"interview_type,omitempty" bson:"interview_type,omitempty"`
	ExperienceLevel string         `json:"experience_level,omitempty" bson:"experience_level,omitempty"`
	Notes           string         `json:"notes,omitempty" bson:"notes,omitempty"`
	Status          string         `json:"status" bson:"status"`
	ConfirmedSlot   *SlotSnapshot  `json:"confirmed_slot,omitempty" bson:"confirmed_slot,omitempty"`
	MeetLink        string         `json:"meet_link,omitempty" bson:"meet_link,omitempty"`
	MeetLinkID      string         `json:"meet_link_id,omitempty" bson:"meet_link_id,omitempty"`
	ConfirmedBy     string         `json:"confirmed_by,omitempty" bson:"confirmed_by,omitempty"`
	ConfirmedAt     string         `json:"confirmed_at,omitempty" bson:"confirmed_at,omitempty"`
	CreatedAt       string         `json:"created_at" bson:"created_at"`
}
