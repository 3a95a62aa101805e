package models

// Mock interview statuses
const (
	MockScheduled = "scheduled"
	MockCompleted = "completed"
	MockCancelled = "cancelled"
)

// MockInterview is the canonical scheduled-interview record. It is created
// once per confirmed booking, or directly by an admin/mentor; feedback
// submission later marks it completed.
type MockInterview struct {
	ID               string `json:"id" bson:"id"`
	MenteeID         string `json:"mentee_id" bson:"mentee_id"`
	MentorID         string `json:"mentor_id" bson:"mentor_id"`
	CompanyName      string `json:"company_name,omitempty" bson:"company_name,omitempty"`
	ScheduledAt      string `json:"scheduled_at" bson:"scheduled_at"`
	MeetLink         string `json:"meet_link" bson:"meet_link"`
	Status           string `json:"status" bson:"status"`
	BookingRequestID string `json:"booking_request_id,omitempty" bson:"booking_request_id,omitempty"`
	CreatedAt        string `json:"created_at" bson:"created_at"`
}
