package models

// Time slot statuses
const (
	SlotAvailable = "available"
	SlotBooked    = "booked"
)

// TimeSlot is a bookable calendar window drawn from the shared pool.
// A slot moves available -> booked exactly once, by a successful booking
// confirmation, and never reverts on its own.
type TimeSlot struct {
	ID             string   `json:"id" bson:"id"`
	Date           string   `json:"date" bson:"date"`
	StartTime      string   `json:"start_time" bson:"start_time"`
	EndTime        string   `json:"end_time" bson:"end_time"`
	MentorID       string   `json:"mentor_id,omitempty" bson:"mentor_id,omitempty"`
	InterviewTypes []string `json:"interview_types" bson:"interview_types"`
	Status         string   `json:"status" bson:"status"`
	CreatedAt      string   `json:"created_at" bson:"created_at"`
}
