package models

// Meet link statuses
const (
	LinkAvailable = "available"
	LinkInUse     = "in_use"
)

// MeetLink is a reusable video-room URL from the administrative pool.
// At most one booking request holds a link at a time; in_use always carries
// the holder in CurrentBookingID, available always carries none.
type MeetLink struct {
	ID               string `json:"id" bson:"id"`
	Link             string `json:"link" bson:"link"`
	Name             string `json:"name" bson:"name"`
	Status           string `json:"status" bson:"status"`
	CurrentBookingID string `json:"current_booking_id,omitempty" bson:"current_booking_id,omitempty"`
	CreatedAt        string `json:"created_at" bson:"created_at"`
}
