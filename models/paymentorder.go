package models

// Payment order statuses
const (
	PaymentCreated = "created"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
)

// PaymentOrder tracks a one-time checkout for a pricing plan
type PaymentOrder struct {
	ID        string `json:"id" bson:"id"`
	UserID    string `json:"user_id" bson:"user_id"`
	PlanID    string `json:"plan_id" bson:"plan_id"`
	Amount    int64  `json:"amount" bson:"amount"`
	Currency  string `json:"currency" bson:"currency"`
	SessionID string `json:"session_id" bson:"session_id"`
	Status    string `json:"status" bson:"status"`
	CreatedAt string `json:"created_at" bson:"created_at"`
	PaidAt    string `json:"paid_at,omitempty" bson:"paid_at,omitempty"`
}
