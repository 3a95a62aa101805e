package models

// PricingPlan is a purchasable mentorship plan. Price is stored in paise.
type PricingPlan struct {
	ID             string           `json:"id" bson:"id"`
	PlanID         string           `json:"plan_id" bson:"plan_id"`
	Name           string           `json:"name" bson:"name"`
	Price          int64            `json:"price" bson:"price"`
	DurationMonths int              `json:"duration_months" bson:"duration_months"`
	Features       []string         `json:"features" bson:"features"`
	Limits         map[string]int64 `json:"limits,omitempty" bson:"limits,omitempty"`
	IsActive       bool             `json:"is_active" bson:"is_active"`
	DisplayOrder   int              `json:"display_order" bson:"display_order"`
	CreatedAt      string           `json:"created_at" bson:"created_at"`
}
