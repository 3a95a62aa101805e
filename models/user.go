package models

// Role is the closed set of actor roles known to the API
type Role string

// Actor roles
const (
	RoleAdmin  Role = "admin"
	RoleMentor Role = "mentor"
	RoleMentee Role = "mentee"
)

// User contains a user account for any role
type User struct {
	ID          string `json:"id" bson:"id"`
	Name        string `json:"name" bson:"name"`
	Email       string `json:"email" bson:"email"`
	Password    string `json:"-" bson:"password"`
	Role        Role   `json:"role" bson:"role"`
	Status      string `json:"status" bson:"status"`
	PlanID      string `json:"plan_id,omitempty" bson:"plan_id,omitempty"`
	PlanName    string `json:"plan_name,omitempty" bson:"plan_name,omitempty"`
	MentorID    string `json:"mentor_id,omitempty" bson:"mentor_id,omitempty"`
	CurrentRole string `json:"current_role,omitempty" bson:"current_role,omitempty"`
	TargetRole  string `json:"target_role,omitempty" bson:"target_role,omitempty"`
	CreatedAt   string `json:"created_at" bson:"created_at"`
}
