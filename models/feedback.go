package models

// Feedback is a mentor's structured scorecard for a completed mock interview.
// Scores are on a 0-5 scale.
type Feedback struct {
	ID             string `json:"id" bson:"id"`
	MockID         string `json:"mock_id" bson:"mock_id"`
	MentorID       string `json:"mentor_id" bson:"mentor_id"`
	MenteeID       string `json:"mentee_id" bson:"mentee_id"`
	ProblemSolving int    `json:"problem_solving" bson:"problem_solving"`
	Communication  int    `json:"communication" bson:"communication"`
	TechnicalDepth int    `json:"technical_depth" bson:"technical_depth"`
	CodeQuality    int    `json:"code_quality" bson:"code_quality"`
	Overall        int    `json:"overall" bson:"overall"`
	Strengths      string `json:"strengths" bson:"strengths"`
	Improvements   string `json:"improvements" bson:"improvements"`
	Hireability    string `json:"hireability" bson:"hireability"`
	ActionItems    string `json:"action_items" bson:"action_items"`
	CreatedAt      string `json:"created_at" bson:"created_at"`
}
