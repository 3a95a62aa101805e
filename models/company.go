package models

// Company is a target company mentees interview for
type Company struct {
	ID               string   `json:"id" bson:"id"`
	Name             string   `json:"name" bson:"name"`
	LogoURL          string   `json:"logo_url,omitempty" bson:"logo_url,omitempty"`
	Description      string   `json:"description,omitempty" bson:"description,omitempty"`
	Category         string   `json:"category,omitempty" bson:"category,omitempty"`
	InterviewTracks  []string `json:"interview_tracks,omitempty" bson:"interview_tracks,omitempty"`
	DifficultyLevels []string `json:"difficulty_levels,omitempty" bson:"difficulty_levels,omitempty"`
	CreatedAt        string   `json:"created_at" bson:"created_at"`
}
