package model

import (
	"time"
)

// Readiness bands, ordered from highest to lowest score range.
const (
	BandInternshipReady    = "Internship Ready"
	BandOnTrack            = "On Track"
	BandBuildingFoundation = "Building Foundation"
	BandEarlyExplorer      = "Early Explorer"
)

// AssessmentAttempt is one user's pass through the quiz. Score fields stay
// nil until completion; completion is one-way.
type AssessmentAttempt struct {
	ID            uint               `gorm:"primarykey" json:"id"`
	UserID        string             `json:"user_id" gorm:"type:uuid;not null;index"`
	TotalScore    *int               `json:"total_score,omitempty"`
	ReadinessBand *string            `json:"readiness_band,omitempty"`
	ScoresJSON    string             `json:"scores_json,omitempty" gorm:"type:jsonb;column:scores_json"`
	IsCompleted   bool               `json:"is_completed" gorm:"default:false;index"`
	ShareToken    *string            `json:"share_token,omitempty" gorm:"type:uuid;uniqueIndex"`
	Answers       []AssessmentAnswer `json:"answers,omitempty" gorm:"foreignKey:AttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt     time.Time          `json:"created_at"`
	CompletedAt   *time.Time         `json:"completed_at,omitempty"`
}
