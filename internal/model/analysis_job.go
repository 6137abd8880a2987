package model

import (
	"time"

	"github.com/lib/pq"
)

// AnalysisJob statuses. A job leaves "processing" exactly once.
const (
	JobStatusProcessing = "processing"
	JobStatusComplete   = "complete"
	JobStatusFailed     = "failed"
)

// AnalysisJob is one asynchronous CV-scoring request. Result fields are
// populated by the analyzer callback (or the simulated completion path) and
// never mutated again once the job reaches a terminal status.
type AnalysisJob struct {
	ID          string         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string         `json:"user_id" gorm:"type:uuid;not null;index"`
	Status      string         `json:"status" gorm:"not null;default:'processing'"`
	CvFileName  string         `json:"cv_file_name"`
	CvFilePath  string         `json:"-"`
	CvText      string         `json:"cv_text,omitempty" gorm:"type:text"`
	JdText      string         `json:"jd_text,omitempty" gorm:"type:text"`
	Score       *float64       `json:"score,omitempty"`
	Strengths   pq.StringArray `json:"strengths,omitempty" gorm:"type:text[]"`
	Gaps        pq.StringArray `json:"gaps,omitempty" gorm:"type:text[]"`
	QuickWins   pq.StringArray `json:"quick_wins,omitempty" gorm:"type:text[]"`
	Notes       string         `json:"notes,omitempty" gorm:"type:text"`
	NeedsJd     bool           `json:"needs_jd" gorm:"default:false"`
	NeedsRole   bool           `json:"needs_target_role" gorm:"default:false"`
	CreatedAt   time.Time      `json:"created_at"`
	CompletedAt *time.Time     `json:"completed_at,omitempty"`
}

// Terminal reports whether the job has reached a final status.
func (j *AnalysisJob) Terminal() bool {
	return j.Status == JobStatusComplete || j.Status == JobStatusFailed
}
