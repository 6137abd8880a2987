package model

import "time"

// Likert scale bounds for answer values.
const (
	AnswerValueMin = 1
	AnswerValueMax = 5
)

// AssessmentAnswer is one response to one question within one attempt.
// The (attempt_id, question_id) unique index makes re-answering an upsert
// at the schema level, so a double-submit cannot produce duplicate rows.
type AssessmentAnswer struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	AttemptID  uint      `json:"attempt_id" gorm:"not null;uniqueIndex:idx_attempt_question"`
	QuestionID uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_attempt_question"`
	Value      int       `json:"value" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
