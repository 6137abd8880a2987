package dto

import "time"

// QuestionDTO is one entry of the fixed question bank, in display order.
type QuestionDTO struct {
	ID         uint   `json:"id"`
	Dimension  string `json:"dimension"`
	Text       string `json:"text"`
	OrderIndex int    `json:"order_index"`
}

// StartAttemptRequest controls resume-vs-restart behaviour. With ForceNew
// false the latest incomplete attempt is returned unchanged.
type StartAttemptRequest struct {
	ForceNew bool `json:"force_new"`
}

// SaveAnswerRequest records one Likert response within an attempt.
type SaveAnswerRequest struct {
	QuestionID uint `json:"question_id" binding:"required"`
	Value      int  `json:"value" binding:"required,min=1,max=5"`
}

// AttemptDTO is the in-progress view of an attempt, including the answers
// already saved so a client can restore quiz state on resume.
type AttemptDTO struct {
	ID          uint        `json:"id"`
	UserID      string      `json:"user_id"`
	IsCompleted bool        `json:"is_completed"`
	Resumed     bool        `json:"resumed"`
	Answers     []AnswerDTO `json:"answers"`
	CreatedAt   time.Time   `json:"created_at"`
}

type AnswerDTO struct {
	QuestionID uint `json:"question_id"`
	Value      int  `json:"value"`
}

// AttemptResultDTO is the owner-facing view of a completed attempt.
type AttemptResultDTO struct {
	ID              uint           `json:"id"`
	TotalScore      int            `json:"total_score"`
	ReadinessBand   string         `json:"readiness_band"`
	DimensionScores map[string]int `json:"dimension_scores"`
	AnswerCount     int            `json:"answer_count"`
	ShareToken      string         `json:"share_token"`
	CompletedAt     time.Time      `json:"completed_at"`
}

// PublicResultDTO is the redacted view served by share-token lookup. No
// per-dimension detail and no owner identifiers beyond the display name.
type PublicResultDTO struct {
	DisplayName   string `json:"display_name"`
	ReadinessBand string `json:"readiness_band"`
	ScoreRange    string `json:"score_range"`
	TotalScore    int    `json:"total_score"`
}
