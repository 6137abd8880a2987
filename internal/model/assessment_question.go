package model

import "time"

// The eight skill dimensions the readiness assessment measures. Three
// questions per dimension, 24 questions total.
const (
	DimensionTechnicalSkills = "technical_skills"
	DimensionProblemSolving  = "problem_solving"
	DimensionCommunication   = "communication"
	DimensionCollaboration   = "collaboration"
	DimensionTimeManagement  = "time_management"
	DimensionProfessionalism = "professionalism"
	DimensionLearningAgility = "learning_agility"
	DimensionCareerClarity   = "career_clarity"
)

// Dimensions lists the skill categories in presentation order.
var Dimensions = []string{
	DimensionTechnicalSkills,
	DimensionProblemSolving,
	DimensionCommunication,
	DimensionCollaboration,
	DimensionTimeManagement,
	DimensionProfessionalism,
	DimensionLearningAgility,
	DimensionCareerClarity,
}

// AssessmentQuestion is immutable after seeding; there is no update path.
type AssessmentQuestion struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Dimension  string    `json:"dimension" gorm:"not null;index"`
	Text       string    `json:"text" gorm:"type:text;not null"`
	OrderIndex int       `json:"order_index" gorm:"not null;uniqueIndex"`
	CreatedAt  time.Time `json:"created_at"`
}
