package service

import (
	"github.com/launchpadhq/launchpad-api/internal/model"
	"github.com/launchpadhq/launchpad-api/internal/repository"
	"github.com/rs/zerolog/log"
)

// questionBank is the fixed 24-question readiness assessment: three Likert
// statements per dimension, in presentation order. The bank is seeded once
// at bootstrap and never mutated afterwards.
var questionBank = []model.AssessmentQuestion{
	{OrderIndex: 1, Dimension: model.DimensionTechnicalSkills, Text: "I can build a small project in my chosen stack without step-by-step tutorials."},
	{OrderIndex: 2, Dimension: model.DimensionTechnicalSkills, Text: "I am comfortable reading error messages and documentation to unblock myself."},
	{OrderIndex: 3, Dimension: model.DimensionTechnicalSkills, Text: "I use version control for my own projects, not just for coursework."},
	{OrderIndex: 4, Dimension: model.DimensionProblemSolving, Text: "When a problem is ambiguous, I break it into smaller questions before writing code."},
	{OrderIndex: 5, Dimension: model.DimensionProblemSolving, Text: "I can usually explain why my solution works, not just that it works."},
	{OrderIndex: 6, Dimension: model.DimensionProblemSolving, Text: "I try more than one approach before asking someone else for the answer."},
	{OrderIndex: 7, Dimension: model.DimensionCommunication, Text: "I can explain a technical topic to someone without a technical background."},
	{OrderIndex: 8, Dimension: model.DimensionCommunication, Text: "I write updates about my progress that others can act on."},
	{OrderIndex: 9, Dimension: model.DimensionCommunication, Text: "I ask clarifying questions when a task is unclear instead of guessing."},
	{OrderIndex: 10, Dimension: model.DimensionCollaboration, Text: "I have worked on a project where I depended on someone else's work to finish mine."},
	{OrderIndex: 11, Dimension: model.DimensionCollaboration, Text: "I give feedback on other people's work in a way they find useful."},
	{OrderIndex: 12, Dimension: model.DimensionCollaboration, Text: "I am comfortable having my own work reviewed and critiqued."},
	{OrderIndex: 13, Dimension: model.DimensionTimeManagement, Text: "I finish the things I commit to by the time I said I would."},
	{OrderIndex: 14, Dimension: model.DimensionTimeManagement, Text: "I plan my week around my most important deadlines."},
	{OrderIndex: 15, Dimension: model.DimensionTimeManagement, Text: "When I fall behind, I flag it early rather than hoping to catch up."},
	{OrderIndex: 16, Dimension: model.DimensionProfessionalism, Text: "I show up prepared for meetings and scheduled sessions."},
	{OrderIndex: 17, Dimension: model.DimensionProfessionalism, Text: "I follow through on small commitments, like replying to messages on time."},
	{OrderIndex: 18, Dimension: model.DimensionProfessionalism, Text: "I treat feedback on my work as information, not criticism of me."},
	{OrderIndex: 19, Dimension: model.DimensionLearningAgility, Text: "I can pick up a new tool or library well enough to use it within a few days."},
	{OrderIndex: 20, Dimension: model.DimensionLearningAgility, Text: "I seek out topics I don't understand rather than avoiding them."},
	{OrderIndex: 21, Dimension: model.DimensionLearningAgility, Text: "I regularly apply something I learned recently to a real task."},
	{OrderIndex: 22, Dimension: model.DimensionCareerClarity, Text: "I can name the role I want my first internship to be in."},
	{OrderIndex: 23, Dimension: model.DimensionCareerClarity, Text: "I know which skills that role requires and which of them I still lack."},
	{OrderIndex: 24, Dimension: model.DimensionCareerClarity, Text: "I have a concrete next step planned toward that role."},
}

// TotalQuestionCount is the size of the fixed bank; completion requires this
// many saved answers.
var TotalQuestionCount = len(questionBank)

// SeedQuestionBank inserts the static bank on first boot. Idempotent: a
// non-empty table is left untouched.
func SeedQuestionBank(repo repository.QuestionRepository) error {
	count, err := repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		log.Debug().Int64("count", count).Msg("Question bank already seeded")
		return nil
	}

	questions := make([]model.AssessmentQuestion, len(questionBank))
	copy(questions, questionBank)
	if err := repo.CreateBatch(questions); err != nil {
		log.Error().Err(err).Msg("Failed to seed question bank")
		return err
	}
	log.Info().Int("count", len(questions)).Msg("Question bank seeded")
	return nil
}
