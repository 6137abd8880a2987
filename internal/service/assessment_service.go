package service

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/launchpadhq/launchpad-api/internal/apperror"
	"github.com/launchpadhq/launchpad-api/internal/dto"
	"github.com/launchpadhq/launchpad-api/internal/model"
	"github.com/launchpadhq/launchpad-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AssessmentService drives the 24-question readiness assessment: question
// listing, resumable attempts, answer capture, scoring and the shareable
// result snapshot.
type AssessmentService interface {
	ListQuestions() ([]dto.QuestionDTO, error)
	StartOrResumeAttempt(userID string, forceNew bool) (*dto.AttemptDTO, error)
	DiscardIncompleteAttempt(userID string) error
	SaveAnswer(attemptID uint, userID string, req dto.SaveAnswerRequest) error
	CompleteAttempt(attemptID uint, userID string) (*dto.AttemptResultDTO, error)
	GetResult(attemptID uint, userID string) (*dto.AttemptResultDTO, error)
	GetPublicResult(shareToken string) (*dto.PublicResultDTO, error)
}

type assessmentService struct {
	questionRepo repository.QuestionRepository
	attemptRepo  repository.AttemptRepository
	answerRepo   repository.AnswerRepository
	userRepo     repository.UserRepository
	bands        ReadinessBandService
}

func NewAssessmentService(
	questionRepo repository.QuestionRepository,
	attemptRepo repository.AttemptRepository,
	answerRepo repository.AnswerRepository,
	userRepo repository.UserRepository,
	bands ReadinessBandService,
) AssessmentService {
	return &assessmentService{
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
		answerRepo:   answerRepo,
		userRepo:     userRepo,
		bands:        bands,
	}
}

func (s *assessmentService) ListQuestions() ([]dto.QuestionDTO, error) {
	questions, err := s.questionRepo.FindAllOrdered()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list assessment questions")
		return nil, apperror.Wrap(err, "error fetching questions")
	}
	var dtos []dto.QuestionDTO
	if err := copier.Copy(&dtos, &questions); err != nil {
		return nil, apperror.Wrap(err, "error preparing question list")
	}
	return dtos, nil
}

// StartOrResumeAttempt returns the user's latest incomplete attempt
// unchanged unless forceNew is set, in which case a fresh attempt is
// created. Resume is idempotent: calling it repeatedly performs no writes.
func (s *assessmentService) StartOrResumeAttempt(userID string, forceNew bool) (*dto.AttemptDTO, error) {
	if !forceNew {
		existing, err := s.attemptRepo.FindLatestIncompleteByUser(userID)
		if err == nil {
			return s.attemptDTO(existing, true)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Wrap(err, "error looking up incomplete attempt")
		}
	}

	attempt := model.AssessmentAttempt{UserID: userID}
	if err := s.attemptRepo.Create(&attempt); err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to create assessment attempt")
		return nil, apperror.Wrap(err, "error creating attempt")
	}
	return s.attemptDTO(&attempt, false)
}

// DiscardIncompleteAttempt deletes the latest incomplete attempt and its
// answers so the user can restart from scratch. No-op when none exists.
// Answers are removed first; an attempt orphaned mid-delete is only ever
// reachable through its parent id, so the two deletes need no transaction.
func (s *assessmentService) DiscardIncompleteAttempt(userID string) error {
	attempt, err := s.attemptRepo.FindLatestIncompleteByUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return apperror.Wrap(err, "error looking up incomplete attempt")
	}

	if err := s.answerRepo.DeleteByAttemptID(attempt.ID); err != nil {
		return apperror.Wrap(err, "error deleting attempt answers")
	}
	if err := s.attemptRepo.Delete(attempt.ID); err != nil {
		return apperror.Wrap(err, "error deleting attempt")
	}
	log.Info().Str("userID", userID).Uint("attemptID", attempt.ID).Msg("Incomplete attempt discarded")
	return nil
}

// SaveAnswer upserts the answer for (attempt, question); re-answering the
// same question before completion overwrites the previous value.
func (s *assessmentService) SaveAnswer(attemptID uint, userID string, req dto.SaveAnswerRequest) error {
	if req.Value < model.AnswerValueMin || req.Value > model.AnswerValueMax {
		return apperror.Newf(apperror.CodeValidationFailed, "answer value must be between %d and %d", model.AnswerValueMin, model.AnswerValueMax).WithFields("value")
	}

	attempt, err := s.ownedIncompleteAttempt(attemptID, userID)
	if err != nil {
		return err
	}

	if _, err := s.questionRepo.FindByID(req.QuestionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.Newf(apperror.CodeNotFound, "question %d not found", req.QuestionID)
		}
		return apperror.Wrap(err, "error looking up question")
	}

	answer := model.AssessmentAnswer{
		AttemptID:  attempt.ID,
		QuestionID: req.QuestionID,
		Value:      req.Value,
	}
	if err := s.answerRepo.Upsert(&answer); err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Uint("questionID", req.QuestionID).Msg("Failed to save answer")
		return apperror.Wrap(err, "error saving answer")
	}
	return nil
}

// CompleteAttempt scores and classifies the attempt. Every question must
// have exactly one saved answer; the transition is one-way.
func (s *assessmentService) CompleteAttempt(attemptID uint, userID string) (*dto.AttemptResultDTO, error) {
	attempt, err := s.ownedIncompleteAttempt(attemptID, userID)
	if err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.FindAllOrdered()
	if err != nil {
		return nil, apperror.Wrap(err, "error fetching questions")
	}
	answers, err := s.answerRepo.FindByAttemptID(attempt.ID)
	if err != nil {
		return nil, apperror.Wrap(err, "error fetching answers")
	}
	if len(answers) != len(questions) {
		return nil, apperror.Newf(apperror.CodeIncompleteAnswers,
			"answer all questions before finishing: %d of %d answered", len(answers), len(questions))
	}

	dimensionByQuestion := make(map[uint]string, len(questions))
	for _, q := range questions {
		dimensionByQuestion[q.ID] = q.Dimension
	}

	subtotals := make(map[string]int, len(model.Dimensions))
	total := 0
	for _, answer := range answers {
		dimension, ok := dimensionByQuestion[answer.QuestionID]
		if !ok {
			return nil, apperror.Newf(apperror.CodeInternal, "answer references unknown question %d", answer.QuestionID)
		}
		subtotals[dimension] += answer.Value
		total += answer.Value
	}

	scoresJSON, err := json.Marshal(subtotals)
	if err != nil {
		return nil, apperror.Wrap(err, "error serializing dimension scores")
	}

	band := s.bands.BandForScore(total)
	token := uuid.NewString()
	now := time.Now()

	attempt.TotalScore = &total
	attempt.ReadinessBand = &band
	attempt.ScoresJSON = string(scoresJSON)
	attempt.ShareToken = &token
	attempt.IsCompleted = true
	attempt.CompletedAt = &now

	if err := s.attemptRepo.Update(attempt); err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("Failed to persist completed attempt")
		return nil, apperror.Wrap(err, "error completing attempt")
	}

	log.Info().Uint("attemptID", attemptID).Int("totalScore", total).Str("band", band).Msg("Assessment attempt completed")
	return s.resultDTO(attempt, len(answers)), nil
}

func (s *assessmentService) GetResult(attemptID uint, userID string) (*dto.AttemptResultDTO, error) {
	attempt, err := s.attemptRepo.FindByID(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Newf(apperror.CodeNotFound, "attempt %d not found", attemptID)
		}
		return nil, apperror.Wrap(err, "error looking up attempt")
	}
	if attempt.UserID != userID {
		return nil, apperror.New(apperror.CodeForbidden, "attempt belongs to another user")
	}
	if !attempt.IsCompleted {
		return nil, apperror.New(apperror.CodeNotCompleted, "attempt is not completed yet")
	}

	count, err := s.answerRepo.CountByAttemptID(attempt.ID)
	if err != nil {
		return nil, apperror.Wrap(err, "error counting answers")
	}
	return s.resultDTO(attempt, int(count)), nil
}

// GetPublicResult serves the redacted share view. No ownership check: the
// token itself is the capability.
func (s *assessmentService) GetPublicResult(shareToken string) (*dto.PublicResultDTO, error) {
	attempt, err := s.attemptRepo.FindByShareToken(shareToken)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.CodeNotFound, "result not found")
		}
		return nil, apperror.Wrap(err, "error looking up shared result")
	}
	if !attempt.IsCompleted || attempt.TotalScore == nil || attempt.ReadinessBand == nil {
		return nil, apperror.New(apperror.CodeNotFound, "result not found")
	}

	displayName := "Launchpad Student"
	if user, err := s.userRepo.FindByID(attempt.UserID); err == nil {
		displayName = user.DisplayName()
	}

	return &dto.PublicResultDTO{
		DisplayName:   displayName,
		ReadinessBand: *attempt.ReadinessBand,
		ScoreRange:    s.bands.RangeForBand(*attempt.ReadinessBand),
		TotalScore:    *attempt.TotalScore,
	}, nil
}

// ownedIncompleteAttempt loads the attempt and applies the shared guard
// ladder: NotFound, then Forbidden, then AlreadyCompleted.
func (s *assessmentService) ownedIncompleteAttempt(attemptID uint, userID string) (*model.AssessmentAttempt, error) {
	attempt, err := s.attemptRepo.FindByID(attemptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Newf(apperror.CodeNotFound, "attempt %d not found", attemptID)
		}
		return nil, apperror.Wrap(err, "error looking up attempt")
	}
	if attempt.UserID != userID {
		return nil, apperror.New(apperror.CodeForbidden, "attempt belongs to another user")
	}
	if attempt.IsCompleted {
		return nil, apperror.New(apperror.CodeAlreadyCompleted, "attempt is already completed")
	}
	return attempt, nil
}

func (s *assessmentService) attemptDTO(attempt *model.AssessmentAttempt, resumed bool) (*dto.AttemptDTO, error) {
	answers, err := s.answerRepo.FindByAttemptID(attempt.ID)
	if err != nil {
		return nil, apperror.Wrap(err, "error fetching attempt answers")
	}
	answerDTOs := make([]dto.AnswerDTO, 0, len(answers))
	for _, a := range answers {
		answerDTOs = append(answerDTOs, dto.AnswerDTO{QuestionID: a.QuestionID, Value: a.Value})
	}
	return &dto.AttemptDTO{
		ID:          attempt.ID,
		UserID:      attempt.UserID,
		IsCompleted: attempt.IsCompleted,
		Resumed:     resumed,
		Answers:     answerDTOs,
		CreatedAt:   attempt.CreatedAt,
	}, nil
}

func (s *assessmentService) resultDTO(attempt *model.AssessmentAttempt, answerCount int) *dto.AttemptResultDTO {
	result := &dto.AttemptResultDTO{
		ID:          attempt.ID,
		AnswerCount: answerCount,
	}
	if attempt.TotalScore != nil {
		result.TotalScore = *attempt.TotalScore
	}
	if attempt.ReadinessBand != nil {
		result.ReadinessBand = *attempt.ReadinessBand
	}
	if attempt.ShareToken != nil {
		result.ShareToken = *attempt.ShareToken
	}
	if attempt.CompletedAt != nil {
		result.CompletedAt = *attempt.CompletedAt
	}
	if attempt.ScoresJSON != "" {
		scores := make(map[string]int)
		if err := json.Unmarshal([]byte(attempt.ScoresJSON), &scores); err == nil {
			result.DimensionScores = scores
		}
	}
	return result
}
