package service_test

import (
	"testing"

	"github.com/launchpadhq/launchpad-api/internal/apperror"
	"github.com/launchpadhq/launchpad-api/internal/dto"
	"github.com/launchpadhq/launchpad-api/internal/model"
	"github.com/launchpadhq/launchpad-api/internal/repository"
	"github.com/launchpadhq/launchpad-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type assessmentFixture struct {
	svc      service.AssessmentService
	users    *repository.MemoryUserRepository
	attempts *repository.MemoryAttemptRepository
}

func newAssessmentFixture(t *testing.T) *assessmentFixture {
	t.Helper()

	questions := repository.NewMemoryQuestionRepository()
	require.NoError(t, service.SeedQuestionBank(questions))

	attempts := repository.NewMemoryAttemptRepository()
	answers := repository.NewMemoryAnswerRepository()
	users := repository.NewMemoryUserRepository()

	svc := service.NewAssessmentService(questions, attempts, answers, users, service.NewReadinessBandService())
	return &assessmentFixture{svc: svc, users: users, attempts: attempts}
}

func answerAll(t *testing.T, svc service.AssessmentService, attemptID uint, userID string, value int) {
	t.Helper()
	for qid := uint(1); qid <= uint(service.TotalQuestionCount); qid++ {
		require.NoError(t, svc.SaveAnswer(attemptID, userID, dto.SaveAnswerRequest{QuestionID: qid, Value: value}))
	}
}

func TestSeedQuestionBankIsIdempotent(t *testing.T) {
	questions := repository.NewMemoryQuestionRepository()
	require.NoError(t, service.SeedQuestionBank(questions))
	require.NoError(t, service.SeedQuestionBank(questions))

	count, err := questions.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(service.TotalQuestionCount), count)
}

func TestListQuestionsOrderedBank(t *testing.T) {
	f := newAssessmentFixture(t)

	questions, err := f.svc.ListQuestions()
	require.NoError(t, err)
	require.Len(t, questions, service.TotalQuestionCount)

	perDimension := make(map[string]int)
	for i, q := range questions {
		assert.Equal(t, i+1, q.OrderIndex)
		assert.NotEmpty(t, q.Text)
		perDimension[q.Dimension]++
	}
	require.Len(t, perDimension, len(model.Dimensions))
	for _, dim := range model.Dimensions {
		assert.Equal(t, 3, perDimension[dim], "dimension %s", dim)
	}
}

func TestStartOrResumeAttempt(t *testing.T) {
	f := newAssessmentFixture(t)

	first, err := f.svc.StartOrResumeAttempt("user-1", false)
	require.NoError(t, err)
	assert.False(t, first.Resumed)
	assert.False(t, first.IsCompleted)
	assert.Empty(t, first.Answers)

	resumed, err := f.svc.StartOrResumeAttempt("user-1", false)
	require.NoError(t, err)
	assert.True(t, resumed.Resumed)
	assert.Equal(t, first.ID, resumed.ID)

	fresh, err := f.svc.StartOrResumeAttempt("user-1", true)
	require.NoError(t, err)
	assert.False(t, fresh.Resumed)
	assert.NotEqual(t, first.ID, fresh.ID)
}

func TestResumeRestoresSavedAnswers(t *testing.T) {
	f := newAssessmentFixture(t)

	attempt, err := f.svc.StartOrResumeAttempt("user-1", false)
	require.NoError(t, err)

	require.NoError(t, f.svc.SaveAnswer(attempt.ID, "user-1", dto.SaveAnswerRequest{QuestionID: 1, Value: 4}))
	require.NoError(t, f.svc.SaveAnswer(attempt.ID, "user-1", dto.SaveAnswerRequest{QuestionID: 2, Value: 2}))

	resumed, err := f.svc.StartOrResumeAttempt("user-1", false)
	require.NoError(t, err)
	require.Len(t, resumed.Answers, 2)
	assert.Equal(t, uint(1), resumed.Answers[0].QuestionID)
	assert.Equal(t, 4, resumed.Answers[0].Value)
}

func TestSaveAnswerOverwritesPreviousValue(t *testing.T) {
	f := newAssessmentFixture(t)

	attempt, err := f.svc.StartOrResumeAttempt("user-1", false)
	require.NoError(t, err)

	require.NoError(t, f.svc.SaveAnswer(attempt.ID, "user-1", dto.SaveAnswerRequest{QuestionID: 5, Value: 2}))
	require.NoError(t, f.svc.SaveAnswer(attempt.ID, "user-1", dto.SaveAnswerRequest{QuestionID: 5, Value: 5}))

	resumed, err := f.svc.StartOrResumeAttempt("user-1", false)
	require.NoError(t, err)
	require.Len(t, resumed.Answers, 1)
	assert.Equal(t, 5, resumed.Answers[0].Value)
}

func TestSaveAnswerGuards(t *testing.T) {
	f := newAssessmentFixture(t)

	attempt, err := f.svc.StartOrResumeAttempt("user-1", false)
	require.NoError(t, err)

	t.Run("value out of range", func(t *testing.T) {
		err := f.svc.SaveAnswer(attempt.ID, "user-1", dto.SaveAnswerRequest{QuestionID: 1, Value: 0})
		assert.True(t, apperror.Is(err, apperror.CodeValidationFailed))

		err = f.svc.SaveAnswer(attempt.ID, "user-1", dto.SaveAnswerRequest{QuestionID: 1, Value: 6})
		assert.True(t, apperror.Is(err, apperror.CodeValidationFailed))
	})

	t.Run("unknown attempt", func(t *testing.T) {
		err := f.svc.SaveAnswer(9999, "user-1", dto.SaveAnswerRequest{QuestionID: 1, Value: 3})
		assert.True(t, apperror.Is(err, apperror.CodeNotFound))
	})

	t.Run("foreign attempt", func(t *testing.T) {
		err := f.svc.SaveAnswer(attempt.ID, "someone-else", dto.SaveAnswerRequest{QuestionID: 1, Value: 3})
		assert.True(t, apperror.Is(err, apperror.CodeForbidden))
	})

	t.Run("unknown question", func(t *testing.T) {
		err := f.svc.SaveAnswer(attempt.ID, "user-1", dto.SaveAnswerRequest{QuestionID: 999, Value: 3})
		assert.True(t, apperror.Is(err, apperror.CodeNotFound))
	})
}

func TestCompleteAttemptScoring(t *testing.T) {
	cases := []struct {
		name  string
		value int
		total int
		band  string
	}{
		{"all threes lands on track", 3, 72, model.BandOnTrack},
		{"all fives is internship ready", 5, 120, model.BandInternshipReady},
		{"all ones is early explorer", 1, 24, model.BandEarlyExplorer},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newAssessmentFixture(t)

			attempt, err := f.svc.StartOrResumeAttempt("user-1", false)
			require.NoError(t, err)
			answerAll(t, f.svc, attempt.ID, "user-1", tc.value)

			result, err := f.svc.CompleteAttempt(attempt.ID, "user-1")
			require.NoError(t, err)

			assert.Equal(t, tc.total, result.TotalScore)
			assert.Equal(t, tc.band, result.ReadinessBand)
			assert.Equal(t, service.TotalQuestionCount, result.AnswerCount)
			assert.NotEmpty(t, result.ShareToken)
			assert.False(t, result.CompletedAt.IsZero())

			require.Len(t, result.DimensionScores, len(model.Dimensions))
			for _, dim := range model.Dimensions {
				assert.Equal(t, tc.value*3, result.DimensionScores[dim], "dimension %s", dim)
			}
		})
	}
}

func TestCompleteAttemptRejectsIncompleteAnswers(t *testing.T) {
	f := newAssessmentFixture(t)

	attempt, err := f.svc.StartOrResumeAttempt("user-1", false)
	require.NoError(t, err)
	for qid := uint(1); qid < uint(service.TotalQuestionCount); qid++ {
		require.NoError(t, f.svc.SaveAnswer(attempt.ID, "user-1", dto.SaveAnswerRequest{QuestionID: qid, Value: 3}))
	}

	_, err = f.svc.CompleteAttempt(attempt.ID, "user-1")
	assert.True(t, apperror.Is(err, apperror.CodeIncompleteAnswers))

	// The rejection must not mutate the attempt.
	stored, findErr := f.attempts.FindByID(attempt.ID)
	require.NoError(t, findErr)
	assert.False(t, stored.IsCompleted)
	assert.Nil(t, stored.TotalScore)
	assert.Nil(t, stored.ShareToken)
}

func TestCompleteAttemptIsOneWay(t *testing.T) {
	f := newAssessmentFixture(t)

	attempt, err := f.svc.StartOrResumeAttempt("user-1", false)
	require.NoError(t, err)
	answerAll(t, f.svc, attempt.ID, "user-1", 4)

	first, err := f.svc.CompleteAttempt(attempt.ID, "user-1")
	require.NoError(t, err)

	_, err = f.svc.CompleteAttempt(attempt.ID, "user-1")
	assert.True(t, apperror.Is(err, apperror.CodeAlreadyCompleted))

	err = f.svc.SaveAnswer(attempt.ID, "user-1", dto.SaveAnswerRequest{QuestionID: 1, Value: 1})
	assert.True(t, apperror.Is(err, apperror.CodeAlreadyCompleted))

	// The original result, share token included, survives the retries.
	result, err := f.svc.GetResult(attempt.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, first.ShareToken, result.ShareToken)
	assert.Equal(t, first.TotalScore, result.TotalScore)
}

func TestGetResultGuards(t *testing.T) {
	f := newAssessmentFixture(t)

	attempt, err := f.svc.StartOrResumeAttempt("user-1", false)
	require.NoError(t, err)

	_, err = f.svc.GetResult(attempt.ID, "user-1")
	assert.True(t, apperror.Is(err, apperror.CodeNotCompleted))

	_, err = f.svc.GetResult(attempt.ID, "someone-else")
	assert.True(t, apperror.Is(err, apperror.CodeForbidden))

	_, err = f.svc.GetResult(9999, "user-1")
	assert.True(t, apperror.Is(err, apperror.CodeNotFound))
}

func TestGetPublicResult(t *testing.T) {
	f := newAssessmentFixture(t)
	require.NoError(t, f.users.Create(&model.User{ID: "user-1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}))

	attempt, err := f.svc.StartOrResumeAttempt("user-1", false)
	require.NoError(t, err)
	answerAll(t, f.svc, attempt.ID, "user-1", 3)
	result, err := f.svc.CompleteAttempt(attempt.ID, "user-1")
	require.NoError(t, err)

	public, err := f.svc.GetPublicResult(result.ShareToken)
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", public.DisplayName)
	assert.Equal(t, model.BandOnTrack, public.ReadinessBand)
	assert.Equal(t, "72-95", public.ScoreRange)
	assert.Equal(t, 72, public.TotalScore)
}

func TestGetPublicResultFallsBackWithoutProfile(t *testing.T) {
	f := newAssessmentFixture(t)

	attempt, err := f.svc.StartOrResumeAttempt("ghost-user", false)
	require.NoError(t, err)
	answerAll(t, f.svc, attempt.ID, "ghost-user", 2)
	result, err := f.svc.CompleteAttempt(attempt.ID, "ghost-user")
	require.NoError(t, err)

	public, err := f.svc.GetPublicResult(result.ShareToken)
	require.NoError(t, err)
	assert.Equal(t, "Launchpad Student", public.DisplayName)
}

func TestGetPublicResultUnknownToken(t *testing.T) {
	f := newAssessmentFixture(t)

	_, err := f.svc.GetPublicResult("no-such-token")
	assert.True(t, apperror.Is(err, apperror.CodeNotFound))
}

func TestDiscardIncompleteAttempt(t *testing.T) {
	f := newAssessmentFixture(t)

	// No incomplete attempt is not an error.
	require.NoError(t, f.svc.DiscardIncompleteAttempt("user-1"))

	attempt, err := f.svc.StartOrResumeAttempt("user-1", false)
	require.NoError(t, err)
	require.NoError(t, f.svc.SaveAnswer(attempt.ID, "user-1", dto.SaveAnswerRequest{QuestionID: 1, Value: 5}))

	require.NoError(t, f.svc.DiscardIncompleteAttempt("user-1"))

	fresh, err := f.svc.StartOrResumeAttempt("user-1", false)
	require.NoError(t, err)
	assert.False(t, fresh.Resumed)
	assert.NotEqual(t, attempt.ID, fresh.ID)
	assert.Empty(t, fresh.Answers)
}

func TestDiscardLeavesCompletedAttemptsAlone(t *testing.T) {
	f := newAssessmentFixture(t)

	attempt, err := f.svc.StartOrResumeAttempt("user-1", false)
	require.NoError(t, err)
	answerAll(t, f.svc, attempt.ID, "user-1", 3)
	result, err := f.svc.CompleteAttempt(attempt.ID, "user-1")
	require.NoError(t, err)

	require.NoError(t, f.svc.DiscardIncompleteAttempt("user-1"))

	kept, err := f.svc.GetResult(attempt.ID, "user-1")
	require.NoError(t, err)
	assert.Equal(t, result.ShareToken, kept.ShareToken)
}
