package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/launchpadhq/launchpad-api/config"
	"github.com/launchpadhq/launchpad-api/internal/apperror"
	"github.com/launchpadhq/launchpad-api/internal/dto"
	"github.com/launchpadhq/launchpad-api/internal/model"
	"github.com/launchpadhq/launchpad-api/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Notes shown to the user when the analyzer handoff fails. Internal error
// detail stays in the logs.
const analyzerUnreachableNotes = "Failed to connect to analysis service. Please resubmit your CV in a few minutes."

// SubmitInput carries the uploaded CV. File may be nil when the client sent
// no file at all.
type SubmitInput struct {
	FileName string
	File     io.Reader
	Size     int64
	JdText   string
}

// AnalysisService manages the CV-scoring job lifecycle: submission, handoff
// to the external analyzer, the analyzer's file fetch and result callback,
// and status polling by the client.
type AnalysisService interface {
	Submit(ctx context.Context, userID string, input SubmitInput) (*dto.AnalysisJobDTO, error)
	GetJob(jobID, userID string) (*dto.AnalysisJobDTO, error)
	ListJobs(userID string) ([]dto.AnalysisJobSummaryDTO, error)
	SourceFilePath(jobID, providedSecret string) (path string, fileName string, err error)
	ApplyCallback(payload dto.CallbackPayload, providedSecret string) (*dto.AnalysisJobDTO, error)
}

type analysisService struct {
	jobRepo  repository.AnalysisJobRepository
	userRepo repository.UserRepository
	analyzer AnalyzerClient
	cfg      *config.Config
}

func NewAnalysisService(
	jobRepo repository.AnalysisJobRepository,
	userRepo repository.UserRepository,
	analyzer AnalyzerClient,
	cfg *config.Config,
) AnalysisService {
	return &analysisService{jobRepo: jobRepo, userRepo: userRepo, analyzer: analyzer, cfg: cfg}
}

// Submit accepts the upload, creates the job in processing state and hands
// it to the analyzer. An analyzer failure is not returned to the caller: the
// job id must still reach the client for polling, so the failure is recorded
// as the job's terminal state instead.
func (s *analysisService) Submit(ctx context.Context, userID string, input SubmitInput) (*dto.AnalysisJobDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil || !user.OnboardingCompleted {
		return nil, apperror.New(apperror.CodeOnboardingIncomplete, "complete your profile before requesting a CV analysis")
	}
	if input.File == nil || input.Size == 0 {
		return nil, apperror.New(apperror.CodeMissingFile, "a CV file is required")
	}

	jobID := uuid.NewString()
	path, err := s.storeUpload(jobID, input)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to store uploaded CV")
		return nil, apperror.Wrap(err, "error storing uploaded file")
	}

	job := &model.AnalysisJob{
		ID:         jobID,
		UserID:     userID,
		Status:     model.JobStatusProcessing,
		CvFileName: input.FileName,
		CvFilePath: path,
		JdText:     input.JdText,
	}
	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperror.Wrap(err, "error creating analysis job")
	}

	switch {
	case s.cfg.Analyzer.BaseURL != "":
		s.dispatch(ctx, job, user)
	case s.cfg.Analyzer.Simulate:
		// Dev-only stand-in for the external analyzer, gated behind
		// ANALYZER_SIMULATE. One-shot timer, not a recurring scheduler.
		time.AfterFunc(s.cfg.Analyzer.SimulateDelay, func() { s.completeSimulated(job.ID) })
	}

	return s.jobDTO(job), nil
}

func (s *analysisService) storeUpload(jobID string, input SubmitInput) (string, error) {
	if err := os.MkdirAll(s.cfg.Uploads.Dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(s.cfg.Uploads.Dir, jobID+filepath.Ext(input.FileName))
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, input.File); err != nil {
		return "", err
	}
	return path, nil
}

func (s *analysisService) dispatch(ctx context.Context, job *model.AnalysisJob, user *model.User) {
	req := dto.AnalyzeRequestDTO{
		JobID:       job.ID,
		UserID:      user.ID,
		TargetRole:  user.TargetRole,
		Education:   user.EducationLevel,
		CvURL:       s.cfg.Server.PublicBaseURL + "/internal/analysis/jobs/" + job.ID + "/cv",
		JdText:      job.JdText,
		CallbackURL: s.cfg.Server.PublicBaseURL + "/internal/analysis/callback",
	}
	if err := s.analyzer.Analyze(ctx, req); err != nil {
		now := time.Now()
		job.Status = model.JobStatusFailed
		job.Notes = analyzerUnreachableNotes
		job.CompletedAt = &now
		if updateErr := s.jobRepo.Update(job); updateErr != nil {
			log.Error().Err(updateErr).Str("jobID", job.ID).Msg("Failed to mark analysis job failed")
		}
	}
}

// completeSimulated writes a fixed placeholder result so the pipeline stays
// exercisable without the external analyzer. Never runs in production
// configs: it is reachable only through the ANALYZER_SIMULATE flag.
func (s *analysisService) completeSimulated(jobID string) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil || job.Terminal() {
		return
	}

	needsRole := true
	if user, err := s.userRepo.FindByID(job.UserID); err == nil && user.TargetRole != "" {
		needsRole = false
	}

	now := time.Now()
	score := 70.0
	job.Status = model.JobStatusComplete
	job.Score = &score
	job.Strengths = []string{"Clear project descriptions", "Relevant coursework listed"}
	job.Gaps = []string{"No quantified impact on achievements"}
	job.QuickWins = []string{"Add metrics to your top two bullet points"}
	job.Notes = "Simulated analysis result for local development."
	job.NeedsJd = job.JdText == ""
	job.NeedsRole = needsRole
	job.CompletedAt = &now

	if err := s.jobRepo.Update(job); err != nil {
		log.Error().Err(err).Str("jobID", jobID).Msg("Failed to complete simulated analysis")
		return
	}
	log.Info().Str("jobID", jobID).Msg("Analysis job completed via simulated analyzer")
}

func (s *analysisService) GetJob(jobID, userID string) (*dto.AnalysisJobDTO, error) {
	job, err := s.findJob(jobID)
	if err != nil {
		return nil, err
	}
	if job.UserID != userID {
		return nil, apperror.New(apperror.CodeForbidden, "job belongs to another user")
	}
	return s.jobDTO(job), nil
}

func (s *analysisService) ListJobs(userID string) ([]dto.AnalysisJobSummaryDTO, error) {
	jobs, err := s.jobRepo.FindAllByUser(userID)
	if err != nil {
		return nil, apperror.Wrap(err, "error listing analysis jobs")
	}
	summaries := make([]dto.AnalysisJobSummaryDTO, 0, len(jobs))
	for _, job := range jobs {
		summaries = append(summaries, dto.AnalysisJobSummaryDTO{
			ID:          job.ID,
			Status:      job.Status,
			CvFileName:  job.CvFileName,
			Score:       job.Score,
			CreatedAt:   job.CreatedAt,
			CompletedAt: job.CompletedAt,
		})
	}
	return summaries, nil
}

// SourceFilePath authorizes the analyzer's fetch of the original upload.
func (s *analysisService) SourceFilePath(jobID, providedSecret string) (string, string, error) {
	if err := s.checkSecret(providedSecret); err != nil {
		return "", "", err
	}
	job, err := s.findJob(jobID)
	if err != nil {
		return "", "", err
	}
	if _, err := os.Stat(job.CvFilePath); err != nil {
		return "", "", apperror.New(apperror.CodeNotFound, "source file no longer available")
	}
	return job.CvFilePath, job.CvFileName, nil
}

// ApplyCallback is the analyzer's result delivery. The transition to
// complete happens at most once per job.
func (s *analysisService) ApplyCallback(payload dto.CallbackPayload, providedSecret string) (*dto.AnalysisJobDTO, error) {
	if err := s.checkSecret(providedSecret); err != nil {
		return nil, err
	}

	var violations []string
	if payload.JobID == "" {
		violations = append(violations, "job_id")
	}
	if payload.Score == nil {
		violations = append(violations, "score")
	}
	if payload.Strengths == nil {
		violations = append(violations, "strengths")
	}
	if payload.Gaps == nil {
		violations = append(violations, "gaps")
	}
	if payload.QuickWins == nil {
		violations = append(violations, "quick_wins")
	}
	if len(violations) > 0 {
		return nil, apperror.New(apperror.CodeInvalidPayload, "callback payload is missing required fields").WithFields(violations...)
	}

	job, err := s.findJob(payload.JobID)
	if err != nil {
		return nil, err
	}
	if job.Terminal() {
		return nil, apperror.New(apperror.CodeAlreadyCompleted, "job already reached a terminal state")
	}

	gaps := make([]string, 0, len(payload.Gaps))
	for _, item := range payload.Gaps {
		gaps = append(gaps, item.Text())
	}
	quickWins := make([]string, 0, len(payload.QuickWins))
	for _, item := range payload.QuickWins {
		quickWins = append(quickWins, item.Text())
	}

	now := time.Now()
	job.Status = model.JobStatusComplete
	job.Score = payload.Score
	job.Strengths = payload.Strengths
	job.Gaps = gaps
	job.QuickWins = quickWins
	job.Notes = payload.Notes
	job.NeedsJd = payload.NeedsJd
	job.NeedsRole = payload.NeedsRole
	job.CompletedAt = &now

	if err := s.jobRepo.Update(job); err != nil {
		log.Error().Err(err).Str("jobID", job.ID).Msg("Failed to apply analysis callback")
		return nil, apperror.Wrap(err, "error applying callback")
	}
	log.Info().Str("jobID", job.ID).Float64("score", *payload.Score).Msg("Analysis job completed via callback")
	return s.jobDTO(job), nil
}

func (s *analysisService) checkSecret(provided string) error {
	configured := s.cfg.Analyzer.CallbackSecret
	if configured == "" {
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(provided), []byte(configured)) != 1 {
		return apperror.New(apperror.CodeUnauthorized, "invalid analysis secret")
	}
	return nil
}

func (s *analysisService) findJob(jobID string) (*model.AnalysisJob, error) {
	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.Newf(apperror.CodeNotFound, "analysis job %s not found", jobID)
		}
		return nil, apperror.Wrap(err, "error looking up analysis job")
	}
	return job, nil
}

func (s *analysisService) jobDTO(job *model.AnalysisJob) *dto.AnalysisJobDTO {
	return &dto.AnalysisJobDTO{
		ID:          job.ID,
		Status:      job.Status,
		CvFileName:  job.CvFileName,
		JdText:      job.JdText,
		Score:       job.Score,
		Strengths:   job.Strengths,
		Gaps:        job.Gaps,
		QuickWins:   job.QuickWins,
		Notes:       job.Notes,
		NeedsJd:     job.NeedsJd,
		NeedsRole:   job.NeedsRole,
		CreatedAt:   job.CreatedAt,
		CompletedAt: job.CompletedAt,
	}
}
