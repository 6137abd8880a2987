package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/launchpadhq/launchpad-api/internal/model"
	"gorm.io/gorm"
)

// In-memory implementations of the repository contracts, selected via DI in
// tests. They return gorm.ErrRecordNotFound for absent rows so services can
// branch identically against either backend, and they enforce the same
// (attempt_id, question_id) uniqueness the Postgres schema does.

type MemoryQuestionRepository struct {
	mu        sync.RWMutex
	questions []model.AssessmentQuestion
	nextID    uint
}

func NewMemoryQuestionRepository() *MemoryQuestionRepository {
	return &MemoryQuestionRepository{nextID: 1}
}

func (r *MemoryQuestionRepository) CreateBatch(questions []model.AssessmentQuestion) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range questions {
		if questions[i].ID == 0 {
			questions[i].ID = r.nextID
			r.nextID++
		}
		r.questions = append(r.questions, questions[i])
	}
	return nil
}

func (r *MemoryQuestionRepository) FindAllOrdered() ([]model.AssessmentQuestion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.AssessmentQuestion, len(r.questions))
	copy(out, r.questions)
	sort.Slice(out, func(i, j int) bool { return out[i].OrderIndex < out[j].OrderIndex })
	return out, nil
}

func (r *MemoryQuestionRepository) FindByID(id uint) (*model.AssessmentQuestion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.questions {
		if r.questions[i].ID == id {
			q := r.questions[i]
			return &q, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *MemoryQuestionRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.questions)), nil
}

type MemoryAttemptRepository struct {
	mu       sync.RWMutex
	attempts map[uint]model.AssessmentAttempt
	nextID   uint
}

func NewMemoryAttemptRepository() *MemoryAttemptRepository {
	return &MemoryAttemptRepository{attempts: make(map[uint]model.AssessmentAttempt), nextID: 1}
}

func (r *MemoryAttemptRepository) Create(attempt *model.AssessmentAttempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	attempt.ID = r.nextID
	r.nextID++
	if attempt.CreatedAt.IsZero() {
		attempt.CreatedAt = time.Now()
	}
	r.attempts[attempt.ID] = *attempt
	return nil
}

func (r *MemoryAttemptRepository) Update(attempt *model.AssessmentAttempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.attempts[attempt.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.attempts[attempt.ID] = *attempt
	return nil
}

func (r *MemoryAttemptRepository) FindByID(id uint) (*model.AssessmentAttempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	attempt, ok := r.attempts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &attempt, nil
}

func (r *MemoryAttemptRepository) FindLatestIncompleteByUser(userID string) (*model.AssessmentAttempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var latest *model.AssessmentAttempt
	for id := range r.attempts {
		a := r.attempts[id]
		if a.UserID != userID || a.IsCompleted {
			continue
		}
		if latest == nil || a.CreatedAt.After(latest.CreatedAt) ||
			(a.CreatedAt.Equal(latest.CreatedAt) && a.ID > latest.ID) {
			copied := a
			latest = &copied
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return latest, nil
}

func (r *MemoryAttemptRepository) FindByShareToken(token string) (*model.AssessmentAttempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for id := range r.attempts {
		a := r.attempts[id]
		if a.ShareToken != nil && *a.ShareToken == token {
			return &a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *MemoryAttemptRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.attempts, id)
	return nil
}

type answerKey struct {
	attemptID  uint
	questionID uint
}

type MemoryAnswerRepository struct {
	mu      sync.RWMutex
	answers map[answerKey]model.AssessmentAnswer
	nextID  uint
}

func NewMemoryAnswerRepository() *MemoryAnswerRepository {
	return &MemoryAnswerRepository{answers: make(map[answerKey]model.AssessmentAnswer), nextID: 1}
}

func (r *MemoryAnswerRepository) Upsert(answer *model.AssessmentAnswer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := answerKey{attemptID: answer.AttemptID, questionID: answer.QuestionID}
	if existing, ok := r.answers[key]; ok {
		existing.Value = answer.Value
		existing.UpdatedAt = time.Now()
		r.answers[key] = existing
		answer.ID = existing.ID
		return nil
	}
	answer.ID = r.nextID
	r.nextID++
	answer.CreatedAt = time.Now()
	answer.UpdatedAt = answer.CreatedAt
	r.answers[key] = *answer
	return nil
}

func (r *MemoryAnswerRepository) FindByAttemptID(attemptID uint) ([]model.AssessmentAnswer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.AssessmentAnswer
	for key := range r.answers {
		if key.attemptID == attemptID {
			out = append(out, r.answers[key])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryAnswerRepository) CountByAttemptID(attemptID uint) (int64, error) {
	answers, _ := r.FindByAttemptID(attemptID)
	return int64(len(answers)), nil
}

func (r *MemoryAnswerRepository) DeleteByAttemptID(attemptID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key := range r.answers {
		if key.attemptID == attemptID {
			delete(r.answers, key)
		}
	}
	return nil
}

type MemoryAnalysisJobRepository struct {
	mu   sync.RWMutex
	jobs map[string]model.AnalysisJob
}

func NewMemoryAnalysisJobRepository() *MemoryAnalysisJobRepository {
	return &MemoryAnalysisJobRepository{jobs: make(map[string]model.AnalysisJob)}
}

func (r *MemoryAnalysisJobRepository) Create(job *model.AnalysisJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}
	r.jobs[job.ID] = *job
	return nil
}

func (r *MemoryAnalysisJobRepository) Update(job *model.AnalysisJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[job.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.jobs[job.ID] = *job
	return nil
}

func (r *MemoryAnalysisJobRepository) FindByID(id string) (*model.AnalysisJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &job, nil
}

func (r *MemoryAnalysisJobRepository) FindAllByUser(userID string) ([]model.AnalysisJob, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []model.AnalysisJob
	for id := range r.jobs {
		if r.jobs[id].UserID == userID {
			out = append(out, r.jobs[id])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]model.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]model.User)}
}

func (r *MemoryUserRepository) Create(user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) Update(user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) FindByID(id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &user, nil
}
