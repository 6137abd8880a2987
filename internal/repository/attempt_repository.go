package repository

import (
	"github.com/launchpadhq/launchpad-api/internal/model"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	Create(attempt *model.AssessmentAttempt) error
	Update(attempt *model.AssessmentAttempt) error
	FindByID(id uint) (*model.AssessmentAttempt, error)
	// FindLatestIncompleteByUser returns the most recently created attempt
	// that has not been completed, or gorm.ErrRecordNotFound.
	FindLatestIncompleteByUser(userID string) (*model.AssessmentAttempt, error)
	FindByShareToken(token string) (*model.AssessmentAttempt, error)
	Delete(id uint) error
}

type attemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func (r *attemptRepository) Create(attempt *model.AssessmentAttempt) error {
	return r.db.Create(attempt).Error
}

func (r *attemptRepository) Update(attempt *model.AssessmentAttempt) error {
	return r.db.Save(attempt).Error
}

func (r *attemptRepository) FindByID(id uint) (*model.AssessmentAttempt, error) {
	var attempt model.AssessmentAttempt
	if err := r.db.First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindLatestIncompleteByUser(userID string) (*model.AssessmentAttempt, error) {
	var attempt model.AssessmentAttempt
	err := r.db.
		Where("user_id = ? AND is_completed = ?", userID, false).
		Order("created_at DESC").
		First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) FindByShareToken(token string) (*model.AssessmentAttempt, error) {
	var attempt model.AssessmentAttempt
	if err := r.db.Where("share_token = ?", token).First(&attempt).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *attemptRepository) Delete(id uint) error {
	return r.db.Delete(&model.AssessmentAttempt{}, id).Error
}
