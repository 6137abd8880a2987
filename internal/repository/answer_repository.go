package repository

import (
	"github.com/launchpadhq/launchpad-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AnswerRepository interface {
	// Upsert inserts the answer or, when one already exists for the same
	// (attempt, question) pair, overwrites its value in place.
	Upsert(answer *model.AssessmentAnswer) error
	FindByAttemptID(attemptID uint) ([]model.AssessmentAnswer, error)
	CountByAttemptID(attemptID uint) (int64, error)
	DeleteByAttemptID(attemptID uint) error
}

type answerRepository struct {
	db *gorm.DB
}

func NewAnswerRepository(db *gorm.DB) AnswerRepository {
	return &answerRepository{db: db}
}

func (r *answerRepository) Upsert(answer *model.AssessmentAnswer) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "attempt_id"}, {Name: "question_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(answer).Error
}

func (r *answerRepository) FindByAttemptID(attemptID uint) ([]model.AssessmentAnswer, error) {
	var answers []model.AssessmentAnswer
	if err := r.db.Where("attempt_id = ?", attemptID).Find(&answers).Error; err != nil {
		return nil, err
	}
	return answers, nil
}

func (r *answerRepository) CountByAttemptID(attemptID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.AssessmentAnswer{}).Where("attempt_id = ?", attemptID).Count(&count).Error
	return count, err
}

func (r *answerRepository) DeleteByAttemptID(attemptID uint) error {
	return r.db.Where("attempt_id = ?", attemptID).Delete(&model.AssessmentAnswer{}).Error
}
