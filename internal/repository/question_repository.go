package repository

import (
	"github.com/launchpadhq/launchpad-api/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	CreateBatch(questions []model.AssessmentQuestion) error
	FindAllOrdered() ([]model.AssessmentQuestion, error)
	FindByID(id uint) (*model.AssessmentQuestion, error)
	Count() (int64, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) CreateBatch(questions []model.AssessmentQuestion) error {
	return r.db.Create(&questions).Error
}

func (r *questionRepository) FindAllOrdered() ([]model.AssessmentQuestion, error) {
	var questions []model.AssessmentQuestion
	if err := r.db.Order("order_index ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindByID(id uint) (*model.AssessmentQuestion, error) {
	var question model.AssessmentQuestion
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.AssessmentQuestion{}).Count(&count).Error
	return count, err
}
