package repository

import (
	"github.com/launchpadhq/launchpad-api/internal/model"
	"gorm.io/gorm"
)

type AnalysisJobRepository interface {
	Create(job *model.AnalysisJob) error
	Update(job *model.AnalysisJob) error
	FindByID(id string) (*model.AnalysisJob, error)
	FindAllByUser(userID string) ([]model.AnalysisJob, error)
}

type analysisJobRepository struct {
	db *gorm.DB
}

func NewAnalysisJobRepository(db *gorm.DB) AnalysisJobRepository {
	return &analysisJobRepository{db: db}
}

func (r *analysisJobRepository) Create(job *model.AnalysisJob) error {
	return r.db.Create(job).Error
}

func (r *analysisJobRepository) Update(job *model.AnalysisJob) error {
	return r.db.Save(job).Error
}

func (r *analysisJobRepository) FindByID(id string) (*model.AnalysisJob, error) {
	var job model.AnalysisJob
	if err := r.db.Where("id = ?", id).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *analysisJobRepository) FindAllByUser(userID string) ([]model.AnalysisJob, error) {
	var jobs []model.AnalysisJob
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}
