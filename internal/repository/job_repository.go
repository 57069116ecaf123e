package repository

import (
	"github.com/google/uuid"
	"github.com/hiresage/recruitai/internal/model"
	"gorm.io/gorm"
)

type JobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db}
}

func (r *JobRepository) Create(job *model.JobRequest) error {
	return r.db.Create(job).Error
}

func (r *JobRepository) Update(job *model.JobRequest) error {
	return r.db.Save(job).Error
}

func (r *JobRepository) FindByID(id uuid.UUID) (*model.JobRequest, error) {
	var job model.JobRequest
	err := r.db.Preload("Creator").First(&job, "id = ?", id).Error
	return &job, err
}

func (r *JobRepository) ListAll() ([]model.JobRequest, error) {
	var jobs []model.JobRequest
	err := r.db.Preload("Creator").Order("created_at desc").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepository) ListByCreator(creatorID uuid.UUID) ([]model.JobRequest, error) {
	var jobs []model.JobRequest
	err := r.db.Preload("Creator").
		Where("creator_id = ?", creatorID).
		Order("created_at desc").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobRepository) ListByStatus(statuses ...model.JobStatus) ([]model.JobRequest, error) {
	var jobs []model.JobRequest
	err := r.db.Preload("Creator").
		Where("status IN ?", statuses).
		Order("created_at desc").
		Find(&jobs).Error
	return jobs, err
}

// ListActiveWithEndDate returns active jobs that have an end date set, used by
// the scheduler's startup reconciliation.
func (r *JobRepository) ListActiveWithEndDate() ([]model.JobRequest, error) {
	var jobs []model.JobRequest
	err := r.db.
		Where("status = ? AND end_date IS NOT NULL", model.JobStatusActive).
		Find(&jobs).Error
	return jobs, err
}
