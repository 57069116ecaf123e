package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/hiresage/recruitai/internal/model"
	"gorm.io/gorm"
)

type EvaluationRepository struct {
	db *gorm.DB
}

func NewEvaluationRepository(db *gorm.DB) *EvaluationRepository {
	return &EvaluationRepository{db}
}

func (r *EvaluationRepository) Create(eval *model.CandidateEvaluation) error {
	return r.db.Create(eval).Error
}

func (r *EvaluationRepository) FindByCandidate(candidateID uuid.UUID) (*model.CandidateEvaluation, error) {
	var eval model.CandidateEvaluation
	err := r.db.First(&eval, "candidate_id = ?", candidateID).Error
	return &eval, err
}

func (r *EvaluationRepository) ExistsForCandidate(candidateID uuid.UUID) (bool, error) {
	err := r.db.First(&model.CandidateEvaluation{}, "candidate_id = ?", candidateID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *EvaluationRepository) ListByJob(jobID uuid.UUID) ([]model.CandidateEvaluation, error) {
	var evals []model.CandidateEvaluation
	err := r.db.Where("job_id = ?", jobID).
		Order("overall_score desc").
		Find(&evals).Error
	return evals, err
}
