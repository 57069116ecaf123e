package repository

import (
	"github.com/google/uuid"
	"github.com/hiresage/recruitai/internal/model"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type CandidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db}
}

func (r *CandidateRepository) Create(cand *model.Candidate) error {
	return r.db.Create(cand).Error
}

func (r *CandidateRepository) Update(cand *model.Candidate) error {
	return r.db.Save(cand).Error
}

func (r *CandidateRepository) FindByID(id uuid.UUID) (*model.Candidate, error) {
	var cand model.Candidate
	err := r.db.First(&cand, "id = ?", id).Error
	return &cand, err
}

func (r *CandidateRepository) FindByJob(jobID uuid.UUID) ([]model.Candidate, error) {
	var cands []model.Candidate
	err := r.db.Where("job_id = ?", jobID).Order("applied_at").Find(&cands).Error
	return cands, err
}

// SearchByEmbedding returns the topK candidates whose resume embedding is
// closest to the query vector.
func (r *CandidateRepository) SearchByEmbedding(embedding pgvector.Vector, topK int) ([]model.Candidate, error) {
	var cands []model.Candidate

	err := r.db.Raw(`
        SELECT *, embedding <-> ? AS distance
        FROM candidates
        ORDER BY embedding <-> ?
        LIMIT ?
    `, embedding, embedding, topK).Scan(&cands).Error

	return cands, err
}
