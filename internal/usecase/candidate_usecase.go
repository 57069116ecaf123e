package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hiresage/recruitai/internal/dto"
	"github.com/hiresage/recruitai/internal/model"
	"github.com/hiresage/recruitai/internal/repository"
	"github.com/pgvector/pgvector-go"
	"go.uber.org/zap"
)

// Embedder produces vector embeddings for resume and query text.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

type CandidateUsecase struct {
	candidateRepo *repository.CandidateRepository
	jobRepo       *repository.JobRepository
	embedder      Embedder
	log           *zap.Logger
}

func NewCandidateUsecase(
	candidateRepo *repository.CandidateRepository,
	jobRepo *repository.JobRepository,
	embedder Embedder,
	log *zap.Logger,
) *CandidateUsecase {
	return &CandidateUsecase{
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
		embedder:      embedder,
		log:           log,
	}
}

// Add attaches a candidate to a job. The resume embedding is generated inline;
// failures there only cost semantic search, so the candidate is stored anyway.
func (uc *CandidateUsecase) Add(ctx context.Context, jobID uuid.UUID, body dto.CandidateCreateRequest) (*model.Candidate, error) {
	if _, err := uc.jobRepo.FindByID(jobID); err != nil {
		return nil, ErrJobNotFound
	}

	cand := &model.Candidate{
		JobID:          jobID,
		Name:           body.Name,
		Email:          body.Email,
		Phone:          body.Phone,
		CurrentSalary:  body.CurrentSalary,
		ExpectedSalary: body.ExpectedSalary,
		ResumeText:     body.ResumeText,
		Stage:          model.StageApplied,
	}

	if body.ResumeText != "" {
		if emb, err := uc.embedder.GenerateEmbedding(ctx, body.ResumeText); err != nil {
			uc.log.Warn("failed to embed resume, candidate stored without embedding",
				zap.String("name", body.Name), zap.Error(err))
		} else {
			cand.Embedding = pgvector.NewVector(emb)
		}
	}

	if err := uc.candidateRepo.Create(cand); err != nil {
		return nil, fmt.Errorf("create candidate: %w", err)
	}
	return cand, nil
}

func (uc *CandidateUsecase) ListByJob(jobID uuid.UUID) ([]model.Candidate, error) {
	return uc.candidateRepo.FindByJob(jobID)
}

// Search finds the candidates whose resumes best match free text (typically a
// JD) by embedding distance.
func (uc *CandidateUsecase) Search(ctx context.Context, query string, topK int) ([]model.Candidate, error) {
	if topK <= 0 {
		topK = 5
	}
	emb, err := uc.embedder.GenerateEmbedding(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed search query: %w", err)
	}
	return uc.candidateRepo.SearchByEmbedding(pgvector.NewVector(emb), topK)
}
