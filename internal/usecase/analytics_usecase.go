package usecase

import (
	"github.com/google/uuid"
	"github.com/hiresage/recruitai/internal/model"
	"github.com/hiresage/recruitai/internal/repository"
)

type JobPipeline struct {
	JobID           uuid.UUID      `json:"job_id"`
	RoleTitle       string         `json:"role_title"`
	Status          string         `json:"status"`
	TotalCandidates int            `json:"total_candidates"`
	Stages          map[string]int `json:"stages"`
}

type AnalyticsUsecase struct {
	jobRepo       *repository.JobRepository
	candidateRepo *repository.CandidateRepository
}

func NewAnalyticsUsecase(jobRepo *repository.JobRepository, candidateRepo *repository.CandidateRepository) *AnalyticsUsecase {
	return &AnalyticsUsecase{jobRepo: jobRepo, candidateRepo: candidateRepo}
}

// HiringPipeline returns candidate counts by stage for every active or closed
// job.
func (uc *AnalyticsUsecase) HiringPipeline() ([]JobPipeline, error) {
	jobs, err := uc.jobRepo.ListByStatus(model.JobStatusActive, model.JobStatusClosed)
	if err != nil {
		return nil, err
	}

	pipeline := make([]JobPipeline, 0, len(jobs))
	for _, job := range jobs {
		candidates, err := uc.candidateRepo.FindByJob(job.ID)
		if err != nil {
			return nil, err
		}

		stages := make(map[string]int)
		for _, cand := range candidates {
			stage := string(cand.Stage)
			if stage == "" {
				stage = "unknown"
			}
			stages[stage]++
		}

		pipeline = append(pipeline, JobPipeline{
			JobID:           job.ID,
			RoleTitle:       job.RoleTitle,
			Status:          string(job.Status),
			TotalCandidates: len(candidates),
			Stages:          stages,
		})
	}
	return pipeline, nil
}
