package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hiresage/recruitai/internal/agent"
	"github.com/hiresage/recruitai/internal/dto"
	"github.com/hiresage/recruitai/internal/model"
	"github.com/hiresage/recruitai/internal/repository"
	"go.uber.org/zap"
)

// JDUsecase runs the JD creation flow: clarifying questions for the intake
// form, then profile-grounded JD generation, optionally persisted onto a job.
type JDUsecase struct {
	jobRepo   *repository.JobRepository
	clarifier *agent.JDClarifier
	generator *agent.JDGenerator
	log       *zap.Logger
}

func NewJDUsecase(
	jobRepo *repository.JobRepository,
	clarifier *agent.JDClarifier,
	generator *agent.JDGenerator,
	log *zap.Logger,
) *JDUsecase {
	return &JDUsecase{
		jobRepo:   jobRepo,
		clarifier: clarifier,
		generator: generator,
		log:       log,
	}
}

// Clarify returns head-of-department questions for the intake form. An empty
// list is a valid outcome; the flow continues without clarification.
func (uc *JDUsecase) Clarify(ctx context.Context, form agent.JDFormData) []agent.ClarifyingQuestion {
	return uc.clarifier.GenerateQuestions(ctx, form)
}

// Generate produces a JD. When the request names a job, the job's stored data
// fills the gaps in the form, the job's profile becomes the source of truth,
// and the result is written back as the job's JD text.
func (uc *JDUsecase) Generate(ctx context.Context, user *model.User, body dto.JDGenerateRequest) (string, error) {
	form := body.JDFormData
	profile := body.ProfileJSON

	var job *model.JobRequest
	if body.JobID != "" {
		jobID, err := uuid.Parse(body.JobID)
		if err != nil {
			return "", fmt.Errorf("invalid job_id %q", body.JobID)
		}
		job, err = uc.jobRepo.FindByID(jobID)
		if err != nil {
			return "", ErrJobNotFound
		}
		if user.Role == model.RoleTeamLead && job.CreatorID != user.ID {
			return "", ErrForbidden
		}

		if form.RoleTitle == "" {
			form.RoleTitle = job.RoleTitle
		}
		if form.Department == "" {
			form.Department = job.Department
		}
		if form.Location == "" {
			form.Location = job.Location
		}
		if profile == "" {
			profile = job.ProfileJSON
		}
	}

	jd, err := uc.generator.GenerateJD(ctx, form, profile)
	if err != nil {
		return "", err
	}

	if job != nil {
		job.JDText = jd
		job.JDSource = model.JDSourceAICreated
		if err := uc.jobRepo.Update(job); err != nil {
			uc.log.Error("failed to store generated jd",
				zap.String("job_id", job.ID.String()), zap.Error(err))
			return "", fmt.Errorf("store generated jd: %w", err)
		}
	}
	return jd, nil
}
