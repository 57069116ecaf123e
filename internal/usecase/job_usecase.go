package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hiresage/recruitai/internal/agent"
	"github.com/hiresage/recruitai/internal/dto"
	"github.com/hiresage/recruitai/internal/model"
	"github.com/hiresage/recruitai/internal/repository"
	"github.com/hiresage/recruitai/internal/scheduler"
	"go.uber.org/zap"
)

var (
	ErrJobNotFound   = fmt.Errorf("job not found")
	ErrForbidden     = fmt.Errorf("not allowed for this user")
	ErrInvalidStatus = fmt.Errorf("job is not in a valid status for this operation")
)

// JobUsecase owns the job request lifecycle:
// draft → pending_hr → active|rejected, plus cancellation. Status transitions
// fan out notifications and keep the pre-close scheduler in sync.
type JobUsecase struct {
	jobRepo   *repository.JobRepository
	userRepo  *repository.UserRepository
	notifRepo *repository.NotificationRepository
	sched     *scheduler.Scheduler
	extractor *agent.ProfileExtractor
	log       *zap.Logger
}

func NewJobUsecase(
	jobRepo *repository.JobRepository,
	userRepo *repository.UserRepository,
	notifRepo *repository.NotificationRepository,
	sched *scheduler.Scheduler,
	extractor *agent.ProfileExtractor,
	log *zap.Logger,
) *JobUsecase {
	return &JobUsecase{
		jobRepo:   jobRepo,
		userRepo:  userRepo,
		notifRepo: notifRepo,
		sched:     sched,
		extractor: extractor,
		log:       log,
	}
}

// Create stores a new draft. When no profile was supplied but JD text exists,
// a profile is generated in the background so activation is never blocked on
// the LLM.
func (uc *JobUsecase) Create(user *model.User, body dto.JobCreateRequest) (*model.JobRequest, error) {
	endDate, err := parseEndDate(body.EndDate)
	if err != nil {
		return nil, err
	}

	job := &model.JobRequest{
		CreatorID:        user.ID,
		RoleTitle:        body.RoleTitle,
		Department:       body.Department,
		JDText:           body.JDText,
		ProfileJSON:      body.ProfileJSON,
		Budget:           body.Budget,
		AdjustableBudget: body.AdjustableBudget,
		EndDate:          endDate,
		Status:           model.JobStatusDraft,
	}
	if err := uc.jobRepo.Create(job); err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	if job.ProfileJSON == "" && job.JDText != "" {
		go uc.generateProfile(job.ID, job.JDText, job.Department)
	}
	return job, nil
}

func (uc *JobUsecase) generateProfile(jobID uuid.UUID, jdText, department string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	profile := uc.extractor.ExtractProfile(ctx, jdText, department)

	job, err := uc.jobRepo.FindByID(jobID)
	if err != nil {
		uc.log.Warn("profile generation: job vanished", zap.String("job_id", jobID.String()))
		return
	}
	if job.ProfileJSON != "" {
		return
	}
	job.ProfileJSON = profile
	if err := uc.jobRepo.Update(job); err != nil {
		uc.log.Error("profile generation: failed to store profile",
			zap.String("job_id", jobID.String()), zap.Error(err))
		return
	}
	uc.log.Info("generated profile for job", zap.String("job_id", jobID.String()))
}

// Update edits a draft owned by the caller.
func (uc *JobUsecase) Update(user *model.User, jobID uuid.UUID, body dto.JobCreateRequest) (*model.JobRequest, error) {
	job, err := uc.ownedJob(user, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != model.JobStatusDraft {
		return nil, ErrInvalidStatus
	}

	endDate, err := parseEndDate(body.EndDate)
	if err != nil {
		return nil, err
	}

	job.RoleTitle = body.RoleTitle
	job.JDText = body.JDText
	job.ProfileJSON = body.ProfileJSON
	job.Budget = body.Budget
	job.AdjustableBudget = body.AdjustableBudget
	if endDate != nil {
		job.EndDate = endDate
	}
	if err := uc.jobRepo.Update(job); err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}
	return job, nil
}

// Submit moves a draft to pending_hr and notifies all HR users.
func (uc *JobUsecase) Submit(user *model.User, jobID uuid.UUID, body dto.JobSubmitRequest) (*model.JobRequest, error) {
	job, err := uc.ownedJob(user, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status != model.JobStatusDraft {
		return nil, ErrInvalidStatus
	}

	if body.Budget != nil {
		job.Budget = *body.Budget
	}
	if body.AdjustableBudget != nil {
		job.AdjustableBudget = *body.AdjustableBudget
	}
	if body.EndDate != nil {
		endDate, err := parseEndDate(*body.EndDate)
		if err != nil {
			return nil, err
		}
		job.EndDate = endDate
	}

	job.Status = model.JobStatusPendingHR
	if err := uc.jobRepo.Update(job); err != nil {
		return nil, fmt.Errorf("submit job: %w", err)
	}

	uc.notifyAllHR(
		fmt.Sprintf("New job request: %q submitted by %s", job.RoleTitle, user.Name),
		model.NotifJobSubmitted, job.ID)
	return job, nil
}

// Cancel cancels a job owned by the caller, removes its scheduled tasks and
// notifies HR.
func (uc *JobUsecase) Cancel(user *model.User, jobID uuid.UUID) (*model.JobRequest, error) {
	job, err := uc.ownedJob(user, jobID)
	if err != nil {
		return nil, err
	}
	if job.Status == model.JobStatusCancelled || job.Status == model.JobStatusClosed {
		return nil, ErrInvalidStatus
	}

	job.Status = model.JobStatusCancelled
	if err := uc.jobRepo.Update(job); err != nil {
		return nil, fmt.Errorf("cancel job: %w", err)
	}

	uc.sched.CancelJobSchedule(job.ID)
	uc.notifyAllHR(
		fmt.Sprintf("Job cancelled: %q by %s", job.RoleTitle, user.Name),
		model.NotifJobCancelled, job.ID)
	return job, nil
}

// Activate accepts a pending job (HR), schedules its pre-close tasks when an
// end date is set, and notifies the creator.
func (uc *JobUsecase) Activate(jobID uuid.UUID) (*model.JobRequest, error) {
	job, err := uc.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, ErrJobNotFound
	}
	if job.Status != model.JobStatusPendingHR {
		return nil, ErrInvalidStatus
	}

	job.Status = model.JobStatusActive
	if err := uc.jobRepo.Update(job); err != nil {
		return nil, fmt.Errorf("activate job: %w", err)
	}

	if job.EndDate != nil {
		if err := uc.sched.SchedulePreCloseTasks(job.ID, *job.EndDate); err != nil {
			uc.log.Error("failed to schedule pre-close tasks",
				zap.String("job_id", job.ID.String()), zap.Error(err))
		}
	}

	uc.notifyUser(job.CreatorID,
		fmt.Sprintf("Your job request %q has been activated by HR", job.RoleTitle),
		model.NotifJobActivated, job.ID)
	return job, nil
}

// Reject declines a pending job (HR) with a reason and notifies the creator.
func (uc *JobUsecase) Reject(jobID uuid.UUID, reason string) (*model.JobRequest, error) {
	job, err := uc.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, ErrJobNotFound
	}
	if job.Status != model.JobStatusPendingHR {
		return nil, ErrInvalidStatus
	}

	job.Status = model.JobStatusRejected
	job.RejectionReason = reason
	if err := uc.jobRepo.Update(job); err != nil {
		return nil, fmt.Errorf("reject job: %w", err)
	}

	uc.notifyUser(job.CreatorID,
		fmt.Sprintf("Your job request %q was rejected by HR", job.RoleTitle),
		model.NotifJobRejected, job.ID)
	return job, nil
}

// HREdit lets HR adjust a pending job before activating it.
func (uc *JobUsecase) HREdit(jobID uuid.UUID, body dto.JobCreateRequest) (*model.JobRequest, error) {
	job, err := uc.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, ErrJobNotFound
	}
	if job.Status != model.JobStatusPendingHR {
		return nil, ErrInvalidStatus
	}

	endDate, err := parseEndDate(body.EndDate)
	if err != nil {
		return nil, err
	}

	job.RoleTitle = body.RoleTitle
	job.JDText = body.JDText
	job.ProfileJSON = body.ProfileJSON
	job.Budget = body.Budget
	job.AdjustableBudget = body.AdjustableBudget
	if endDate != nil {
		job.EndDate = endDate
	}
	if err := uc.jobRepo.Update(job); err != nil {
		return nil, fmt.Errorf("edit job: %w", err)
	}
	return job, nil
}

// ListForUser returns all jobs for HR, own jobs for team leads.
func (uc *JobUsecase) ListForUser(user *model.User) ([]model.JobRequest, error) {
	if user.Role == model.RoleHR {
		return uc.jobRepo.ListAll()
	}
	return uc.jobRepo.ListByCreator(user.ID)
}

func (uc *JobUsecase) Get(user *model.User, jobID uuid.UUID) (*model.JobRequest, error) {
	job, err := uc.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, ErrJobNotFound
	}
	if user.Role == model.RoleTeamLead && job.CreatorID != user.ID {
		return nil, ErrForbidden
	}
	return job, nil
}

func (uc *JobUsecase) PendingForHR() ([]model.JobRequest, error) {
	return uc.jobRepo.ListByStatus(model.JobStatusPendingHR)
}

func (uc *JobUsecase) ownedJob(user *model.User, jobID uuid.UUID) (*model.JobRequest, error) {
	job, err := uc.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, ErrJobNotFound
	}
	if job.CreatorID != user.ID {
		return nil, ErrForbidden
	}
	return job, nil
}

func (uc *JobUsecase) notifyAllHR(message string, ntype model.NotificationType, jobID uuid.UUID) {
	hrUsers, err := uc.userRepo.FindByRole(model.RoleHR)
	if err != nil {
		uc.log.Error("failed to load HR users for notification", zap.Error(err))
		return
	}
	for _, hr := range hrUsers {
		uc.notifyUser(hr.ID, message, ntype, jobID)
	}
}

func (uc *JobUsecase) notifyUser(userID uuid.UUID, message string, ntype model.NotificationType, jobID uuid.UUID) {
	n := &model.Notification{
		UserID:       userID,
		Message:      message,
		Type:         ntype,
		RelatedJobID: &jobID,
	}
	if err := uc.notifRepo.Create(n); err != nil {
		uc.log.Error("failed to create notification", zap.Error(err))
	}
}

func parseEndDate(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid end_date %q", raw)
}
