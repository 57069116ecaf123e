package scheduler

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/hiresage/recruitai/internal/agent"
	"github.com/hiresage/recruitai/internal/model"
	"github.com/hiresage/recruitai/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// Pre-close tasks fire two days before a job's end date.
	preCloseLead = 48 * time.Hour
	// When the lead time has already passed, run promptly instead of in the past.
	immediateDelay = 10 * time.Second
	// Auto-evaluation runs shortly after the reminder so notifications are not
	// interleaved with evaluation writes.
	autoEvalOffset = 5 * time.Second
)

// ScoreFunc produces a 0-100 score for a candidate name. The default is the
// deterministic synthetic scorer; it sits behind this type so a real scoring
// backend can be swapped in without touching the scheduler's control flow.
type ScoreFunc func(name string) int

// Scheduler owns the pre-close task pair for every active job: a closing
// reminder and an automatic CV evaluation, both timed relative to the job's
// end date. Its task store is in-memory; RescheduleActiveJobs restores state
// after a restart.
type Scheduler struct {
	db    *gorm.DB
	jobs  *repository.JobRepository
	log   *zap.Logger
	cron  gocron.Scheduler
	score ScoreFunc
}

func New(db *gorm.DB, log *zap.Logger) (*Scheduler, error) {
	cron, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	return &Scheduler{
		db:    db,
		jobs:  repository.NewJobRepository(db),
		log:   log,
		cron:  cron,
		score: SyntheticScore,
	}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("background scheduler started")
}

func (s *Scheduler) Shutdown() error {
	if err := s.cron.Shutdown(); err != nil {
		return fmt.Errorf("shutdown scheduler: %w", err)
	}
	s.log.Info("background scheduler stopped")
	return nil
}

func jobTag(jobID uuid.UUID) string {
	return "job-" + jobID.String()
}

// computeRunAt places the task pair two days before endDate, clamped to a
// near-future time when that point has already passed.
func computeRunAt(endDate, now time.Time) time.Time {
	runAt := endDate.Add(-preCloseLead)
	if !runAt.After(now) {
		runAt = now.Add(immediateDelay)
	}
	return runAt
}

// SchedulePreCloseTasks registers the reminder and auto-evaluation tasks for a
// job. Any previously registered pair for the same job is removed first, so a
// second call always supersedes the first.
func (s *Scheduler) SchedulePreCloseTasks(jobID uuid.UUID, endDate time.Time) error {
	runAt := computeRunAt(endDate, time.Now())

	s.CancelJobSchedule(jobID)

	_, err := s.cron.NewJob(
		gocron.OneTimeJob(gocron.OneTimeJobStartDateTime(runAt)),
		gocron.NewTask(s.sendClosingReminder, jobID),
		gocron.WithName(fmt.Sprintf("reminder-%s", jobID)),
		gocron.WithTags(jobTag(jobID)),
	)
	if err != nil {
		return fmt.Errorf("schedule reminder for job %s: %w", jobID, err)
	}

	_, err = s.cron.NewJob(
		gocron.OneTimeJob(gocron.OneTimeJobStartDateTime(runAt.Add(autoEvalOffset))),
		gocron.NewTask(s.runAutoEvaluation, jobID),
		gocron.WithName(fmt.Sprintf("auto-eval-%s", jobID)),
		gocron.WithTags(jobTag(jobID)),
	)
	if err != nil {
		return fmt.Errorf("schedule auto-evaluation for job %s: %w", jobID, err)
	}

	s.log.Info("scheduled pre-close tasks",
		zap.String("job_id", jobID.String()),
		zap.Time("run_at", runAt))
	return nil
}

// CancelJobSchedule removes both tasks for a job. Cancelling a job with no
// scheduled tasks is a no-op.
func (s *Scheduler) CancelJobSchedule(jobID uuid.UUID) {
	s.cron.RemoveByTags(jobTag(jobID))
}

// TaskCount reports how many tasks are currently registered for a job.
func (s *Scheduler) TaskCount(jobID uuid.UUID) int {
	count := 0
	for _, j := range s.cron.Jobs() {
		for _, tag := range j.Tags() {
			if tag == jobTag(jobID) {
				count++
			}
		}
	}
	return count
}

// RescheduleActiveJobs re-registers tasks for every active job with a future
// end date. Must run on startup: the task store does not survive a restart.
func (s *Scheduler) RescheduleActiveJobs() {
	jobs, err := s.jobs.ListActiveWithEndDate()
	if err != nil {
		s.log.Error("failed to load active jobs for rescheduling", zap.Error(err))
		return
	}

	now := time.Now()
	count := 0
	for _, job := range jobs {
		if job.EndDate != nil && job.EndDate.After(now) {
			if err := s.SchedulePreCloseTasks(job.ID, *job.EndDate); err != nil {
				s.log.Error("failed to reschedule job",
					zap.String("job_id", job.ID.String()), zap.Error(err))
				continue
			}
			count++
		}
	}
	s.log.Info("re-scheduled active jobs on startup", zap.Int("count", count))
}

// taskStore is the storage surface the fired task bodies touch. Production
// wraps a gorm transaction; tests substitute an in-memory fake.
type taskStore interface {
	JobByID(id uuid.UUID) (*model.JobRequest, error)
	CandidatesByJob(jobID uuid.UUID) ([]model.Candidate, error)
	HasEvaluation(candidateID uuid.UUID) (bool, error)
	CreateEvaluation(eval *model.CandidateEvaluation) error
	UsersByRole(role model.UserRole) ([]model.User, error)
	CreateNotification(n *model.Notification) error
}

type gormTaskStore struct {
	tx *gorm.DB
}

func (s gormTaskStore) JobByID(id uuid.UUID) (*model.JobRequest, error) {
	var job model.JobRequest
	if err := s.tx.First(&job, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (s gormTaskStore) CandidatesByJob(jobID uuid.UUID) ([]model.Candidate, error) {
	var candidates []model.Candidate
	err := s.tx.Where("job_id = ?", jobID).Find(&candidates).Error
	return candidates, err
}

func (s gormTaskStore) HasEvaluation(candidateID uuid.UUID) (bool, error) {
	err := s.tx.First(&model.CandidateEvaluation{}, "candidate_id = ?", candidateID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s gormTaskStore) CreateEvaluation(eval *model.CandidateEvaluation) error {
	return s.tx.Create(eval).Error
}

func (s gormTaskStore) UsersByRole(role model.UserRole) ([]model.User, error) {
	var users []model.User
	err := s.tx.Where("role = ?", role).Find(&users).Error
	return users, err
}

func (s gormTaskStore) CreateNotification(n *model.Notification) error {
	return s.tx.Create(n).Error
}

// sendClosingReminder notifies every HR user that the job closes soon. The
// task is a no-op when the job is gone or no longer active.
func (s *Scheduler) sendClosingReminder(jobID uuid.UUID) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.remind(gormTaskStore{tx}, jobID)
	})
	if err != nil {
		s.log.Error("closing reminder task failed",
			zap.String("job_id", jobID.String()), zap.Error(err))
		return
	}
	s.log.Info("closing reminder sent", zap.String("job_id", jobID.String()))
}

func (s *Scheduler) remind(store taskStore, jobID uuid.UUID) error {
	job, err := store.JobByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if job.Status != model.JobStatusActive {
		return nil
	}

	hrUsers, err := store.UsersByRole(model.RoleHR)
	if err != nil {
		return err
	}
	for _, hr := range hrUsers {
		n := model.Notification{
			UserID: hr.ID,
			Message: fmt.Sprintf(
				"Reminder: %q is closing in 2 days. CV evaluation will start automatically.",
				job.RoleTitle),
			Type:         model.NotifClosingReminder,
			RelatedJobID: &job.ID,
		}
		if err := store.CreateNotification(&n); err != nil {
			return err
		}
	}
	return nil
}

type autoEvalEntry struct {
	Name  string
	Score int
	Grade string
}

// runAutoEvaluation scores every candidate attached to the job, persists one
// evaluation per candidate that has none yet, and notifies HR with a summary.
func (s *Scheduler) runAutoEvaluation(jobID uuid.UUID) {
	var evaluated []autoEvalEntry

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		evaluated, err = s.autoEvaluate(gormTaskStore{tx}, jobID)
		return err
	})
	if err != nil {
		s.log.Error("auto-evaluation task failed",
			zap.String("job_id", jobID.String()), zap.Error(err))
		return
	}
	s.log.Info("auto-evaluation complete",
		zap.String("job_id", jobID.String()),
		zap.Int("candidates", len(evaluated)))
}

// autoEvaluate is the task body. Every candidate gets a score in the summary,
// but an evaluation row is only written for candidates that have none yet; a
// duplicate-key insert from a concurrent firing counts as already evaluated.
func (s *Scheduler) autoEvaluate(store taskStore, jobID uuid.UUID) ([]autoEvalEntry, error) {
	job, err := store.JobByID(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if job.Status != model.JobStatusActive {
		return nil, nil
	}

	candidates, err := store.CandidatesByJob(jobID)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		s.log.Info("no candidates for job, skipping evaluation",
			zap.String("job_id", jobID.String()))
		return nil, nil
	}

	var evaluated []autoEvalEntry
	for _, cand := range candidates {
		name := cand.Name
		if name == "" {
			name = "Unknown"
		}
		score := s.score(name)
		grade := agent.Grade(score)
		evaluated = append(evaluated, autoEvalEntry{Name: name, Score: score, Grade: grade})

		exists, err := store.HasEvaluation(cand.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			// Never overwrite a prior manual or automated evaluation.
			continue
		}

		eval := model.CandidateEvaluation{
			CandidateID:    cand.ID,
			JobID:          jobID,
			OverallScore:   score,
			Grade:          grade,
			Recommendation: fmt.Sprintf("Auto-evaluated candidate with score %d/%s", score, grade),
			EvaluatedAt:    time.Now(),
			IsAutomated:    true,
		}
		if err := store.CreateEvaluation(&eval); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			return nil, err
		}
	}

	sort.SliceStable(evaluated, func(i, j int) bool {
		return evaluated[i].Score > evaluated[j].Score
	})

	hrUsers, err := store.UsersByRole(model.RoleHR)
	if err != nil {
		return nil, err
	}

	topMsg := ""
	if len(evaluated) > 0 {
		topMsg = fmt.Sprintf(" Top candidate: %s (%s)", evaluated[0].Name, evaluated[0].Grade)
	}
	for _, hr := range hrUsers {
		n := model.Notification{
			UserID: hr.ID,
			Message: fmt.Sprintf(
				"CV evaluation for %q is complete. %d candidates evaluated.%s",
				job.RoleTitle, len(evaluated), topMsg),
			Type:         model.NotifCVEvaluationComplete,
			RelatedJobID: &job.ID,
		}
		if err := store.CreateNotification(&n); err != nil {
			return nil, err
		}
	}
	return evaluated, nil
}
