package scheduler

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newTestScheduler(t *testing.T) *Scheduler {
	t.Helper()
	// Scheduled tasks only touch the database when they fire; these tests
	// never let a task fire, so no store is needed.
	s, err := New(nil, zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// gocron only computes a job's next run once the scheduler is running;
	// without Start, NextRun reports the zero time.
	s.Start()
	t.Cleanup(func() {
		if err := s.Shutdown(); err != nil {
			t.Errorf("Shutdown: %v", err)
		}
	})
	return s
}

func TestComputeRunAt(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		endDate time.Time
		want    time.Time
	}{
		{
			name:    "end date far enough out",
			endDate: now.Add(10 * 24 * time.Hour),
			want:    now.Add(8 * 24 * time.Hour),
		},
		{
			name:    "end date within lead time clamps to near future",
			endDate: now.Add(time.Hour),
			want:    now.Add(immediateDelay),
		},
		{
			name:    "end date in the past clamps to near future",
			endDate: now.Add(-24 * time.Hour),
			want:    now.Add(immediateDelay),
		},
		{
			name:    "end date exactly at lead boundary clamps",
			endDate: now.Add(preCloseLead),
			want:    now.Add(immediateDelay),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeRunAt(tt.endDate, now)
			if !got.Equal(tt.want) {
				t.Errorf("computeRunAt = %v, want %v", got, tt.want)
			}
			if !got.After(now) {
				t.Errorf("computeRunAt = %v is not in the future of %v", got, now)
			}
		})
	}
}

func TestSchedulePreCloseTasksRegistersPair(t *testing.T) {
	s := newTestScheduler(t)
	jobID := uuid.New()

	if err := s.SchedulePreCloseTasks(jobID, time.Now().Add(5*24*time.Hour)); err != nil {
		t.Fatalf("SchedulePreCloseTasks: %v", err)
	}

	if got := s.TaskCount(jobID); got != 2 {
		t.Fatalf("task count = %d, want 2", got)
	}

	names := map[string]bool{}
	for _, j := range s.cron.Jobs() {
		names[j.Name()] = true
	}
	if !names[fmt.Sprintf("reminder-%s", jobID)] {
		t.Error("reminder task not registered")
	}
	if !names[fmt.Sprintf("auto-eval-%s", jobID)] {
		t.Error("auto-eval task not registered")
	}
}

func TestRescheduleSupersedesPreviousTasks(t *testing.T) {
	s := newTestScheduler(t)
	jobID := uuid.New()

	if err := s.SchedulePreCloseTasks(jobID, time.Now().Add(3*24*time.Hour)); err != nil {
		t.Fatalf("first schedule: %v", err)
	}
	secondEnd := time.Now().Add(10 * 24 * time.Hour)
	if err := s.SchedulePreCloseTasks(jobID, secondEnd); err != nil {
		t.Fatalf("second schedule: %v", err)
	}

	if got := s.TaskCount(jobID); got != 2 {
		t.Fatalf("task count after reschedule = %d, want 2 (never 4)", got)
	}

	// Both live tasks must be timed relative to the second end date.
	wantEarliest := secondEnd.Add(-preCloseLead).Add(-time.Minute)
	for _, j := range s.cron.Jobs() {
		next, err := j.NextRun()
		if err != nil {
			t.Fatalf("NextRun for %s: %v", j.Name(), err)
		}
		if next.Before(wantEarliest) {
			t.Errorf("task %s timed at %v, relative to the first end date", j.Name(), next)
		}
	}
}

func TestScheduleWithImminentEndDateClampsToNearFuture(t *testing.T) {
	s := newTestScheduler(t)
	jobID := uuid.New()
	now := time.Now()

	if err := s.SchedulePreCloseTasks(jobID, now.Add(time.Hour)); err != nil {
		t.Fatalf("SchedulePreCloseTasks: %v", err)
	}

	for _, j := range s.cron.Jobs() {
		next, err := j.NextRun()
		if err != nil {
			t.Fatalf("NextRun for %s: %v", j.Name(), err)
		}
		if next.Before(now) {
			t.Errorf("task %s scheduled in the past: %v", j.Name(), next)
		}
		if next.After(now.Add(time.Minute)) {
			t.Errorf("task %s not clamped to the near future: %v", j.Name(), next)
		}
	}
}

func TestCancelJobSchedule(t *testing.T) {
	s := newTestScheduler(t)
	jobID := uuid.New()

	// Cancelling when nothing is scheduled must not fail.
	s.CancelJobSchedule(jobID)

	if err := s.SchedulePreCloseTasks(jobID, time.Now().Add(5*24*time.Hour)); err != nil {
		t.Fatalf("SchedulePreCloseTasks: %v", err)
	}
	s.CancelJobSchedule(jobID)

	if got := s.TaskCount(jobID); got != 0 {
		t.Errorf("task count after cancel = %d, want 0", got)
	}
}

func TestCancelLeavesOtherJobsAlone(t *testing.T) {
	s := newTestScheduler(t)
	jobA := uuid.New()
	jobB := uuid.New()

	if err := s.SchedulePreCloseTasks(jobA, time.Now().Add(5*24*time.Hour)); err != nil {
		t.Fatalf("schedule jobA: %v", err)
	}
	if err := s.SchedulePreCloseTasks(jobB, time.Now().Add(6*24*time.Hour)); err != nil {
		t.Fatalf("schedule jobB: %v", err)
	}

	s.CancelJobSchedule(jobA)

	if got := s.TaskCount(jobB); got != 2 {
		t.Errorf("jobB task count = %d, want 2", got)
	}
}
