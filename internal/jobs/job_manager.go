package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// Schedule holds the periods of the background jobs.
type Schedule struct {
	SLASweepInterval time.Duration
	DispatchInterval time.Duration
	DispatchBatch    int
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	assignmentTimeoutJob *AssignmentTimeoutJob
	pendingDispatchJob   *PendingDispatchJob
}

func NewJobManager(
	reclaimHandler reclaimHandler,
	assignPendingHandler assignPendingHandler,
	schedule Schedule,
	logger *slog.Logger,
) (*JobManager, error) {
	pendingDispatchJob, err := NewPendingDispatchJob(assignPendingHandler, schedule.DispatchInterval, schedule.DispatchBatch, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create pending dispatch job: %w", err)
	}

	return &JobManager{
		assignmentTimeoutJob: NewAssignmentTimeoutJob(reclaimHandler, schedule.SLASweepInterval, logger),
		pendingDispatchJob:   pendingDispatchJob,
	}, nil
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.assignmentTimeoutJob.Start(); err != nil {
		return fmt.Errorf("failed to start assignment timeout job: %w", err)
	}

	if err := jm.pendingDispatchJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.assignmentTimeoutJob.Stop()
		return fmt.Errorf("failed to start pending dispatch job: %w", err)
	}

	return nil
}

// StopAll cancels in-flight runs and blocks until every job has returned.
func (jm *JobManager) StopAll() {
	jm.pendingDispatchJob.Stop()
	jm.assignmentTimeoutJob.Stop()
}
