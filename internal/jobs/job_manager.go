package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingPaymentSweepJob *PendingPaymentSweepJob
}

// NewJobManager creates a job manager owning all background jobs.
func NewJobManager(pendingPaymentSweepJob *PendingPaymentSweepJob) *JobManager {
	return &JobManager{
		pendingPaymentSweepJob: pendingPaymentSweepJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingPaymentSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending payment sweep job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingPaymentSweepJob.Stop()
}
