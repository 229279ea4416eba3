package jobs

import (
	"fmt"
	"log/slog"

	"salesledger/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	unshippedOrdersJob *UnshippedOrdersJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	getUnshippedOrdersHandler queries.GetUnshippedOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		unshippedOrdersJob: NewUnshippedOrdersJob(getUnshippedOrdersHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.unshippedOrdersJob.Start(); err != nil {
		return fmt.Errorf("failed to start unshipped orders job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.unshippedOrdersJob.Stop()
}
