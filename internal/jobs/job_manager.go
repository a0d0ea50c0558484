package jobs

import (
	"fmt"
	"log/slog"

	"tehnoplast/internal/core/application/usecases/commands"
	"tehnoplast/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	packingJob *PackingJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes the handlers as dependencies to wire up the job execution.
func NewJobManager(
	unpackedHandler queries.GetUnpackedOrdersQueryHandler,
	packHandler commands.PackOrderCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		packingJob: NewPackingJob(unpackedHandler, packHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.packingJob.Start(); err != nil {
		return fmt.Errorf("failed to start packing job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.packingJob.Stop()
}
