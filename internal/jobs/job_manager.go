package jobs

import (
	"fmt"
	"log/slog"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	tokenCleanupJob *TokenCleanupJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	cleanupHandler commands.CleanupExpiredTokensCommandHandler,
	cleanupSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		tokenCleanupJob: NewTokenCleanupJob(cleanupHandler, cleanupSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.tokenCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start token cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.tokenCleanupJob.Stop()
}
