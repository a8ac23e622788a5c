package jobs

import (
	"context"
	"log/slog"

	"github.com/seferogluemre/ojs-nutrition-boilerplate-sub000/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultCleanupSchedule runs the sweep at the top of every hour. Tokens live
// for two hours, so an hourly sweep keeps the table within one expiry window.
const DefaultCleanupSchedule = "0 * * * *"

// TokenCleanupJob periodically deletes delivery tokens that expired without
// ever being redeemed.
type TokenCleanupJob struct {
	handler  commands.CleanupExpiredTokensCommandHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewTokenCleanupJob creates the sweep job. An empty schedule falls back to
// DefaultCleanupSchedule.
func NewTokenCleanupJob(
	handler commands.CleanupExpiredTokensCommandHandler,
	schedule string,
	logger *slog.Logger,
) *TokenCleanupJob {
	if schedule == "" {
		schedule = DefaultCleanupSchedule
	}

	return &TokenCleanupJob{
		handler:  handler,
		cron:     cron.New(),
		schedule: schedule,
		logger:   logger.With("component", "token_cleanup_job"),
	}
}

// Start schedules the sweep.
func (j *TokenCleanupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		removed, err := j.handler.Handle(ctx, commands.NewCleanupExpiredTokensCommand())
		if err != nil {
			j.logger.ErrorContext(ctx, "Token cleanup job failed", "error", err)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Expired delivery tokens removed", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Token cleanup job started", "schedule", j.schedule)
	return nil
}

// Stop stops the sweep.
func (j *TokenCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Token cleanup job stopped")
}
