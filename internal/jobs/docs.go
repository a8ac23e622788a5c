// Package jobs provides scheduled background tasks for the fulfillment
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. TokenCleanupJob - Runs hourly to delete delivery tokens that expired
// without being redeemed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cleanupHandler, "", logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job runs log their errors and wait for the next tick; a failed sweep never
// stops the schedule. Failed job starts stop any already running jobs.
package jobs
