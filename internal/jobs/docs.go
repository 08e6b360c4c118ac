// Package jobs provides scheduled background tasks for the catering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the synchronous request path cannot cover.
//
// # Available Jobs
//
// 1. StaleOrderCancellationJob - Runs every minute to cancel pending bulk
// orders that no chef has answered within the configured window.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(cancelStaleHandler, staleWindow, logger)
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
// A sweep that finds nothing to cancel is not an error. Failed sweeps are
// logged and retried on the next tick; the job itself never stops.
package jobs
