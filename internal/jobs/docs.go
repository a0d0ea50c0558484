// Package jobs provides scheduled background tasks for the warehouse system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order processing.
//
// # Available Jobs
//
// 1. PackingJob - Runs every 30 seconds to build pallet plans for orders without one
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(unpackedHandler, packHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The packing job uses the cron expression "*/30 * * * * *": every 30
// seconds with second-level precision. The backlog sweep is idempotent, so
// an order created between runs is simply picked up by the next one.
//
// # Error Handling
//
// - Orders deleted mid-sweep or missing catalog products are logged as warnings
// - Unexpected failures are logged as errors; the sweep continues with the next order
// - A failed job start is reported to the caller
package jobs
