// Package jobs provides scheduled background tasks for the sales ledger.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order fulfillment monitoring.
//
// # Available Jobs
//
// 1. UnshippedOrdersJob - Runs every hour to report orders still awaiting shipment
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(getUnshippedOrdersHandler, logger)
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
// - Report failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
