// Package jobs provides scheduled background tasks for the fleet service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for fleet monitoring.
//
// # Available Jobs
//
// 1. CapacityAuditJob - Runs every 30 seconds to find ships whose cargo load exceeds their weight capacity
// 2. FleetReportJob - Runs every five minutes to write a fleet summary to the report sink
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(overweightShipsHandler, allShipsHandler, sink, logger)
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
// - Both jobs log query failures and keep running on the next tick
// - Failed job starts will stop any already running jobs
package jobs
