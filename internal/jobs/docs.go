// Package jobs provides scheduled background tasks for the parcel locker service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use the six-field format with a leading seconds field.
//
// # Available Jobs
//
// 1. OccupancyMetricsJob - Refreshes the lockerd_compartments gauge (default every 30 seconds)
// 2. IntegrityAuditJob - Reports compartments and packages that disagree (default every minute)
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(occupancyHandler, allocationMetrics, auditHandler,
//		jobs.Schedules{}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Both jobs log query failures at ERROR and retry on the next tick
// - Each audit finding is logged at ERROR; nothing is repaired automatically
// - Failed job starts will stop any already running jobs
package jobs
