package jobs

import (
	"fmt"
	"log/slog"
)

// Schedules holds the cron expressions of the background jobs. Empty fields
// select the job defaults.
type Schedules struct {
	Occupancy string
	Audit     string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	occupancyJob *OccupancyMetricsJob
	auditJob     *IntegrityAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	occupancyReader OccupancyReader,
	occupancySink OccupancySink,
	auditor IntegrityAuditor,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		occupancyJob: NewOccupancyMetricsJob(occupancyReader, occupancySink, schedules.Occupancy, logger),
		auditJob:     NewIntegrityAuditJob(auditor, schedules.Audit, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.occupancyJob.Start(); err != nil {
		return fmt.Errorf("failed to start occupancy metrics job: %w", err)
	}

	if err := jm.auditJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.occupancyJob.Stop()
		return fmt.Errorf("failed to start integrity audit job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.auditJob.Stop()
	jm.occupancyJob.Stop()
}
