package jobs

import (
	"fmt"
	"log/slog"

	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/ship"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	capacityAuditJob *CapacityAuditJob
	fleetReportJob   *FleetReportJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers and the report sink as dependencies to wire up the
// job execution.
func NewJobManager(
	overweightShipsHandler queries.GetOverweightShipsQueryHandler,
	allShipsHandler queries.GetAllShipsQueryHandler,
	sink ship.ReportSink,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		capacityAuditJob: NewCapacityAuditJob(overweightShipsHandler, logger),
		fleetReportJob:   NewFleetReportJob(allShipsHandler, sink, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.capacityAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start capacity audit job: %w", err)
	}

	if err := jm.fleetReportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.capacityAuditJob.Stop()
		return fmt.Errorf("failed to start fleet report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.fleetReportJob.Stop()
	jm.capacityAuditJob.Stop()
}
