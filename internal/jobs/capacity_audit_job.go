package jobs

import (
	"context"
	"log/slog"

	"fleet/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// CapacityAuditJob periodically scans the fleet for overweight ships.
// Boarding only checks the cargo a container carries at that moment, so
// cargo loaded after boarding can push a ship past its weight capacity;
// this job surfaces those ships in the logs.
type CapacityAuditJob struct {
	handler queries.GetOverweightShipsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCapacityAuditJob creates a job auditing fleet capacity every 30 seconds.
func NewCapacityAuditJob(handler queries.GetOverweightShipsQueryHandler, logger *slog.Logger) *CapacityAuditJob {
	return &CapacityAuditJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "capacity_audit_job"),
	}
}

// Start begins the capacity audit job.
func (j *CapacityAuditJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetOverweightShipsQuery()

		ships, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Capacity audit job failed", "error", err)
			return
		}

		for _, overweight := range ships {
			j.logger.WarnContext(ctx, "Ship exceeds weight capacity",
				"ship", overweight.Name,
				"shipId", overweight.ID.String(),
				"totalLoad", overweight.TotalLoad,
				"maxWeightCapacity", overweight.MaxWeightCapacity,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Capacity audit job started (running every 30 seconds)")
	return nil
}

// Stop stops the capacity audit job.
func (j *CapacityAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Capacity audit job stopped")
}
