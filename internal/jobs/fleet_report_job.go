package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"fleet/internal/core/application/usecases/queries"
	"fleet/internal/core/domain/model/ship"

	"github.com/robfig/cron/v3"
)

// FleetReportJob periodically writes a fleet summary to the report sink:
// one line per ship with its container count and load figures.
type FleetReportJob struct {
	handler queries.GetAllShipsQueryHandler
	sink    ship.ReportSink
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewFleetReportJob creates a job reporting the fleet every five minutes.
func NewFleetReportJob(
	handler queries.GetAllShipsQueryHandler,
	sink ship.ReportSink,
	logger *slog.Logger,
) *FleetReportJob {
	return &FleetReportJob{
		handler: handler,
		sink:    sink,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "fleet_report_job"),
	}
}

// Start begins the fleet report job.
func (j *FleetReportJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetAllShipsQuery()

		ships, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Fleet report job failed", "error", err)
			return
		}

		for _, entry := range ships {
			j.sink.WriteLine(fmt.Sprintf("Ship %s: %d containers, total load %s/%s kg",
				entry.Name,
				entry.ContainerCount,
				formatWeight(entry.TotalLoad),
				formatWeight(entry.MaxWeightCapacity),
			))
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Fleet report job started (running every five minutes)")
	return nil
}

// Stop stops the fleet report job.
func (j *FleetReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Fleet report job stopped")
}

// formatWeight renders kilogram figures without a fixed precision, matching
// the ship report lines.
func formatWeight(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
