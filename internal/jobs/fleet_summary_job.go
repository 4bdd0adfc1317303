package jobs

import (
	"context"
	"log/slog"

	"truckrental/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

type FleetSummaryQueryHandler interface {
	Handle(ctx context.Context, query queries.GetFleetSummaryQuery) (queries.GetFleetSummaryQueryResponse, error)
}

// FleetSummaryJob logs truck availability and rental counts on a schedule.
type FleetSummaryJob struct {
	handler  FleetSummaryQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewFleetSummaryJob(handler FleetSummaryQueryHandler, schedule string, logger *slog.Logger) *FleetSummaryJob {
	return &FleetSummaryJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "fleet_summary_job"),
	}
}

func (j *FleetSummaryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		_ = j.Run(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Fleet summary job started", "schedule", j.schedule)
	return nil
}

func (j *FleetSummaryJob) Run(ctx context.Context) error {
	summary, err := j.handler.Handle(ctx, queries.NewGetFleetSummaryQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Fleet summary job failed", "error", err)
		return err
	}

	j.logger.InfoContext(ctx, "Fleet summary",
		"total_trucks", summary.TotalTrucks,
		"available_trucks", summary.AvailableTrucks,
		"active_rentals", summary.ActiveRentals,
		"overdue_rentals", summary.OverdueRentals,
	)
	return nil
}

func (j *FleetSummaryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Fleet summary job stopped")
}
