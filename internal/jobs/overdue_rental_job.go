package jobs

import (
	"context"
	"log/slog"
	"time"

	"truckrental/internal/core/domain/model/kernel"
	"truckrental/internal/core/domain/model/renttruck"

	"github.com/robfig/cron/v3"
)

// OverdueRentalFinder is the slice of RentTruckService the job needs.
type OverdueRentalFinder interface {
	GetOverdueRentals(ctx context.Context, asOf time.Time) ([]renttruck.RentTruck, error)
}

// OverdueRentalJob periodically reports ACTIVE rentals that are past their return date.
type OverdueRentalJob struct {
	finder   OverdueRentalFinder
	clock    func() time.Time
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOverdueRentalJob takes a standard five-field cron schedule, e.g. "0 8 * * *".
func NewOverdueRentalJob(
	finder OverdueRentalFinder,
	clock func() time.Time,
	schedule string,
	logger *slog.Logger,
) *OverdueRentalJob {
	return &OverdueRentalJob{
		finder:   finder,
		clock:    clock,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "overdue_rental_job"),
	}
}

func (j *OverdueRentalJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		_, _ = j.Run(context.Background())
	}); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue rental job started", "schedule", j.schedule)
	return nil
}

// Run performs one check and returns how many rentals were overdue.
func (j *OverdueRentalJob) Run(ctx context.Context) (int, error) {
	asOf := kernel.DateOf(j.clock())

	overdue, err := j.finder.GetOverdueRentals(ctx, asOf)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue rental job failed", "error", err)
		return 0, err
	}

	for _, rental := range overdue {
		j.logger.WarnContext(ctx, "Rental overdue",
			"rent_id", rental.ID(),
			"customer_id", rental.CustomerID(),
			"truck_id", rental.TruckID(),
			"return_date", rental.ReturnDate().Format(time.DateOnly),
			"days_overdue", kernel.DaysInclusive(rental.ReturnDate(), asOf)-1,
		)
	}
	if len(overdue) > 0 {
		j.logger.InfoContext(ctx, "Overdue rental check finished", "overdue", len(overdue))
	}

	return len(overdue), nil
}

// Stop waits for a running check to finish.
func (j *OverdueRentalJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Overdue rental job stopped")
}
