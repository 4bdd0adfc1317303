package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// Schedules holds the cron expression of every job.
type Schedules struct {
	OverdueRentals string
	FleetSummary   string
}

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	overdueRentalJob *OverdueRentalJob
	fleetSummaryJob  *FleetSummaryJob
}

func NewJobManager(
	overdueFinder OverdueRentalFinder,
	fleetSummaryHandler FleetSummaryQueryHandler,
	clock func() time.Time,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueRentalJob: NewOverdueRentalJob(overdueFinder, clock, schedules.OverdueRentals, logger),
		fleetSummaryJob:  NewFleetSummaryJob(fleetSummaryHandler, schedules.FleetSummary, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueRentalJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue rental job: %w", err)
	}

	if err := jm.fleetSummaryJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.overdueRentalJob.Stop()
		return fmt.Errorf("failed to start fleet summary job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running checks to finish.
func (jm *JobManager) StopAll() {
	jm.fleetSummaryJob.Stop()
	jm.overdueRentalJob.Stop()
}
