// Package jobs provides scheduled background tasks for the rental back end.
//
// Jobs use github.com/robfig/cron/v3 with standard five-field schedules read from
// configuration (OVERDUE_JOB_SCHEDULE, FLEET_SUMMARY_JOB_SCHEDULE).
//
// # Available Jobs
//
// 1. OverdueRentalJob - logs a warning for every ACTIVE, unreturned rental past its return date
// 2. FleetSummaryJob - logs truck availability and rental counts
//
// # Usage
//
//	jobManager := jobs.NewJobManager(rentTruckService, fleetSummaryHandler, time.Now, schedules, logger)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// Each job's Run method performs a single pass and can be called directly, which is how the
// tests exercise them.
//
// # Error Handling
//
// Failed runs are logged and retried at the next tick. Failed job starts stop any already
// running jobs.
package jobs
