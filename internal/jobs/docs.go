// Package jobs provides scheduled background tasks for the order service.
//
// Jobs are implemented with github.com/robfig/cron/v3 and managed through
// JobManager, which starts and stops them as a group.
//
// # Available Jobs
//
// 1. OverduePaymentJob - runs hourly and flags unpaid or partially paid
// orders whose delivery date has passed as payment-overdue.
//
// 2. StatsRefreshJob - runs every minute and stores freshly aggregated
// order statistics in the cache.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(db, paymentHandler, statsHandler, cache, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The overdue sweep skips orders that a concurrent writer changed or that
// were cancelled between the candidate query and the update; the next sweep
// re-evaluates them. Failed job starts stop any already running jobs.
package jobs
