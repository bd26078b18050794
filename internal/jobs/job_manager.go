package jobs

import (
	"fmt"
	"log/slog"

	"medorders/internal/core/application/usecases/commands"
	"medorders/internal/core/application/usecases/queries"
	"medorders/internal/pkg/cache"

	"gorm.io/gorm"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overduePaymentJob *OverduePaymentJob
	statsRefreshJob   *StatsRefreshJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	db *gorm.DB,
	updatePaymentStatusHandler commands.UpdatePaymentStatusCommandHandler,
	statsHandler queries.GetOrderStatsQueryHandler,
	c cache.Cache,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overduePaymentJob: NewOverduePaymentJob(db, updatePaymentStatusHandler, logger),
		statsRefreshJob:   NewStatsRefreshJob(statsHandler, c, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overduePaymentJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue payment job: %w", err)
	}

	if err := jm.statsRefreshJob.Start(); err != nil {
		jm.overduePaymentJob.Stop()
		return fmt.Errorf("failed to start stats refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.statsRefreshJob.Stop()
	jm.overduePaymentJob.Stop()
}
