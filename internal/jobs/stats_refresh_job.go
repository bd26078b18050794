package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"medorders/internal/core/application/usecases/queries"
	"medorders/internal/pkg/cache"

	"github.com/robfig/cron/v3"
)

const statsCacheTTL = 5 * time.Minute

// StatsRefreshJob recomputes order statistics every minute and stores the
// result in the cache, so dashboard reads never pay for the aggregation.
type StatsRefreshJob struct {
	handler queries.GetOrderStatsQueryHandler
	cache   cache.Cache
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStatsRefreshJob creates a job that keeps cached order statistics warm.
func NewStatsRefreshJob(
	handler queries.GetOrderStatsQueryHandler,
	c cache.Cache,
	logger *slog.Logger,
) *StatsRefreshJob {
	return &StatsRefreshJob{
		handler: handler,
		cache:   c,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "stats_refresh_job"),
	}
}

// Start begins the per-minute refresh.
func (j *StatsRefreshJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()
		if err := j.refresh(ctx); err != nil {
			j.logger.ErrorContext(ctx, "stats refresh failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "stats refresh job started (running every minute)")
	return nil
}

// Stop stops the job.
func (j *StatsRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "stats refresh job stopped")
}

func (j *StatsRefreshJob) refresh(ctx context.Context) error {
	stats, err := j.handler.Handle(ctx, queries.NewGetOrderStatsQuery())
	if err != nil {
		return err
	}

	raw, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	key := j.cache.GenerateKey("order-stats", "current")
	return j.cache.Set(ctx, key, string(raw), statsCacheTTL)
}
