package jobs

import (
	"context"
	"time"

	"github.com/shashiranjanraj/leadhub/app/repositories"
	"github.com/shashiranjanraj/leadhub/app/services"
	"github.com/shashiranjanraj/leadhub/pkg/metrics"
	"github.com/shashiranjanraj/leadhub/pkg/workerpool"
)

// StatsRollupJob persists a snapshot of the marketplace counters. The
// scheduler runs it nightly; it can also be queued by hand after a big
// import to refresh the dashboard history.
type StatsRollupJob struct{}

func (j StatsRollupJob) Handle() error {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool := workerpool.New(5)
	defer pool.Shutdown()

	svc := services.NewStatsService(
		repositories.NewLeadRepository(),
		repositories.NewOrderRepository(),
		repositories.NewStatsRepository(),
		pool,
	)

	err := svc.Rollup(ctx)
	status := "ok"
	if err != nil {
		status = "failed"
	}
	metrics.RecordQueueJob("jobs.StatsRollupJob", status, start)
	return err
}
