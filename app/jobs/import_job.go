// Package jobs defines the background work LeadHub pushes through the queue
// and the scheduler.
package jobs

import (
	"context"
	"time"

	"github.com/shashiranjanraj/leadhub/app/repositories"
	"github.com/shashiranjanraj/leadhub/app/services"
	"github.com/shashiranjanraj/leadhub/internal/importer"
	"github.com/shashiranjanraj/leadhub/pkg/metrics"
	"github.com/shashiranjanraj/leadhub/pkg/queue"
)

const importTimeout = 10 * time.Minute

// ImportJob runs a bulk lead import in the background. The upload has
// already been stowed on the storage disk; progress lands in Redis keyed by
// JobID so the admin UI can poll it.
type ImportJob struct {
	JobID   string `json:"jobId"`
	Archive string `json:"archive"`
}

func (j ImportJob) Handle() error {
	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
	defer cancel()

	svc := services.NewImportService(repositories.NewLeadRepository())
	_, err := svc.FromArchive(ctx, j.Archive, func(e importer.Event) {
		services.RecordProgress(j.JobID, e)
	})

	status := "ok"
	if err != nil {
		status = "failed"
	}
	metrics.RecordQueueJob("jobs.ImportJob", status, start)
	return err
}

// Register wires every job type into the queue so workers can decode them.
// Call once at boot.
func Register() {
	queue.Register("jobs.ImportJob", func() queue.Job { return &ImportJob{} })
	queue.Register("jobs.StatsRollupJob", func() queue.Job { return &StatsRollupJob{} })
}
