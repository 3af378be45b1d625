package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/shashiranjanraj/leadhub/app/models"
	"github.com/shashiranjanraj/leadhub/pkg/logger"
	"github.com/shashiranjanraj/leadhub/pkg/metrics"
)

// Event is one progress update from an import run. The SSE stream and the
// async job status both carry these verbatim.
type Event struct {
	Message string `json:"message"`
	Written int    `json:"written"`
	Total   int    `json:"total"`
	Done    bool   `json:"done"`
	Error   string `json:"error,omitempty"`
}

// Sink receives progress events. May be nil.
type Sink func(Event)

// Writer lands validated leads in the store. Implementations write in
// sequential batches and report the running count through the callback.
type Writer interface {
	InsertLeads(ctx context.Context, leads []models.Lead, onProgress func(written, total int)) (int, error)
}

// Run validates rows and writes the resulting leads through w. Junk rows
// are dropped before the first write; parsing has already happened by the
// time Run is called, so a non-nil error here always means a write
// failure. Batches already acknowledged stay written.
func Run(ctx context.Context, rows []Row, w Writer, sink Sink) (int, error) {
	emit := func(e Event) {
		if sink != nil {
			sink(e)
		}
	}

	now := time.Now()
	leads := make([]models.Lead, 0, len(rows))
	skipped := 0
	for _, row := range rows {
		lead, ok := BuildLead(row, now)
		if !ok {
			skipped++
			continue
		}
		leads = append(leads, lead)
	}

	metrics.ImportRows.WithLabelValues("imported").Add(float64(len(leads)))
	metrics.ImportRows.WithLabelValues("skipped").Add(float64(skipped))

	if len(leads) == 0 {
		err := fmt.Errorf("importer: no valid rows: %w", ErrNoData)
		emit(Event{Message: err.Error(), Done: true, Error: err.Error()})
		return 0, err
	}

	emit(Event{Message: fmt.Sprintf("Uploading %d leads...", len(leads)), Total: len(leads)})

	written, err := w.InsertLeads(ctx, leads, func(written, total int) {
		metrics.ImportBatches.Inc()
		emit(Event{
			Message: fmt.Sprintf("Uploaded %d of %d leads...", written, total),
			Written: written,
			Total:   total,
		})
	})
	if err != nil {
		logger.WithCtx(ctx).Error("importer: batch write failed",
			"written", written, "total", len(leads), "error", err)
		emit(Event{
			Message: fmt.Sprintf("Error: upload stopped after %d of %d leads", written, len(leads)),
			Written: written,
			Total:   len(leads),
			Done:    true,
			Error:   err.Error(),
		})
		return written, err
	}

	logger.WithCtx(ctx).Info("importer: upload complete",
		"imported", written, "skipped", skipped)
	emit(Event{
		Message: fmt.Sprintf("Successfully uploaded %d leads", written),
		Written: written,
		Total:   written,
		Done:    true,
	})
	return written, nil
}
