package importer_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shashiranjanraj/leadhub/app/models"
	"github.com/shashiranjanraj/leadhub/internal/importer"
	"github.com/shashiranjanraj/leadhub/internal/store"
)

// fakeWriter records batch sizes the way the store-backed writer chunks
// them, failing on demand.
type fakeWriter struct {
	batches []int
	leads   []models.Lead
	failAt  int // fail the nth batch (1-based), 0 = never
}

func (f *fakeWriter) InsertLeads(ctx context.Context, leads []models.Lead, onProgress func(written, total int)) (int, error) {
	total := len(leads)
	written := 0
	for start := 0; start < total; start += store.BatchSize {
		end := start + store.BatchSize
		if end > total {
			end = total
		}
		if f.failAt > 0 && len(f.batches)+1 == f.failAt {
			return written, errors.New("write refused")
		}
		f.batches = append(f.batches, end-start)
		f.leads = append(f.leads, leads[start:end]...)
		written = end
		if onProgress != nil {
			onProgress(written, total)
		}
	}
	return written, nil
}

func makeRows(n int) []importer.Row {
	rows := make([]importer.Row, n)
	for i := range rows {
		rows[i] = importer.Row{"email": "lead@example.com"}
	}
	return rows
}

func TestRun_ChunksSequentially(t *testing.T) {
	w := &fakeWriter{}
	var events []importer.Event

	written, err := importer.Run(context.Background(), makeRows(250), w, func(e importer.Event) {
		events = append(events, e)
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if written != 250 {
		t.Errorf("written = %d, want 250", written)
	}

	want := []int{100, 100, 50}
	if len(w.batches) != len(want) {
		t.Fatalf("batches = %v, want %v", w.batches, want)
	}
	for i, size := range want {
		if w.batches[i] != size {
			t.Errorf("batch %d size = %d, want %d", i, w.batches[i], size)
		}
	}

	// One "Uploading" event, one progress event per batch, one final.
	if len(events) != 5 {
		t.Fatalf("expected 5 events, got %d: %v", len(events), events)
	}
	if events[1].Message != "Uploaded 100 of 250 leads..." {
		t.Errorf("unexpected progress message: %q", events[1].Message)
	}
	if !events[4].Done || events[4].Error != "" {
		t.Errorf("final event should be a clean done: %+v", events[4])
	}
}

func TestRun_DropsJunkBeforeWriting(t *testing.T) {
	rows := makeRows(2)
	rows = append(rows, importer.Row{"lastName": "only"}) // junk

	w := &fakeWriter{}
	written, err := importer.Run(context.Background(), rows, w, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if written != 2 || len(w.leads) != 2 {
		t.Errorf("written = %d leads = %d, want 2 each", written, len(w.leads))
	}
}

func TestRun_AllJunkAbortsBeforeWrite(t *testing.T) {
	w := &fakeWriter{}
	var final importer.Event

	_, err := importer.Run(context.Background(), []importer.Row{
		{"lastName": "a"}, {"industry": "b"},
	}, w, func(e importer.Event) { final = e })

	if !errors.Is(err, importer.ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
	if len(w.batches) != 0 {
		t.Error("no write may be issued when every row is junk")
	}
	if !final.Done || final.Error == "" {
		t.Errorf("expected failed done event, got %+v", final)
	}
}

func TestRun_BatchFailureKeepsEarlierBatches(t *testing.T) {
	w := &fakeWriter{failAt: 2}
	var final importer.Event

	written, err := importer.Run(context.Background(), makeRows(250), w, func(e importer.Event) {
		final = e
	})
	if err == nil {
		t.Fatal("expected write error")
	}
	if written != 100 {
		t.Errorf("written = %d, want 100 (first batch acknowledged)", written)
	}
	if len(w.batches) != 1 {
		t.Errorf("exactly one batch should have landed, got %v", w.batches)
	}
	if !final.Done || final.Error == "" {
		t.Errorf("expected failed done event, got %+v", final)
	}
	if !strings.Contains(final.Message, "stopped after 100 of 250") {
		t.Errorf("unexpected failure message: %q", final.Message)
	}
}

// End-to-end: CSV text through parsing, junk gating and batching.
func TestRun_EndToEndCSV(t *testing.T) {
	csv := "Name,Company,Email,Price\n" +
		`Jane,Acme,jane@acme.com,$9.99` + "\n" +
		`,,,` + "\n" +
		`Bob,Beta,bob@beta.com,` + "\n"

	rows, err := importer.ParseCSV(csv)
	if err != nil {
		t.Fatalf("ParseCSV: %v", err)
	}

	w := &fakeWriter{}
	written, err := importer.Run(context.Background(), rows, w, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if written != 2 {
		t.Fatalf("written = %d, want 2", written)
	}

	jane, bob := w.leads[0], w.leads[1]
	if jane.FirstName != "Jane" || jane.WebsiteName != "Acme" || jane.Email != "jane@acme.com" {
		t.Errorf("unexpected first lead: %+v", jane)
	}
	if jane.Price != 9.99 || jane.Industry != "Other" || jane.Status != models.LeadAvailable {
		t.Errorf("unexpected first lead defaults: %+v", jane)
	}
	if bob.FirstName != "Bob" || bob.Price != importer.DefaultPrice {
		t.Errorf("unexpected second lead: %+v", bob)
	}
}
