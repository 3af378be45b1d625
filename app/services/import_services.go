package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/leadhub/app/repositories"
	"github.com/shashiranjanraj/leadhub/internal/importer"
	"github.com/shashiranjanraj/leadhub/pkg/cache"
	"github.com/shashiranjanraj/leadhub/pkg/event"
	"github.com/shashiranjanraj/leadhub/pkg/httpclient"
	"github.com/shashiranjanraj/leadhub/pkg/logger"
	"github.com/shashiranjanraj/leadhub/pkg/storage"
)

const (
	importArchiveDir = "imports"
	importStatusTTL  = time.Hour
)

// ImportService runs the bulk lead upload pipeline: archive the raw file,
// parse it, validate rows and write leads in batches, streaming progress to
// whoever is listening.
type ImportService struct {
	leads *repositories.LeadRepository
}

func NewImportService(leads *repositories.LeadRepository) *ImportService {
	return &ImportService{leads: leads}
}

// FromUpload imports an uploaded file. filename decides the parser: .xlsx
// and .xls go through the workbook reader, everything else is treated as
// delimited text. The raw bytes are archived to the storage disk first so a
// bad import can be replayed.
func (s *ImportService) FromUpload(ctx context.Context, filename string, r io.Reader, sink importer.Sink) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("services: read upload: %w", err)
	}
	return s.run(ctx, filename, data, sink)
}

// FromURL fetches a remote file and imports it.
func (s *ImportService) FromURL(ctx context.Context, url string, sink importer.Sink) (int, error) {
	resp, err := httpclient.Get(url).
		WithContext(ctx).
		Timeout(time.Minute).
		Retry(3, time.Second).
		Send()
	if err != nil {
		return 0, fmt.Errorf("services: fetch %s: %w", url, err)
	}
	if err := resp.Throw(); err != nil {
		return 0, fmt.Errorf("services: fetch %s: %w", url, err)
	}
	return s.run(ctx, path.Base(url), resp.Raw, sink)
}

// FromArchive imports a file previously stowed on the storage disk. The
// async job path goes through here so the worker never needs the original
// request body.
func (s *ImportService) FromArchive(ctx context.Context, archivePath string, sink importer.Sink) (int, error) {
	data, err := storage.Get(archivePath)
	if err != nil {
		return 0, fmt.Errorf("services: read archive %s: %w", archivePath, err)
	}
	return s.process(ctx, archivePath, data, sink)
}

// Stow archives an upload for a later async import and returns its path.
func (s *ImportService) Stow(filename string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("services: read upload: %w", err)
	}
	p := archivePath(filename)
	if err := storage.Put(p, data); err != nil {
		return "", fmt.Errorf("services: stow upload: %w", err)
	}
	return p, nil
}

func archivePath(filename string) string {
	return fmt.Sprintf("%s/%s_%s", importArchiveDir,
		time.Now().Format("20060102T150405"), path.Base(filename))
}

func (s *ImportService) run(ctx context.Context, filename string, data []byte, sink importer.Sink) (int, error) {
	if err := storage.Put(archivePath(filename), data); err != nil {
		// The archive is best effort; the import itself still proceeds.
		logger.WithCtx(ctx).Warn("import: archive failed", "file", filename, "error", err)
	}
	return s.process(ctx, filename, data, sink)
}

func (s *ImportService) process(ctx context.Context, filename string, data []byte, sink importer.Sink) (int, error) {
	rows, err := parseByName(filename, data)
	if err != nil {
		if sink != nil {
			sink(importer.Event{Message: err.Error(), Done: true, Error: err.Error()})
		}
		return 0, err
	}

	written, err := importer.Run(ctx, rows, s.leads, sink)
	if err == nil {
		event.FireAsync("leads.imported", written)
	}
	return written, err
}

func parseByName(filename string, data []byte) ([]importer.Row, error) {
	switch strings.ToLower(path.Ext(filename)) {
	case ".xlsx", ".xls":
		return importer.ParseWorkbook(bytes.NewReader(data))
	default:
		return importer.ParseCSV(string(data))
	}
}

// ─── Async import jobs ────────────────────────────────────────────────────────

func importStatusKey(jobID string) string { return "leadhub:import:job:" + jobID }

// NewImportJobID mints an id for an async import.
func NewImportJobID() string { return primitive.NewObjectID().Hex() }

// RecordProgress stores the latest progress event for an async import.
func RecordProgress(jobID string, e importer.Event) {
	if err := cache.Set(importStatusKey(jobID), e, importStatusTTL); err != nil {
		logger.Warn("import: record progress", "job_id", jobID, "error", err)
	}
}

// Progress returns the latest recorded progress for an async import.
func Progress(jobID string) (importer.Event, bool) {
	var e importer.Event
	ok := cache.Get(importStatusKey(jobID), &e)
	return e, ok
}
