// Package ingest composes the per-file resume pipeline: format validation,
// durable storage, text extraction, contact recognition, and record persistence.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/hireflow/resume-ingest/internal/contact"
	"github.com/hireflow/resume-ingest/internal/db"
	"github.com/hireflow/resume-ingest/internal/format"
	"github.com/hireflow/resume-ingest/internal/storage"
)

// defaultWorkers bounds concurrent per-file pipelines within one batch.
const defaultWorkers = 4

// File is one uploaded document: its declared filename and raw bytes.
// It exists only for the duration of a request.
type File struct {
	Name string
	Data []byte
}

// Stage identifies how far a file progressed through the pipeline.
type Stage int

const (
	StageValidated Stage = iota
	StageStored
	StageTextExtracted
	StageContactResolved
	StagePersisted
)

// String returns the stage name for logs and batch failure reasons.
func (s Stage) String() string {
	switch s {
	case StageValidated:
		return "validated"
	case StageStored:
		return "stored"
	case StageTextExtracted:
		return "text_extracted"
	case StageContactResolved:
		return "contact_resolved"
	case StagePersisted:
		return "persisted"
	default:
		return "unknown"
	}
}

// Result is the per-file pipeline outcome. URL is set as soon as storage
// succeeds, even when a later stage fails. Err is the terminal failure for
// this file, if any. PersistErr records a non-fatal metadata write failure:
// the artifact is stored and the URL valid, only the database record is
// missing.
type Result struct {
	Filename   string
	URL        string
	Stage      Stage
	Err        error
	PersistErr error
}

// OK reports whether the file's pipeline reached a terminal success.
func (r Result) OK() bool {
	return r.Err == nil
}

// ValidationError reports uploads whose format is not supported. It is a
// request-level failure: nothing was written to storage.
type ValidationError struct {
	Filenames []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid files: %s. All files must be PDF or DOCX", strings.Join(e.Filenames, ", "))
}

// ArtifactStore persists raw upload bytes.
type ArtifactStore interface {
	Store(filename string, data []byte) (*storage.Artifact, error)
}

// TextExtractor recovers plain text from document bytes.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte, kind format.Kind) (string, error)
}

// RecordStore writes the user/contact record and the optional application link.
type RecordStore interface {
	InsertResume(ctx context.Context, artifactID, url string, info contact.ContactInfo, jobOfferID *int64) (*db.ResumeRecord, error)
}

// Service runs the ingestion pipeline.
type Service struct {
	artifacts ArtifactStore
	extractor TextExtractor
	records   RecordStore
	log       *slog.Logger
	workers   int
}

// NewService wires the pipeline stages together. workers bounds in-flight
// files per batch; values < 1 fall back to the default.
func NewService(artifacts ArtifactStore, extractor TextExtractor, records RecordStore, log *slog.Logger, workers int) *Service {
	if log == nil {
		log = slog.Default()
	}
	if workers < 1 {
		workers = defaultWorkers
	}
	return &Service{
		artifacts: artifacts,
		extractor: extractor,
		records:   records,
		log:       log,
		workers:   workers,
	}
}

// IngestFile runs the pipeline for a single upload. An unsupported format or
// a storage failure is returned as an error with no further side effects.
// Failures after storage succeeded (unreadable document, persistence) are
// reported inside the Result and logged; the caller still gets the URL.
func (s *Service) IngestFile(ctx context.Context, f File, jobOfferID *int64) (*Result, error) {
	if !format.Supported(f.Name) {
		return nil, &ValidationError{Filenames: []string{f.Name}}
	}

	res := s.run(ctx, f, jobOfferID)
	if res.Stage < StageStored {
		return nil, res.Err
	}
	if res.Err != nil {
		s.log.Warn("resume stored but not processed",
			"filename", f.Name, "stage", res.Stage.String(), "error", res.Err)
	}
	return &res, nil
}

// IngestBatch validates every file's format before anything is stored; one
// unsupported file rejects the whole batch. Files that pass validation are
// processed independently under a bounded worker pool, and the results come
// back in input order: one file's failure never aborts its siblings.
func (s *Service) IngestBatch(ctx context.Context, files []File, jobOfferID *int64) ([]Result, error) {
	var invalid []string
	for _, f := range files {
		if !format.Supported(f.Name) {
			invalid = append(invalid, f.Name)
		}
	}
	if len(invalid) > 0 {
		return nil, &ValidationError{Filenames: invalid}
	}

	results := make([]Result, len(files))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, f := range files {
		g.Go(func() error {
			results[i] = s.run(gCtx, f, jobOfferID)
			return nil
		})
	}
	// Workers only record per-file outcomes, never return errors.
	_ = g.Wait()
	return results, nil
}

// run executes the post-validation stages for one file.
func (s *Service) run(ctx context.Context, f File, jobOfferID *int64) Result {
	res := Result{Filename: f.Name, Stage: StageValidated}
	kind := format.Classify(f.Name)

	art, err := s.artifacts.Store(f.Name, f.Data)
	if err != nil {
		res.Err = err
		return res
	}
	res.Stage = StageStored
	res.URL = art.URL

	text, err := s.extractor.Extract(ctx, f.Data, kind)
	if err != nil {
		// The artifact stays stored; only processing failed.
		res.Err = fmt.Errorf("failed to extract text from %s: %w", f.Name, err)
		return res
	}
	res.Stage = StageTextExtracted

	info := contact.Recognize(text)
	res.Stage = StageContactResolved

	if _, err := s.records.InsertResume(ctx, art.ID, art.URL, info, jobOfferID); err != nil {
		res.PersistErr = err
		s.log.Warn("resume metadata write failed",
			"filename", f.Name, "artifact_id", art.ID, "error", err)
		return res
	}
	res.Stage = StagePersisted
	return res
}
