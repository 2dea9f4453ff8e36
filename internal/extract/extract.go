// Package extract recovers plain text from uploaded PDF and DOCX documents.
package extract

import (
	"context"
	"fmt"

	"github.com/hireflow/resume-ingest/internal/format"
)

// UnreadableDocumentError indicates the byte stream could not be parsed as a
// well-formed document of its declared kind (corrupt file, encrypted PDF,
// wrong magic bytes despite a matching extension).
type UnreadableDocumentError struct {
	Kind format.Kind
	Err  error
}

func (e *UnreadableDocumentError) Error() string {
	return fmt.Sprintf("unreadable %s document: %v", e.Kind, e.Err)
}

func (e *UnreadableDocumentError) Unwrap() error {
	return e.Err
}

// TextExtractor produces plain text from raw document bytes.
type TextExtractor interface {
	Extract(ctx context.Context, data []byte, kind format.Kind) (string, error)
}

// DocumentExtractor is the default TextExtractor over the supported formats.
type DocumentExtractor struct{}

// New returns a DocumentExtractor.
func New() *DocumentExtractor {
	return &DocumentExtractor{}
}

// Extract dispatches on the document kind. Failures are reported as
// *UnreadableDocumentError so callers can treat them as per-file failures.
func (x *DocumentExtractor) Extract(ctx context.Context, data []byte, kind format.Kind) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch kind {
	case format.PDF:
		return extractPDF(data)
	case format.DOCX:
		return extractDOCX(data)
	default:
		return "", &UnreadableDocumentError{Kind: kind, Err: fmt.Errorf("unsupported document kind")}
	}
}
