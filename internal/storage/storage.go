// Package storage persists uploaded document bytes under collision-resistant paths.
package storage

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Artifact is one stored document: its stable identifier, the path the bytes
// live at, and the URL a client can retrieve them from. Immutable after
// creation; this package never deletes artifacts.
type Artifact struct {
	ID   string
	Path string
	URL  string
}

// StorageError indicates an I/O failure while persisting an upload.
type StorageError struct {
	Filename string
	Err      error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to store %s: %v", e.Filename, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Writer stores uploads under root/resumes/{id}/{filename} and builds
// retrieval URLs against baseURL.
type Writer struct {
	root    string
	baseURL string
}

// NewWriter creates a Writer rooted at root. baseURL is the public prefix
// retrieval URLs are built from, e.g. "http://localhost:8000".
func NewWriter(root, baseURL string) *Writer {
	return &Writer{root: root, baseURL: strings.TrimRight(baseURL, "/")}
}

// Root returns the storage root directory.
func (w *Writer) Root() string {
	return w.root
}

// newArtifactID generates "{currentYear}-{randomHexToken}". The token is the
// hex form of a random UUID, so two uploads in the same instant cannot collide.
func newArtifactID() string {
	u := uuid.New()
	return fmt.Sprintf("%d-%s", time.Now().Year(), hex.EncodeToString(u[:]))
}

// Store writes data into a dedicated per-artifact directory. The bytes go to a
// temporary file first and are renamed into place, so a failed write never
// leaves a partially-written file visible at the final path.
func (w *Writer) Store(filename string, data []byte) (*Artifact, error) {
	// Uploaded filenames are client-controlled; keep only the base name.
	filename = filepath.Base(filename)

	id := newArtifactID()
	dir := filepath.Join(w.root, "resumes", id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &StorageError{Filename: filename, Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return nil, &StorageError{Filename: filename, Err: err}
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, &StorageError{Filename: filename, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, &StorageError{Filename: filename, Err: err}
	}

	final := filepath.Join(dir, filename)
	if err := os.Rename(tmp.Name(), final); err != nil {
		os.Remove(tmp.Name())
		return nil, &StorageError{Filename: filename, Err: err}
	}

	return &Artifact{
		ID:   id,
		Path: final,
		URL:  fmt.Sprintf("%s/static/resumes/%s/%s", w.baseURL, id, filename),
	}, nil
}
