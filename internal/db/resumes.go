package db

import (
	"context"
	"fmt"

	"github.com/hireflow/resume-ingest/internal/contact"
)

// roleApplicant is the role tag written on every resume-sourced user row.
const roleApplicant = "user"

// PersistenceError indicates the metadata write for a stored artifact failed
// (connection loss, constraint violation, transaction abort). It is non-fatal
// to the upload: the artifact is already safely stored.
type PersistenceError struct {
	ArtifactID string
	Err        error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist record for artifact %s: %v", e.ArtifactID, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// ResumeRecord is the persisted outcome of one successful ingestion.
type ResumeRecord struct {
	UserID     int64
	ArtifactID string
	Email      string
	Phone      string
	URL        string
	JobOfferID *int64
}

// InsertResume writes the user/contact row and, when a job offer is
// referenced, the application link row, as one transaction. Both succeed or
// both roll back; a link row never references a rolled-back user row.
func (db *DB) InsertResume(ctx context.Context, artifactID, url string, info contact.ContactInfo, jobOfferID *int64) (*ResumeRecord, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, &PersistenceError{ArtifactID: artifactID, Err: fmt.Errorf("failed to begin transaction: %w", err)}
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	rec := &ResumeRecord{
		ArtifactID: artifactID,
		Email:      info.PrimaryEmail(),
		Phone:      info.PrimaryPhone(),
		URL:        url,
		JobOfferID: jobOfferID,
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO "User" ("email", "phoneNumber", "role", "cvId", "cvUrl")
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING "UserId"`,
		rec.Email, rec.Phone, roleApplicant, artifactID, url,
	).Scan(&rec.UserID)
	if err != nil {
		return nil, &PersistenceError{ArtifactID: artifactID, Err: fmt.Errorf("failed to insert user: %w", err)}
	}

	if jobOfferID != nil {
		_, err = tx.Exec(ctx,
			`INSERT INTO "JobApplication" ("userId", "jobOfferId", "createdAt", "updatedAt")
			 VALUES ($1, $2, NOW(), NOW())`,
			rec.UserID, *jobOfferID,
		)
		if err != nil {
			return nil, &PersistenceError{ArtifactID: artifactID, Err: fmt.Errorf("failed to insert job application: %w", err)}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, &PersistenceError{ArtifactID: artifactID, Err: fmt.Errorf("failed to commit transaction: %w", err)}
	}
	return rec, nil
}
