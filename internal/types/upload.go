// Package types provides type definitions for structured data used throughout the resume ingestion service.
package types

import (
	"github.com/go-playground/validator/v10"
)

// UploadRequest represents a single resume upload. The job offer reference is
// optional; when present it must identify an existing posting.
type UploadRequest struct {
	Filename   string `json:"filename" validate:"required,min=1"`
	JobOfferID *int64 `json:"job_offer_id,omitempty" validate:"omitnil,gt=0"`
}

// BatchUploadRequest represents an HR batch upload linked to one job offer.
type BatchUploadRequest struct {
	Filenames  []string `json:"filenames" validate:"required,min=1,dive,required"`
	JobOfferID int64    `json:"job_offer_id" validate:"required,gt=0"`
}

// UploadResponse is the single-upload response body.
type UploadResponse struct {
	URL string `json:"url"`
}

// FileOutcome is one entry of a batch response, in input order.
type FileOutcome struct {
	Filename string `json:"filename"`
	URL      string `json:"url,omitempty"`
	Error    string `json:"error,omitempty"`
}

// BatchUploadResponse is the batch-upload response body.
type BatchUploadResponse struct {
	Results []FileOutcome `json:"results"`
}

// Validate validates the UploadRequest using the validator.
func (r *UploadRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BatchUploadRequest using the validator.
func (r *BatchUploadRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
