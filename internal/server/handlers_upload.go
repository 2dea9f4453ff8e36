package server

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/hireflow/resume-ingest/internal/ingest"
	"github.com/hireflow/resume-ingest/internal/types"
)

// readUpload pulls one multipart file into memory.
func readUpload(fh *multipart.FileHeader) (ingest.File, error) {
	f, err := fh.Open()
	if err != nil {
		return ingest.File{}, fmt.Errorf("failed to open upload %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return ingest.File{}, fmt.Errorf("failed to read upload %s: %w", fh.Filename, err)
	}
	return ingest.File{Name: fh.Filename, Data: data}, nil
}

// handleUploadResume accepts a single resume in the multipart field "file",
// with an optional job_offer_id query parameter. Post-storage processing
// failures do not fail the request: the file is safely stored and its URL is
// returned regardless.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	if s.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	}
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart request: "+err.Error())
		return
	}

	f, fh, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing file field")
		return
	}
	f.Close()

	var jobOfferID *int64
	if raw := r.URL.Query().Get("job_offer_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid job_offer_id")
			return
		}
		jobOfferID = &id
	}

	req := types.UploadRequest{Filename: fh.Filename, JobOfferID: jobOfferID}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid upload request: "+err.Error())
		return
	}

	upload, err := readUpload(fh)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.ingestor.IngestFile(r.Context(), upload, jobOfferID)
	if err != nil {
		var ve *ingest.ValidationError
		if errors.As(err, &ve) {
			s.errorResponse(w, http.StatusBadRequest, "File must be a PDF or DOCX")
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Error saving file: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, types.UploadResponse{URL: res.URL})
}

// handleUploadResumesHR accepts a batch of resumes in the multipart field
// "files", all linked to the job offer named in the path. A single unsupported
// file rejects the whole batch before anything is stored; afterwards each file
// succeeds or fails on its own.
func (s *Server) handleUploadResumesHR(w http.ResponseWriter, r *http.Request) {
	jobOfferID, err := strconv.ParseInt(r.PathValue("job_offer_id"), 10, 64)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job_offer_id")
		return
	}

	if s.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	}
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart request: "+err.Error())
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "Missing files field")
		return
	}

	req := types.BatchUploadRequest{JobOfferID: jobOfferID}
	for _, fh := range headers {
		req.Filenames = append(req.Filenames, fh.Filename)
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid upload request: "+err.Error())
		return
	}

	files := make([]ingest.File, 0, len(headers))
	for _, fh := range headers {
		upload, err := readUpload(fh)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		files = append(files, upload)
	}

	results, err := s.ingestor.IngestBatch(r.Context(), files, &jobOfferID)
	if err != nil {
		var ve *ingest.ValidationError
		if errors.As(err, &ve) {
			s.errorResponse(w, http.StatusBadRequest, ve.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Error saving files: "+err.Error())
		return
	}

	resp := types.BatchUploadResponse{Results: make([]types.FileOutcome, 0, len(results))}
	for _, res := range results {
		outcome := types.FileOutcome{Filename: res.Filename, URL: res.URL}
		if res.Err != nil {
			outcome.Error = res.Err.Error()
		}
		resp.Results = append(resp.Results, outcome)
	}
	s.jsonResponse(w, http.StatusOK, resp)
}
