package handler

import (
	"crypto/subtle"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/slaytrack/slaytrack/internal/domain"
	"github.com/slaytrack/slaytrack/internal/ingest"
	"github.com/slaytrack/slaytrack/internal/logger"
	"github.com/slaytrack/slaytrack/internal/metrics"
)

// MaxUploadBytes caps the size of one upload request body.
const MaxUploadBytes = 50 << 20 // 50 MiB

// HandleUpload ingests a batch of .run files and .zip archives
// @Summary Upload run files
// @Description Upload .run files or .zip archives of run files. Requires the shared upload password.
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param password formData string true "Upload password"
// @Param files formData file true "Run files or ZIP archives"
// @Success 200 {object} domain.ImportResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /upload [post]
func HandleUpload(svc ingest.Service, uploadPassword, uploadDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)
		if err := r.ParseMultipartForm(MaxUploadBytes); err != nil {
			log.Warn("Failed to parse multipart form", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgMultipartParseFail)
			return
		}

		password := r.FormValue("password")
		if subtle.ConstantTimeCompare([]byte(password), []byte(uploadPassword)) != 1 {
			metrics.UploadRejected.WithLabelValues(metrics.RejectReasonAuth).Inc()
			respondServiceError(w, r, ErrMsgUploadFailed, domain.ErrInvalidPassword)
			return
		}

		headers := collectFileHeaders(r.MultipartForm)
		if len(headers) == 0 {
			metrics.UploadRejected.WithLabelValues(metrics.RejectReasonNoFiles).Inc()
			respondServiceError(w, r, ErrMsgUploadFailed, domain.ErrNoFiles)
			return
		}

		uploads := make([]ingest.Upload, 0, len(headers))
		for _, fh := range headers {
			fh := fh
			uploads = append(uploads, ingest.Upload{
				Name: fh.Filename,
				Open: func() (io.ReadCloser, error) { return fh.Open() },
			})
		}

		files, err := ingest.CollectFiles(uploads, uploadDir)
		if err != nil {
			if errors.Is(err, domain.ErrNoValidFiles) {
				metrics.UploadRejected.WithLabelValues(metrics.RejectReasonNoFiles).Inc()
			} else {
				metrics.UploadRejected.WithLabelValues(metrics.RejectReasonBadZip).Inc()
			}
			respondServiceError(w, r, ErrMsgUploadFailed, err)
			return
		}

		result, err := svc.ImportBatch(r.Context(), files)
		if err != nil {
			respondServiceError(w, r, ErrMsgUploadFailed, err)
			return
		}

		metrics.UploadsTotal.Inc()
		log.Info("Upload processed",
			"files", result.TotalFiles,
			"new", result.NewRuns,
			"duplicates", result.DuplicateRuns,
			"errors", len(result.Errors))

		respondJSON(w, http.StatusOK, result)
	}
}

// collectFileHeaders flattens every file part of the form, whatever field
// name the client used.
func collectFileHeaders(form *multipart.Form) []*multipart.FileHeader {
	if form == nil {
		return nil
	}

	var headers []*multipart.FileHeader
	for _, fhs := range form.File {
		headers = append(headers, fhs...)
	}
	return headers
}
