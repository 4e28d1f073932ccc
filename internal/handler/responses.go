package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/slaytrack/slaytrack/internal/domain"
	"github.com/slaytrack/slaytrack/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := acquireBuffer()
	defer releaseBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Log the error - we can't write to response at this point since headers are sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	// Write the buffer to the response
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	// Aggregation messages
	ErrMsgNoRunsError = "No runs found for the given filters"

	// Upload messages
	ErrMsgInvalidPasswordError = "Invalid upload password"
	ErrMsgNoFilesError         = "No files provided"
	ErrMsgNoValidFilesError    = "No valid .run or .zip files provided"
	ErrMsgBadArchiveError      = "One of the uploaded archives is not a valid ZIP file"

	// Storage messages
	ErrMsgStorageUnavailableErr = "Storage backend is unavailable. Please try again later"
	ErrMsgStorageAsleepError    = "Storage backend is waking up. Please retry in a moment"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
// This function converts internal service errors to appropriate HTTP status codes and messages
// that users can understand and act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrNoRuns):
		return http.StatusNotFound, ErrMsgNoRunsError
	case errors.Is(err, domain.ErrInvalidPassword):
		return http.StatusUnauthorized, ErrMsgInvalidPasswordError
	case errors.Is(err, domain.ErrNoFiles):
		return http.StatusBadRequest, ErrMsgNoFilesError
	case errors.Is(err, domain.ErrNoValidFiles):
		return http.StatusBadRequest, ErrMsgNoValidFilesError
	case errors.Is(err, domain.ErrBadArchive):
		return http.StatusBadRequest, ErrMsgBadArchiveError
	case errors.Is(err, domain.ErrStorageAsleep):
		return http.StatusServiceUnavailable, ErrMsgStorageAsleepError
	case errors.Is(err, domain.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, ErrMsgStorageUnavailableErr
	case errors.Is(err, domain.ErrMalformedRun):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrMissingPlayID):
		return http.StatusBadRequest, err.Error()
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// respondServiceError logs a failed service call and writes the mapped
// user-facing error.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	log := logger.FromContext(r.Context())

	status, message := mapServiceErrorToUserMessage(err)
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err)
	}

	respondError(w, status, message)
}
