package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Parse errors
	ErrMsgMalformedRun  = "run file is not valid JSON"
	ErrMsgMissingPlayID = "run file has no play_id"

	// Aggregation errors
	ErrMsgNoRuns = "no runs found"

	// Storage errors
	ErrMsgDuplicateRun       = "run already exists"
	ErrMsgStorageUnavailable = "storage backend unavailable"
	ErrMsgStorageAsleep      = "storage backend is paused and needs a wake call"

	// Upload errors
	ErrMsgInvalidPassword = "invalid upload password"
	ErrMsgNoFiles         = "no files provided"
	ErrMsgNoValidFiles    = "no valid .run or .zip files provided"
	ErrMsgBadArchive      = "invalid ZIP file"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Parse errors
	ErrMalformedRun  = errors.New(ErrMsgMalformedRun)
	ErrMissingPlayID = errors.New(ErrMsgMissingPlayID)

	// Aggregation errors
	ErrNoRuns = errors.New(ErrMsgNoRuns)

	// Storage errors
	ErrDuplicateRun       = errors.New(ErrMsgDuplicateRun)
	ErrStorageUnavailable = errors.New(ErrMsgStorageUnavailable)
	ErrStorageAsleep      = errors.New(ErrMsgStorageAsleep)

	// Upload errors
	ErrInvalidPassword = errors.New(ErrMsgInvalidPassword)
	ErrNoFiles         = errors.New(ErrMsgNoFiles)
	ErrNoValidFiles    = errors.New(ErrMsgNoValidFiles)
	ErrBadArchive      = errors.New(ErrMsgBadArchive)
)
