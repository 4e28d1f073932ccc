package postgres

// parseCacheSize bounds the decoded-run LRU cache. Sized well above the
// expected collection size of a single uploader's history.
const parseCacheSize = 16384

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Run Operations
const (
	ErrMsgFailedToQueryRuns        = "failed to query runs"
	ErrMsgFailedToScanRun          = "failed to scan run"
	ErrMsgFailedToQueryIdentifiers = "failed to query run identifiers"
	ErrMsgFailedToScanIdentifier   = "failed to scan run identifier"
	ErrMsgFailedToInsertRun        = "failed to insert run"
)
