package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgInvalidStartDate = "Invalid start_date, expected YYYY-MM-DD"
	ErrMsgInvalidEndDate   = "Invalid end_date, expected YYYY-MM-DD"
	ErrMsgInvalidAscension = "Invalid ascension_level, expected an integer"
	ErrMsgInvalidVictory   = "Invalid victory, expected true or false"
	ErrMsgInvalidIsDaily   = "Invalid is_daily, expected true or false"

	// Run retrieval error messages
	ErrMsgGetRunsFailed            = "Failed to retrieve runs"
	ErrMsgGetStatsFailed           = "Failed to compute stats"
	ErrMsgGetCorrelationFailed     = "Failed to compute correlations"
	ErrMsgGetTopCorrelationsFailed = "Failed to compute top correlations"
	ErrMsgGetCardStatsFailed       = "Failed to compute card stats"
	ErrMsgGetEnemyStatsFailed      = "Failed to compute enemy stats"
	ErrMsgGetRelicStatsFailed      = "Failed to compute relic stats"

	// Upload error messages
	ErrMsgUploadFailed       = "Failed to process upload"
	ErrMsgMultipartParseFail = "Failed to parse multipart form"
)

// Success messages for API responses
const (
	MsgUploadProcessed = "Upload processed"
	MsgStorageAwake    = "Storage backend is awake"
	MsgWakeSent        = "Wake request sent"
)
