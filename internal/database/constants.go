package database

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
)

// dormantErrorKeywords are substrings that hosted Postgres providers put in
// errors when the instance has been paused for inactivity. Matching is
// case-insensitive.
var dormantErrorKeywords = []string{
	"paused",
	"sleeping",
	"inactive",
	"hibernat",
}
