package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Ingestion metric names
const (
	MetricNameRunsIngested     = "runs_ingested_total"
	MetricNameRunsDuplicate    = "runs_duplicate_total"
	MetricNameRunParseFailures = "run_parse_failures_total"
	MetricNameUploadsTotal     = "uploads_total"
	MetricNameUploadRejected   = "uploads_rejected_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Ingestion metric help text
const (
	HelpTextRunsIngested     = "Total number of new runs inserted"
	HelpTextRunsDuplicate    = "Total number of duplicate runs skipped"
	HelpTextRunParseFailures = "Total number of run files that failed to parse"
	HelpTextUploadsTotal     = "Total number of upload requests accepted"
	HelpTextUploadRejected   = "Total number of upload requests rejected"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelReason = "reason"
)

// Upload rejection reasons
const (
	RejectReasonAuth    = "auth"
	RejectReasonNoFiles = "no_files"
	RejectReasonBadZip  = "bad_archive"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
