package analytics

import (
	"testing"

	"github.com/slaytrack/slaytrack/internal/domain"
	"github.com/slaytrack/slaytrack/internal/run"
)

// mustParse builds a canonical run from a raw document, failing the test on
// parse errors. Tests construct runs the same way the ingest path does.
func mustParse(t *testing.T, doc string) *domain.Run {
	t.Helper()

	r, err := run.Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Failed to parse test run: %v", err)
	}
	return r
}

// parseRunDoc is the benchmark-friendly variant that returns the error
// instead of failing a *testing.T.
func parseRunDoc(doc string) (*domain.Run, error) {
	return run.Parse([]byte(doc))
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }
