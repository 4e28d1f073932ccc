package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/slaytrack/slaytrack/internal/domain"
	"github.com/slaytrack/slaytrack/internal/ingest"
)

// mockAnalytics implements analytics.Service with overridable behavior per
// test. Unset methods return empty results.
type mockAnalytics struct {
	runs       func(ctx context.Context, filter domain.RunFilter) ([]map[string]interface{}, error)
	summary    func(ctx context.Context, filter domain.RunFilter) (*domain.StatsSummary, error)
	cards      func(ctx context.Context, filter domain.RunFilter, rarity string) ([]domain.CardStats, error)
	lastFilter *domain.RunFilter
}

func (m *mockAnalytics) Runs(ctx context.Context, filter domain.RunFilter) ([]map[string]interface{}, error) {
	m.lastFilter = &filter
	if m.runs != nil {
		return m.runs(ctx, filter)
	}
	return nil, nil
}

func (m *mockAnalytics) Summary(ctx context.Context, filter domain.RunFilter) (*domain.StatsSummary, error) {
	m.lastFilter = &filter
	if m.summary != nil {
		return m.summary(ctx, filter)
	}
	return &domain.StatsSummary{}, nil
}

func (m *mockAnalytics) Correlation(ctx context.Context, filter domain.RunFilter) (*domain.CorrelationMatrix, error) {
	m.lastFilter = &filter
	return &domain.CorrelationMatrix{}, nil
}

func (m *mockAnalytics) TopCorrelations(ctx context.Context, filter domain.RunFilter) (map[string]domain.TargetCorrelations, error) {
	m.lastFilter = &filter
	return map[string]domain.TargetCorrelations{}, nil
}

func (m *mockAnalytics) Cards(ctx context.Context, filter domain.RunFilter, rarity string) ([]domain.CardStats, error) {
	m.lastFilter = &filter
	if m.cards != nil {
		return m.cards(ctx, filter, rarity)
	}
	return nil, nil
}

func (m *mockAnalytics) Enemies(ctx context.Context, filter domain.RunFilter) ([]domain.EnemyStats, error) {
	m.lastFilter = &filter
	return nil, nil
}

func (m *mockAnalytics) Relics(ctx context.Context, filter domain.RunFilter) ([]domain.RelicStats, error) {
	m.lastFilter = &filter
	return nil, nil
}

// mockIngest records import calls.
type mockIngest struct {
	result *domain.ImportResult
	err    error
	calls  int
	files  []ingest.File
}

func (m *mockIngest) ImportBatch(ctx context.Context, files []ingest.File) (*domain.ImportResult, error) {
	m.calls++
	m.files = files
	if m.err != nil {
		return nil, m.err
	}
	if m.result != nil {
		return m.result, nil
	}
	return &domain.ImportResult{}, nil
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var body ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode error body: %v", err)
	}
	return body
}
