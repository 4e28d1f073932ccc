package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/slaytrack/slaytrack/internal/domain"
)

func TestHandleGetStats(t *testing.T) {
	svc := &mockAnalytics{
		summary: func(ctx context.Context, filter domain.RunFilter) (*domain.StatsSummary, error) {
			return &domain.StatsSummary{TotalRuns: 12, Victories: 3, WinRate: 25}, nil
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats?character=WATCHER", nil)
	HandleGetStats(svc)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %s", ct)
	}

	var body domain.StatsSummary
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode body: %v", err)
	}
	if body.TotalRuns != 12 || body.WinRate != 25 {
		t.Errorf("Unexpected body: %+v", body)
	}

	if svc.lastFilter == nil || svc.lastFilter.Character != "WATCHER" {
		t.Errorf("Filter not passed through: %+v", svc.lastFilter)
	}
}

func TestHandleGetStats_NoRuns(t *testing.T) {
	svc := &mockAnalytics{
		summary: func(ctx context.Context, filter domain.RunFilter) (*domain.StatsSummary, error) {
			return nil, domain.ErrNoRuns
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	HandleGetStats(svc)(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Status = %d, want 404", rec.Code)
	}
	if body := decodeError(t, rec); body.Error != ErrMsgNoRunsError {
		t.Errorf("Error = %q, want %q", body.Error, ErrMsgNoRunsError)
	}
}

func TestHandleGetStats_MalformedFilter(t *testing.T) {
	svc := &mockAnalytics{
		summary: func(ctx context.Context, filter domain.RunFilter) (*domain.StatsSummary, error) {
			t.Error("Service should not be called for a malformed filter")
			return nil, nil
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats?victory=perhaps", nil)
	HandleGetStats(svc)(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Status = %d, want 400", rec.Code)
	}
}

func TestHandleGetStats_InternalError(t *testing.T) {
	svc := &mockAnalytics{
		summary: func(ctx context.Context, filter domain.RunFilter) (*domain.StatsSummary, error) {
			return nil, errors.New("pool exhausted")
		},
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	HandleGetStats(svc)(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("Status = %d, want 500", rec.Code)
	}
	// Internal detail must not leak to the client.
	if body := decodeError(t, rec); body.Error != ErrMsgGenericServerError {
		t.Errorf("Error = %q, want %q", body.Error, ErrMsgGenericServerError)
	}
}
