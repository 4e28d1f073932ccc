package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/slaytrack/slaytrack/internal/domain"
)

// probeAsleep and probeDown mirror what the postgres repository hands back
// for a dormant and an unreachable backend.
var (
	probeAsleep = fmt.Errorf("%w: project is paused", domain.ErrStorageAsleep)
	probeDown   = fmt.Errorf("%w: dial tcp: connection refused", domain.ErrStorageUnavailable)
)

type probeOnlyRepo struct {
	probeErr error
}

func (p *probeOnlyRepo) GetAll(ctx context.Context) ([]*domain.Run, error) { return nil, nil }
func (p *probeOnlyRepo) ExistingIdentifiers(ctx context.Context, ids []string) (map[string]struct{}, error) {
	return nil, nil
}
func (p *probeOnlyRepo) Insert(ctx context.Context, r *domain.Run) error { return nil }
func (p *probeOnlyRepo) Probe(ctx context.Context) error                 { return p.probeErr }

func storageStatus(t *testing.T, rec *httptest.ResponseRecorder) StorageStatusResponse {
	t.Helper()

	var body StorageStatusResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode status body: %v", err)
	}
	return body
}

func TestHandleStorageStatus_Connected(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/storage/status", nil)
	HandleStorageStatus(&probeOnlyRepo{})(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200", rec.Code)
	}
	body := storageStatus(t, rec)
	if !body.Configured || !body.Connected || body.Asleep {
		t.Errorf("Unexpected status: %+v", body)
	}
}

func TestHandleStorageStatus_Dormant(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/storage/status", nil)
	HandleStorageStatus(&probeOnlyRepo{probeErr: probeAsleep})(rec, req)

	// Classification travels in the body, not the status code.
	if rec.Code != http.StatusOK {
		t.Fatalf("Status = %d, want 200", rec.Code)
	}
	body := storageStatus(t, rec)
	if !body.Configured || body.Connected || !body.Asleep {
		t.Errorf("Dormant backend misclassified: %+v", body)
	}
}

func TestHandleStorageStatus_Unreachable(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/storage/status", nil)
	HandleStorageStatus(&probeOnlyRepo{probeErr: probeDown})(rec, req)

	body := storageStatus(t, rec)
	if body.Connected || body.Asleep || body.Message == "" {
		t.Errorf("Unreachable backend misclassified: %+v", body)
	}
}

func TestHandleStorageWake(t *testing.T) {
	tests := []struct {
		name     string
		probeErr error
		want     int
	}{
		{"already awake", nil, http.StatusOK},
		{"dormant", probeAsleep, http.StatusAccepted},
		{"hard failure", probeDown, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/storage/wake", nil)
			HandleStorageWake(&probeOnlyRepo{probeErr: tt.probeErr})(rec, req)

			if rec.Code != tt.want {
				t.Errorf("Status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}
