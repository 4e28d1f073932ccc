package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/slaytrack/slaytrack/internal/domain"
	"github.com/slaytrack/slaytrack/internal/logger"
	"github.com/slaytrack/slaytrack/internal/repository"
)

// storageProbeTimeout bounds the status/wake probe queries.
const storageProbeTimeout = 5 * time.Second

// StorageStatusResponse reports whether the run store is reachable
type StorageStatusResponse struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Asleep     bool   `json:"asleep"`
	Message    string `json:"message,omitempty"`
}

// HandleStorageStatus probes the run store and classifies the result
// @Summary Storage status
// @Description Probe the run store. Distinguishes a dormant (paused) backend from a hard failure.
// @Tags storage
// @Produce json
// @Success 200 {object} StorageStatusResponse
// @Router /storage/status [get]
func HandleStorageStatus(repo repository.Run) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		response := StorageStatusResponse{Configured: repo != nil}
		if repo == nil {
			response.Message = "storage is not configured"
			respondJSON(w, http.StatusOK, response)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), storageProbeTimeout)
		defer cancel()

		if err := repo.Probe(ctx); err != nil {
			if errors.Is(err, domain.ErrStorageAsleep) {
				log.Warn("Storage backend appears dormant", "error", err)
				response.Asleep = true
				response.Message = "storage backend is paused, use the wake endpoint"
			} else {
				log.Error("Storage probe failed", "error", err)
				response.Message = "storage backend is unreachable"
			}
			respondJSON(w, http.StatusOK, response)
			return
		}

		response.Connected = true
		respondJSON(w, http.StatusOK, response)
	}
}

// HandleStorageWake issues a probe query to nudge a dormant backend awake
// @Summary Wake storage
// @Description Send a trivial query to a paused run store to trigger its resume
// @Tags storage
// @Produce json
// @Success 200 {object} SuccessResponse
// @Success 202 {object} SuccessResponse
// @Failure 503 {object} ErrorResponse
// @Router /storage/wake [post]
func HandleStorageWake(repo repository.Run) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		ctx, cancel := context.WithTimeout(r.Context(), storageProbeTimeout)
		defer cancel()

		err := repo.Probe(ctx)
		if err == nil {
			respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgStorageAwake})
			return
		}

		if errors.Is(err, domain.ErrStorageAsleep) {
			// The probe itself is the wake trigger; resuming takes a while
			log.Info("Wake probe sent to dormant backend", "error", err)
			respondJSON(w, http.StatusAccepted, SuccessResponse{Message: MsgWakeSent})
			return
		}

		log.Error("Wake probe failed", "error", err)
		respondError(w, http.StatusServiceUnavailable, ErrMsgStorageUnavailableErr)
	}
}
