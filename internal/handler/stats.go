package handler

import (
	"net/http"

	"github.com/slaytrack/slaytrack/internal/analytics"
	"github.com/slaytrack/slaytrack/internal/logger"
)

// HandleGetStats returns aggregate stats over the filtered run collection
// @Summary Get summary stats
// @Description Get win rate, character distribution and per-character records for the filtered runs
// @Tags stats
// @Produce json
// @Param character query string false "Canonical character name"
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param ascension_level query int false "Exact ascension level"
// @Param victory query bool false "Victory flag"
// @Param is_daily query bool false "Daily climb flag"
// @Param ignore_modded query bool false "Keep only base-game characters"
// @Success 200 {object} domain.StatsSummary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /stats [get]
func HandleGetStats(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		filter, ok := parseRunFilter(w, r)
		if !ok {
			return
		}

		summary, err := svc.Summary(r.Context(), filter)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetStatsFailed, err)
			return
		}

		log.Info("Stats summary computed", "total_runs", summary.TotalRuns, "win_rate", summary.WinRate)

		respondJSON(w, http.StatusOK, summary)
	}
}
