package handler

import (
	"net/http"

	"github.com/slaytrack/slaytrack/internal/analytics"
)

// HandleGetRelicStats returns per-relic pick and win statistics
// @Summary Get relic stats
// @Description Get pick counts and win rates per relic over the filtered runs
// @Tags relics
// @Produce json
// @Param character query string false "Canonical character name"
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param ascension_level query int false "Exact ascension level"
// @Param victory query bool false "Victory flag"
// @Param is_daily query bool false "Daily climb flag"
// @Param ignore_modded query bool false "Drop modded relics and characters"
// @Success 200 {array} domain.RelicStats
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /relics [get]
func HandleGetRelicStats(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, ok := parseRunFilter(w, r)
		if !ok {
			return
		}

		relics, err := svc.Relics(r.Context(), filter)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetRelicStatsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, relics)
	}
}
