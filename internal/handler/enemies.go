package handler

import (
	"net/http"

	"github.com/slaytrack/slaytrack/internal/analytics"
)

// HandleGetEnemyStats returns per-encounter damage and lethality statistics
// @Summary Get enemy stats
// @Description Get encounter counts, average damage and kill rates per enemy group over the filtered runs
// @Tags enemies
// @Produce json
// @Param character query string false "Canonical character name"
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param ascension_level query int false "Exact ascension level"
// @Param victory query bool false "Victory flag"
// @Param is_daily query bool false "Daily climb flag"
// @Param ignore_modded query bool false "Keep only base-game characters"
// @Success 200 {array} domain.EnemyStats
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /enemies [get]
func HandleGetEnemyStats(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, ok := parseRunFilter(w, r)
		if !ok {
			return
		}

		enemies, err := svc.Enemies(r.Context(), filter)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetEnemyStatsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, enemies)
	}
}
