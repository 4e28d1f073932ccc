package handler

import (
	"net/http"

	"github.com/slaytrack/slaytrack/internal/analytics"
)

// HandleGetRuns returns the filtered raw run documents
// @Summary List runs
// @Description Get the raw run documents matching the shared filter parameters
// @Tags runs
// @Produce json
// @Param character query string false "Canonical character name"
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param ascension_level query int false "Exact ascension level"
// @Param victory query bool false "Victory flag"
// @Param is_daily query bool false "Daily climb flag"
// @Param ignore_modded query bool false "Keep only base-game characters"
// @Success 200 {array} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /runs [get]
func HandleGetRuns(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, ok := parseRunFilter(w, r)
		if !ok {
			return
		}

		runs, err := svc.Runs(r.Context(), filter)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetRunsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, runs)
	}
}
