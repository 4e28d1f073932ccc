package handler

import (
	"net/http"

	"github.com/slaytrack/slaytrack/internal/analytics"
)

// HandleGetCorrelation returns the full pairwise feature correlation matrix
// @Summary Get correlation matrix
// @Description Get the pairwise Pearson correlation matrix over the run feature vectors
// @Tags correlation
// @Produce json
// @Param character query string false "Canonical character name"
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param ascension_level query int false "Exact ascension level"
// @Param victory query bool false "Victory flag"
// @Param is_daily query bool false "Daily climb flag"
// @Param ignore_modded query bool false "Keep only base-game characters"
// @Success 200 {object} domain.CorrelationMatrix
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /correlation [get]
func HandleGetCorrelation(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, ok := parseRunFilter(w, r)
		if !ok {
			return
		}

		matrix, err := svc.Correlation(r.Context(), filter)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetCorrelationFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, matrix)
	}
}

// HandleGetTopCorrelations returns the strongest positive and negative
// correlations against the fixed targets
// @Summary Get top correlations
// @Description Get the ten strongest positive and negative feature correlations for victory, floor reached and score
// @Tags correlation
// @Produce json
// @Param character query string false "Canonical character name"
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param ascension_level query int false "Exact ascension level"
// @Param victory query bool false "Victory flag"
// @Param is_daily query bool false "Daily climb flag"
// @Param ignore_modded query bool false "Keep only base-game characters"
// @Success 200 {object} map[string]domain.TargetCorrelations
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /correlation/top [get]
func HandleGetTopCorrelations(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, ok := parseRunFilter(w, r)
		if !ok {
			return
		}

		top, err := svc.TopCorrelations(r.Context(), filter)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetTopCorrelationsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, top)
	}
}
