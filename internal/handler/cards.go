package handler

import (
	"net/http"

	"github.com/slaytrack/slaytrack/internal/analytics"
)

// HandleGetCardStats returns per-card pick and win statistics
// @Summary Get card stats
// @Description Get pick rates, upgrade counts and win rates per card over the filtered runs
// @Tags cards
// @Produce json
// @Param rarity query string false "Filter by rarity (common, uncommon, rare)"
// @Param character query string false "Canonical character name"
// @Param start_date query string false "Inclusive start date (YYYY-MM-DD)"
// @Param end_date query string false "Inclusive end date (YYYY-MM-DD)"
// @Param ascension_level query int false "Exact ascension level"
// @Param victory query bool false "Victory flag"
// @Param is_daily query bool false "Daily climb flag"
// @Param ignore_modded query bool false "Drop modded cards and characters"
// @Success 200 {array} domain.CardStats
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /cards [get]
func HandleGetCardStats(svc analytics.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, ok := parseRunFilter(w, r)
		if !ok {
			return
		}

		rarity, ok := parseRarity(w, r)
		if !ok {
			return
		}

		cards, err := svc.Cards(r.Context(), filter, rarity)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetCardStatsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, cards)
	}
}
