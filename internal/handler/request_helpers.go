package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/slaytrack/slaytrack/internal/domain"
	"github.com/slaytrack/slaytrack/internal/logger"
)

// dateLayout is the calendar date format accepted by the filter parameters.
const dateLayout = "2006-01-02"

// parseRunFilter builds a RunFilter from the shared filter query parameters
// (character, start_date, end_date, ascension_level, victory, is_daily,
// ignore_modded). On a malformed parameter it writes a 400 response and
// returns ok=false; the handler should return without doing anything else.
func parseRunFilter(w http.ResponseWriter, r *http.Request) (domain.RunFilter, bool) {
	log := logger.FromContext(r.Context())
	q := r.URL.Query()

	var filter domain.RunFilter
	filter.Character = q.Get("character")

	if v := q.Get("start_date"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			log.Warn("Invalid start_date parameter", "value", v)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidStartDate)
			return filter, false
		}
		filter.Start = &t
	}

	if v := q.Get("end_date"); v != "" {
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			log.Warn("Invalid end_date parameter", "value", v)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidEndDate)
			return filter, false
		}
		filter.End = &t
	}

	if v := q.Get("ascension_level"); v != "" {
		level, err := strconv.Atoi(v)
		if err != nil {
			log.Warn("Invalid ascension_level parameter", "value", v)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidAscension)
			return filter, false
		}
		filter.AscensionLevel = &level
	}

	if v := q.Get("victory"); v != "" {
		victory, err := strconv.ParseBool(v)
		if err != nil {
			log.Warn("Invalid victory parameter", "value", v)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidVictory)
			return filter, false
		}
		filter.Victory = &victory
	}

	if v := q.Get("is_daily"); v != "" {
		isDaily, err := strconv.ParseBool(v)
		if err != nil {
			log.Warn("Invalid is_daily parameter", "value", v)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidIsDaily)
			return filter, false
		}
		filter.IsDaily = &isDaily
	}

	if v := q.Get("ignore_modded"); v != "" {
		ignore, err := strconv.ParseBool(v)
		if err == nil {
			filter.IgnoreModded = ignore
		}
	}

	return filter, true
}

// cardQueryParams carries the cards-endpoint specific parameters through
// struct validation.
type cardQueryParams struct {
	Rarity string `validate:"rarity"`
}

// parseRarity validates the optional rarity parameter for the cards endpoint.
func parseRarity(w http.ResponseWriter, r *http.Request) (string, bool) {
	params := cardQueryParams{Rarity: r.URL.Query().Get("rarity")}
	if err := GetValidator().ValidateStruct(params); err != nil {
		logger.FromContext(r.Context()).Warn("Invalid rarity parameter", "value", params.Rarity)
		respondJSON(w, http.StatusBadRequest, FormatValidationError(err))
		return "", false
	}
	return strings.ToLower(params.Rarity), true
}

// GetOptionalQueryParam retrieves an optional query parameter from the request.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}
