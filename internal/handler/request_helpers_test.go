package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func filterRequest(t *testing.T, query string) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()
	return httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/runs"+query, nil)
}

func TestParseRunFilter_AllParameters(t *testing.T) {
	rec, req := filterRequest(t, "?character=IRONCLAD&start_date=2023-11-01&end_date=2023-11-30&ascension_level=20&victory=true&is_daily=false&ignore_modded=true")

	filter, ok := parseRunFilter(rec, req)
	if !ok {
		t.Fatalf("parseRunFilter rejected valid parameters: %s", rec.Body.String())
	}

	if filter.Character != "IRONCLAD" {
		t.Errorf("Character = %s", filter.Character)
	}
	wantStart := time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC)
	if filter.Start == nil || !filter.Start.Equal(wantStart) {
		t.Errorf("Start = %v, want %v", filter.Start, wantStart)
	}
	if filter.AscensionLevel == nil || *filter.AscensionLevel != 20 {
		t.Errorf("AscensionLevel = %v", filter.AscensionLevel)
	}
	if filter.Victory == nil || !*filter.Victory {
		t.Errorf("Victory = %v", filter.Victory)
	}
	if filter.IsDaily == nil || *filter.IsDaily {
		t.Errorf("IsDaily = %v", filter.IsDaily)
	}
	if !filter.IgnoreModded {
		t.Error("IgnoreModded should be set")
	}
}

func TestParseRunFilter_Empty(t *testing.T) {
	rec, req := filterRequest(t, "")

	filter, ok := parseRunFilter(rec, req)
	if !ok {
		t.Fatal("Empty query should parse")
	}
	if filter.Character != "" || filter.Start != nil || filter.End != nil ||
		filter.AscensionLevel != nil || filter.Victory != nil || filter.IsDaily != nil || filter.IgnoreModded {
		t.Errorf("Empty query should yield the zero filter: %+v", filter)
	}
}

func TestParseRunFilter_MalformedParameters(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"bad start_date", "?start_date=yesterday"},
		{"bad end_date", "?end_date=2023/11/30"},
		{"bad ascension", "?ascension_level=high"},
		{"bad victory", "?victory=maybe"},
		{"bad is_daily", "?is_daily=2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, req := filterRequest(t, tt.query)

			_, ok := parseRunFilter(rec, req)
			if ok {
				t.Fatal("Malformed parameter should be rejected")
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("Status = %d, want 400", rec.Code)
			}
			if body := decodeError(t, rec); body.Error == "" {
				t.Error("Error body should name the bad parameter")
			}
		})
	}
}

func TestParseRunFilter_BadIgnoreModdedIsIgnored(t *testing.T) {
	rec, req := filterRequest(t, "?ignore_modded=whatever")

	filter, ok := parseRunFilter(rec, req)
	if !ok {
		t.Fatal("Unparseable ignore_modded should not reject the request")
	}
	if filter.IgnoreModded {
		t.Error("Unparseable ignore_modded should stay false")
	}
}

func TestParseRarity(t *testing.T) {
	InitValidator()

	tests := []struct {
		query string
		want  string
		ok    bool
	}{
		{"", "", true},
		{"?rarity=common", "common", true},
		{"?rarity=RARE", "rare", true},
		{"?rarity=basic", "", false},
		{"?rarity=legendary", "", false},
	}

	for _, tt := range tests {
		rec, req := filterRequest(t, tt.query)

		got, ok := parseRarity(rec, req)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseRarity(%q) = (%q, %v), want (%q, %v)", tt.query, got, ok, tt.want, tt.ok)
		}
		if tt.ok {
			continue
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("parseRarity(%q) status = %d, want 400", tt.query, rec.Code)
		}
		if body := decodeFieldErrors(t, rec); body["rarity"] == "" {
			t.Errorf("parseRarity(%q) body = %v, want a rarity field error", tt.query, body)
		}
	}
}

func decodeFieldErrors(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode validation body: %v", err)
	}
	return body
}
