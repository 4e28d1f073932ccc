package analytics

import (
	"github.com/slaytrack/slaytrack/internal/domain"
)

// Apply evaluates the filter over a run collection and returns the matching
// order-preserving subsequence. The input is never mutated. An empty filter
// returns the input as-is.
//
// Timestamps are taken from the raw stored record, which is what the game
// client wrote and what date filters are defined against.
func Apply(runs []*domain.Run, f domain.RunFilter) []*domain.Run {
	if f.IsZero() {
		return runs
	}

	filtered := make([]*domain.Run, 0, len(runs))
	for _, r := range runs {
		if matches(r, f) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func matches(r *domain.Run, f domain.RunFilter) bool {
	if f.IgnoreModded && !domain.BaseGameCharacters[r.Raw.CharacterName()] {
		return false
	}
	if f.Character != "" && r.Raw.CharacterName() != f.Character {
		return false
	}
	if f.Start != nil && r.Raw.Timestamp < f.Start.Unix() {
		return false
	}
	if f.End != nil && r.Raw.Timestamp > f.End.Unix() {
		return false
	}
	if f.AscensionLevel != nil && r.Raw.AscensionLevel != *f.AscensionLevel {
		return false
	}
	if f.Victory != nil && r.Raw.Victory != *f.Victory {
		return false
	}
	if f.IsDaily != nil && r.Raw.IsDaily != *f.IsDaily {
		return false
	}
	return true
}
