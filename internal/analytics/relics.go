package analytics

import (
	"sort"

	"github.com/slaytrack/slaytrack/internal/domain"
)

type relicAccumulator struct {
	picks          int
	victories      int
	timesAvailable int
	characters     map[string]bool
}

// RelicStats scans relic-obtained events, boss-relic choices and the final
// relic set, and produces the per-relic view sorted by pick count descending
// with first-encounter order as tie-break.
//
// The final relic set only seeds the accumulator so starter relics appear in
// the scan; it does not add picks, and relics that were never picked are
// dropped from the output.
func RelicStats(runs []*domain.Run, ignoreModded bool) []domain.RelicStats {
	stats := make(map[string]*relicAccumulator)
	var order []string

	acc := func(relic string) *relicAccumulator {
		a, ok := stats[relic]
		if !ok {
			a = &relicAccumulator{characters: make(map[string]bool)}
			stats[relic] = a
			order = append(order, relic)
		}
		return a
	}

	for _, r := range runs {
		victory := r.Raw.Victory
		character := r.Raw.CharacterName()

		for _, event := range r.Raw.RelicsObtained {
			if event.Key == "" {
				continue
			}
			a := acc(event.Key)
			a.picks++
			a.characters[character] = true
			if victory {
				a.victories++
			}
		}

		for _, choice := range r.Raw.BossRelics {
			if choice.Picked != "" {
				a := acc(choice.Picked)
				a.picks++
				a.characters[character] = true
				if victory {
					a.victories++
				}
			}
			for _, notPicked := range choice.NotPicked {
				acc(notPicked).timesAvailable++
			}
		}

		// Final relic set seeds entries for starter relics only.
		for _, relic := range r.Raw.Relics {
			acc(relic)
		}
	}

	result := make([]domain.RelicStats, 0, len(order))
	for _, relic := range order {
		a := stats[relic]
		if a.picks == 0 {
			continue
		}

		result = append(result, domain.RelicStats{
			Relic:      relic,
			Picks:      a.picks,
			WinRate:    float64(a.victories) / float64(a.picks) * percentFactor,
			Victories:  a.victories,
			Defeats:    a.picks - a.victories,
			Characters: sortedKeys(a.characters),
		})
	}

	if ignoreModded {
		kept := result[:0]
		for _, r := range result {
			if !hasModdedPrefix(r.Relic, moddedRelicPrefixes) {
				kept = append(kept, r)
			}
		}
		result = kept
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Picks > result[j].Picks
	})
	return result
}
