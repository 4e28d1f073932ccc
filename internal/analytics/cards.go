package analytics

import (
	"sort"
	"strings"

	"github.com/slaytrack/slaytrack/internal/carddata"
	"github.com/slaytrack/slaytrack/internal/domain"
)

// cardAccumulator collects counts for one base card across all runs.
type cardAccumulator struct {
	picks            int
	pickedUpgraded   int
	campfireUpgrades int
	victories        int
	skipsAvailable   int
	timesAvailable   int
	characters       map[string]bool
}

// CardStats scans card-offer and campfire events across the filtered runs
// and produces the per-card view, sorted by pick count descending with the
// first-encounter order as tie-break.
//
// A pick counts only when the chosen value is a real card: the SKIP sentinel
// and non-card options (Singing Bowl) are excluded. Offered-but-not-picked
// options count toward availability, plus a skip count when the whole reward
// was skipped. Upgraded picks ("Strike+1") fold into the base card name.
// Campfire SMITH actions count as upgrades under the base name.
func CardStats(runs []*domain.Run, rarity string, ignoreModded bool) []domain.CardStats {
	stats := make(map[string]*cardAccumulator)
	var order []string

	acc := func(card string) *cardAccumulator {
		a, ok := stats[card]
		if !ok {
			a = &cardAccumulator{characters: make(map[string]bool)}
			stats[card] = a
			order = append(order, card)
		}
		return a
	}

	for _, r := range runs {
		victory := r.Raw.Victory
		character := r.Raw.CharacterName()

		for _, choice := range r.Raw.CardChoices {
			picked := choice.Picked
			if picked != "" && picked != SkipSentinel && !nonCardOptions[picked] {
				base, upgraded := baseCardName(picked)
				a := acc(base)
				a.picks++
				if upgraded {
					a.pickedUpgraded++
				}
				a.characters[character] = true
				if victory {
					a.victories++
				}
			}

			for _, notPicked := range choice.NotPicked {
				if nonCardOptions[notPicked] {
					continue
				}
				base, _ := baseCardName(notPicked)
				a := acc(base)
				a.timesAvailable++
				if picked == SkipSentinel {
					a.skipsAvailable++
				}
			}
		}

		for _, choice := range r.Raw.CampfireChoices {
			if choice.Key != campfireKeySmith || choice.Data == "" {
				continue
			}
			base, _ := baseCardName(choice.Data)
			acc(base).campfireUpgrades++
		}
	}

	result := make([]domain.CardStats, 0, len(order))
	for _, card := range order {
		a := stats[card]
		if a.picks == 0 {
			continue
		}

		info := carddata.Lookup(card)
		timesAvailable := a.timesAvailable + a.picks
		pickRate := 0.0
		if timesAvailable > 0 {
			pickRate = float64(a.picks) / float64(timesAvailable) * percentFactor
		}

		result = append(result, domain.CardStats{
			Card:               info.DisplayName,
			Rarity:             info.Rarity,
			Character:          info.Character,
			Type:               info.Type,
			Picks:              a.picks,
			PickRate:           pickRate,
			PickedUpgraded:     a.pickedUpgraded,
			CampfireUpgrades:   a.campfireUpgrades,
			WinRate:            float64(a.victories) / float64(a.picks) * percentFactor,
			Victories:          a.victories,
			TimesAvailable:     timesAvailable,
			SkipsWhenAvailable: a.skipsAvailable,
			Characters:         sortedKeys(a.characters),
		})
	}

	if rarity != "" {
		kept := result[:0]
		for _, c := range result {
			if strings.EqualFold(c.Rarity, rarity) {
				kept = append(kept, c)
			}
		}
		result = kept
	}

	if ignoreModded {
		kept := result[:0]
		for _, c := range result {
			if !hasModdedPrefix(c.Card, moddedCardPrefixes) {
				kept = append(kept, c)
			}
		}
		result = kept
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Picks > result[j].Picks
	})
	return result
}

// baseCardName strips the trailing upgrade marker, reporting whether the
// card was upgraded.
func baseCardName(card string) (string, bool) {
	if strings.HasSuffix(card, upgradeSuffix) {
		return card[:len(card)-len(upgradeSuffix)], true
	}
	return card, false
}

func hasModdedPrefix(name string, prefixes []string) bool {
	lower := strings.ToLower(name)
	for _, p := range prefixes {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
