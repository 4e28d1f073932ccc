package analytics

import (
	"github.com/slaytrack/slaytrack/internal/domain"
)

// featureNames is the fixed feature order of the correlation table. Every
// FeatureVector is emitted in exactly this order.
var featureNames = []string{
	"victory",
	"floor_reached",
	"score",
	"playtime",
	"gold",
	"ascension_level",
	"campfire_rested",
	"campfire_upgraded",
	"items_purged_count",
	"purchased_purges",
	"deck_size",
	"relic_count",
	"potions_used",
	"total_damage_taken",
	"battles_count",
	"avg_damage_per_battle",
	"cards_picked",
	"cards_skipped",
	"events_encountered",
	"items_purchased_count",
	"max_hp_final",
	"current_hp_final",
	"is_defect",
	"is_ironclad",
	"is_silent",
	"is_watcher",
	"small_deck",
	"medium_deck",
	"large_deck",
}

// FeatureNames returns the ordered feature list. The returned slice is
// shared; callers must not modify it.
func FeatureNames() []string {
	return featureNames
}

// FeatureVector maps one run to a flat numeric row for statistical analysis.
// Booleans are coerced to 0/1 and derived ratios are zero-guarded, so the
// extractor never divides by zero. The character indicators and the three
// deck-size buckets are each mutually exclusive and exhaustive.
func FeatureVector(r *domain.Run) []float64 {
	raw := r.Raw

	totalDamage := 0.0
	for _, d := range raw.DamageTaken {
		totalDamage += d.Damage
	}
	battles := len(raw.DamageTaken)

	skipped := 0
	for _, c := range raw.CardChoices {
		if c.Picked == SkipSentinel {
			skipped++
		}
	}

	character := raw.CharacterName()
	deckSize := len(raw.MasterDeck)

	return []float64{
		boolFeature(raw.Victory),
		float64(raw.FloorReached),
		float64(raw.Score),
		float64(raw.Playtime),
		float64(r.Gold),
		float64(raw.AscensionLevel),
		float64(r.CampfireRested),
		float64(r.CampfireUpgraded),
		float64(len(raw.ItemsPurged)),
		float64(raw.PurchasedPurges),
		float64(deckSize),
		float64(len(raw.Relics)),
		float64(len(raw.PotionsFloorUsage)),
		totalDamage,
		float64(battles),
		totalDamage / float64(max(battles, 1)),
		float64(len(raw.CardChoices)),
		float64(skipped),
		float64(len(raw.EventChoices)),
		float64(len(raw.ItemsPurchased)),
		float64(lastOrZero(raw.MaxHPPerFloor)),
		float64(lastOrZero(raw.CurrentHPPerFloor)),
		boolFeature(character == "DEFECT"),
		boolFeature(character == "IRONCLAD"),
		boolFeature(character == "THE_SILENT"),
		boolFeature(character == "WATCHER"),
		boolFeature(deckSize <= smallDeckMax),
		boolFeature(deckSize > smallDeckMax && deckSize <= mediumDeckMax),
		boolFeature(deckSize > mediumDeckMax),
	}
}

// FeatureTable builds the full feature matrix, one row per run.
func FeatureTable(runs []*domain.Run) [][]float64 {
	table := make([][]float64, len(runs))
	for i, r := range runs {
		table[i] = FeatureVector(r)
	}
	return table
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func lastOrZero(s []int) int {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}
