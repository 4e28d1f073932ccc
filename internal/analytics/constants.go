package analytics

// Sentinels appearing in card-choice events
const (
	// SkipSentinel marks a card reward that was skipped outright.
	SkipSentinel = "SKIP"
)

// nonCardOptions are values that show up in card-choice events but are not
// cards (relics and special event rewards). They are excluded from per-card
// pick and availability accounting.
var nonCardOptions = map[string]bool{
	"Singing Bowl": true,
}

// Known modded-content name prefixes (lowercase). The relic list carries
// "sneckomod:" on top of the card list's "snecko:"; the discrepancy is
// preserved from the upstream data for output parity.
var (
	moddedCardPrefixes = []string{
		"collector:", "hermit:", "slimebound:", "guardian:", "snecko:",
		"gremlin:", "champ:", "automaton:", "spirit:", "bronze:",
	}
	moddedRelicPrefixes = []string{
		"collector:", "hermit:", "slimebound:", "guardian:", "snecko:",
		"sneckomod:", "gremlin:", "champ:", "automaton:", "spirit:", "bronze:",
	}
)

// Campfire choice key for card upgrades
const campfireKeySmith = "SMITH"

// upgradeSuffix marks an upgraded card in choice events
const upgradeSuffix = "+1"

// Deck size buckets for the feature extractor
const (
	smallDeckMax  = 25
	mediumDeckMax = 40
)

// topCorrelationCount is how many correlates to return per direction in the
// top-correlations view.
const topCorrelationCount = 10

// correlationTargets are the features the top-correlations view ranks
// everything else against.
var correlationTargets = []string{"victory", "floor_reached", "score"}

// percentFactor converts a ratio to a percentage
const percentFactor = 100.0
