package domain

import "encoding/json"

// Base game characters. Runs played as any other character come from mods
// (Downfall crossovers and similar) and are excluded when a filter asks for
// base-game runs only.
var BaseGameCharacters = map[string]bool{
	"IRONCLAD":   true,
	"THE_SILENT": true,
	"DEFECT":     true,
	"WATCHER":    true,
}

// CharacterUnknown is the canonical character value when the raw record does
// not name one.
const CharacterUnknown = "UNKNOWN"

// DefaultUserID is stored on every canonical run. The exporter has no notion
// of accounts; all runs belong to the single configured uploader.
const DefaultUserID = "default_user"

// CardChoice is one card-reward screen. Picked holds the chosen option,
// "SKIP" when the reward was skipped, or "" when the exporter left it out.
type CardChoice struct {
	Picked    string   `json:"picked"`
	NotPicked []string `json:"not_picked"`
	Floor     int      `json:"floor"`
}

// CampfireChoice is one rest-site action. Key is REST, SMITH, DIG, etc.
// Data carries the acted-on card or relic for keys that have one.
type CampfireChoice struct {
	Key   string `json:"key"`
	Data  string `json:"data"`
	Floor int    `json:"floor"`
}

// DamageEvent is one combat encounter. Damage and turns are floats because
// the game client serializes all numbers that way in some versions.
type DamageEvent struct {
	Enemies string  `json:"enemies"`
	Damage  float64 `json:"damage"`
	Turns   float64 `json:"turns"`
	Floor   int     `json:"floor"`
}

// RelicEvent is one relic pickup outside of boss-relic choices.
type RelicEvent struct {
	Key   string `json:"key"`
	Floor int    `json:"floor"`
}

// BossRelicChoice is one act-boss relic screen.
type BossRelicChoice struct {
	Picked    string   `json:"picked"`
	NotPicked []string `json:"not_picked"`
}

// RawRun is the decoded shape of a .run file as the game client exports it.
// Every field is optional in the wild. Go zero values double as the
// documented absent-field defaults; pointer fields mark true absence where
// downstream code needs to tell "" apart from missing.
type RawRun struct {
	PlayID              string            `json:"play_id"`
	SeedPlayed          string            `json:"seed_played"`
	SeedSourceTimestamp int64             `json:"seed_source_timestamp"`
	CharacterChosen     string            `json:"character_chosen"`
	Character           string            `json:"character"`
	FloorReached        int               `json:"floor_reached"`
	Victory             bool              `json:"victory"`
	Score               int               `json:"score"`
	AscensionLevel      int               `json:"ascension_level"`
	IsAscensionMode     bool              `json:"is_ascension_mode"`
	IsDaily             bool              `json:"is_daily"`
	Playtime            int64             `json:"playtime"`
	Timestamp           int64             `json:"timestamp"`
	LocalTime           string            `json:"local_time"`
	GoldPerFloor        []int             `json:"gold_per_floor"`
	CurrentHPPerFloor   []int             `json:"current_hp_per_floor"`
	MaxHPPerFloor       []int             `json:"max_hp_per_floor"`
	MasterDeck          []string          `json:"master_deck"`
	Relics              []string          `json:"relics"`
	CardChoices         []CardChoice      `json:"card_choices"`
	CampfireChoices     []CampfireChoice  `json:"campfire_choices"`
	ItemsPurged         []string          `json:"items_purged"`
	ItemsPurchased      []string          `json:"items_purchased"`
	PurchasedPurges     int               `json:"purchased_purges"`
	PotionsFloorUsage   []int             `json:"potions_floor_usage"`
	DamageTaken         []DamageEvent     `json:"damage_taken"`
	EventChoices        []json.RawMessage `json:"event_choices"`
	RelicsObtained      []RelicEvent      `json:"relics_obtained"`
	BossRelics          []BossRelicChoice `json:"boss_relics"`
	KilledBy            *string           `json:"killed_by"`
	NeowBonus           *string           `json:"neow_bonus"`
	NeowCost            *string           `json:"neow_cost"`
	ChoseNeowReward     *string           `json:"chose_neow_reward"`
}

// CharacterName returns the character the run was played as, preferring the
// current exporter field over the legacy one. Returns "" when neither is set.
func (r *RawRun) CharacterName() string {
	if r.CharacterChosen != "" {
		return r.CharacterChosen
	}
	return r.Character
}

// Run is the canonical, persisted form of a run record. Built exactly once by
// the parser and never mutated afterwards. RawData preserves the original
// document byte-for-byte for lossless replay; Raw is its decoded form, used
// by the read-side aggregators.
type Run struct {
	RunIdentifier       string          `json:"run_identifier"`
	PlayID              string          `json:"play_id"`
	SeedPlayed          string          `json:"seed_played"`
	SeedSourceTimestamp int64           `json:"seed_source_timestamp"`
	UserID              string          `json:"user_id"`
	Character           string          `json:"character"`
	FloorReached        int             `json:"floor_reached"`
	Victory             bool            `json:"victory"`
	Score               int             `json:"score"`
	AscensionLevel      int             `json:"ascension_level"`
	IsAscensionMode     bool            `json:"is_ascension_mode"`
	IsDaily             bool            `json:"is_daily"`
	Playtime            int64           `json:"playtime"`
	Timestamp           int64           `json:"timestamp"`
	LocalTime           string          `json:"local_time"`
	Gold                int             `json:"gold"`
	MaxHPFinal          int             `json:"max_hp_final"`
	CurrentHPFinal      int             `json:"current_hp_final"`
	DeckSize            int             `json:"deck_size"`
	RelicCount          int             `json:"relic_count"`
	CardsPicked         int             `json:"cards_picked"`
	CampfireRested      int             `json:"campfire_rested"`
	CampfireUpgraded    int             `json:"campfire_upgraded"`
	ItemsPurgedCount    int             `json:"items_purged_count"`
	KilledBy            *string         `json:"killed_by"`
	NeowBonus           *string         `json:"neow_bonus"`
	NeowCost            *string         `json:"neow_cost"`
	ChoseNeowReward     *string         `json:"chose_neow_reward"`
	RawData             json.RawMessage `json:"raw_data"`

	Raw *RawRun `json:"-"`
}

// ImportResult summarizes one batch import. Per-record failures never abort
// the batch; they end up in the counters and Errors instead.
type ImportResult struct {
	TotalFiles    int      `json:"total_files"`
	ParsedRuns    int      `json:"parsed_runs"`
	NewRuns       int      `json:"new_runs"`
	DuplicateRuns int      `json:"duplicate_runs"`
	Errors        []string `json:"errors,omitempty"`
}
