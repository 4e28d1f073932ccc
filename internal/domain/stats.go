package domain

// CharacterRecord is the win/loss record for one character.
type CharacterRecord struct {
	Wins    int     `json:"wins"`
	Total   int     `json:"total"`
	WinRate float64 `json:"win_rate"`
}

// StatsSummary is the aggregate view over a filtered run collection.
type StatsSummary struct {
	TotalRuns             int                        `json:"total_runs"`
	Victories             int                        `json:"victories"`
	WinRate               float64                    `json:"win_rate"`
	CharacterDistribution map[string]int             `json:"character_distribution"`
	WinRateByCharacter    map[string]CharacterRecord `json:"win_rate_by_character"`
	AvgFloorReached       float64                    `json:"avg_floor_reached"`
	AvgScore              float64                    `json:"avg_score"`
	AvgPlaytimeSeconds    float64                    `json:"avg_playtime_seconds"`
	HighestScore          int                        `json:"highest_score"`
	DeepestFloor          int                        `json:"deepest_floor"`
}

// CorrelationMatrix is the full pairwise Pearson matrix over the feature
// table. Matrix[i][j] is the coefficient between Features[i] and Features[j].
type CorrelationMatrix struct {
	Features []string    `json:"features"`
	Matrix   [][]float64 `json:"matrix"`
}

// CorrelationEntry ranks one feature against a target feature.
type CorrelationEntry struct {
	Feature     string  `json:"feature"`
	Correlation float64 `json:"correlation"`
}

// TargetCorrelations holds the strongest positive and negative correlates of
// one target feature, self-correlation excluded.
type TargetCorrelations struct {
	Positive []CorrelationEntry `json:"positive"`
	Negative []CorrelationEntry `json:"negative"`
}

// CardStats is the per-card performance view.
type CardStats struct {
	Card               string   `json:"card"`
	Rarity             string   `json:"rarity"`
	Character          string   `json:"character"`
	Type               string   `json:"type"`
	Picks              int      `json:"picks"`
	PickRate           float64  `json:"pick_rate"`
	PickedUpgraded     int      `json:"picked_upgraded"`
	CampfireUpgrades   int      `json:"campfire_upgrades"`
	WinRate            float64  `json:"win_rate"`
	Victories          int      `json:"victories"`
	TimesAvailable     int      `json:"times_available"`
	SkipsWhenAvailable int      `json:"skips_when_available"`
	Characters         []string `json:"characters"`
}

// EnemyStats is the per-enemy encounter view.
type EnemyStats struct {
	Enemy         string  `json:"enemy"`
	Encounters    int     `json:"encounters"`
	AvgDamage     float64 `json:"avg_damage"`
	AvgTurns      float64 `json:"avg_turns"`
	DefeatsPlayer int     `json:"defeats_player"`
	DefeatRate    float64 `json:"defeat_rate"`
	InVictories   int     `json:"in_victories"`
	InDefeats     int     `json:"in_defeats"`
}

// RelicStats is the per-relic performance view.
type RelicStats struct {
	Relic      string   `json:"relic"`
	Picks      int      `json:"picks"`
	WinRate    float64  `json:"win_rate"`
	Victories  int      `json:"victories"`
	Defeats    int      `json:"defeats"`
	Characters []string `json:"characters"`
}
