package domain

import "time"

// RunFilter is an immutable set of optional predicates applied to a run
// collection. Nil/zero fields match everything; set fields are AND-combined.
type RunFilter struct {
	// Character matches the canonical character name exactly.
	Character string
	// Start and End bound the run timestamp inclusively. Both are calendar
	// dates taken at UTC midnight.
	Start *time.Time
	End   *time.Time
	// AscensionLevel matches the run's ascension level exactly.
	AscensionLevel *int
	// Victory matches the run's victory flag exactly.
	Victory *bool
	// IsDaily matches the run's daily-climb flag exactly.
	IsDaily *bool
	// IgnoreModded keeps only base-game characters and drops modded
	// cards/relics from per-entity stats.
	IgnoreModded bool
}

// IsZero reports whether no predicate is set.
func (f RunFilter) IsZero() bool {
	return f.Character == "" && f.Start == nil && f.End == nil &&
		f.AscensionLevel == nil && f.Victory == nil && f.IsDaily == nil &&
		!f.IgnoreModded
}
