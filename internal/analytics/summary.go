package analytics

import (
	"github.com/slaytrack/slaytrack/internal/domain"
)

// Summarize computes the aggregate stats view over a filtered run
// collection. Returns domain.ErrNoRuns when the collection is empty so the
// caller can surface a "no data" condition instead of dividing by zero.
func Summarize(runs []*domain.Run) (*domain.StatsSummary, error) {
	if len(runs) == 0 {
		return nil, domain.ErrNoRuns
	}

	total := len(runs)
	victories := 0
	charCounts := make(map[string]int)
	charWins := make(map[string]int)

	var sumFloor, sumScore, sumPlaytime float64
	highestScore, deepestFloor := 0, 0

	for _, r := range runs {
		name := r.Raw.CharacterName()
		if name == "" {
			name = "Unknown"
		}
		charCounts[name]++

		if r.Raw.Victory {
			victories++
			charWins[name]++
		}

		sumFloor += float64(r.Raw.FloorReached)
		sumScore += float64(r.Raw.Score)
		sumPlaytime += float64(r.Raw.Playtime)

		if r.Raw.Score > highestScore {
			highestScore = r.Raw.Score
		}
		if r.Raw.FloorReached > deepestFloor {
			deepestFloor = r.Raw.FloorReached
		}
	}

	byCharacter := make(map[string]domain.CharacterRecord, len(charCounts))
	for name, count := range charCounts {
		byCharacter[name] = domain.CharacterRecord{
			Wins:    charWins[name],
			Total:   count,
			WinRate: float64(charWins[name]) / float64(count) * percentFactor,
		}
	}

	return &domain.StatsSummary{
		TotalRuns:             total,
		Victories:             victories,
		WinRate:               float64(victories) / float64(total) * percentFactor,
		CharacterDistribution: charCounts,
		WinRateByCharacter:    byCharacter,
		AvgFloorReached:       sumFloor / float64(total),
		AvgScore:              sumScore / float64(total),
		AvgPlaytimeSeconds:    sumPlaytime / float64(total),
		HighestScore:          highestScore,
		DeepestFloor:          deepestFloor,
	}, nil
}
