package analytics

import (
	"sort"

	"github.com/slaytrack/slaytrack/internal/domain"
)

type enemyAccumulator struct {
	encounters    int
	totalDamage   float64
	totalTurns    float64
	defeatsPlayer int
	inVictories   int
	inDefeats     int
}

// EnemyStats scans damage-taken events keyed by enemy identifier and
// produces the per-enemy view, sorted by encounter count descending with
// first-encounter order as tie-break. Averages are normalized by encounter
// count; the defeats counter tracks encounters matching the run's recorded
// killer.
func EnemyStats(runs []*domain.Run) []domain.EnemyStats {
	stats := make(map[string]*enemyAccumulator)
	var order []string

	for _, r := range runs {
		victory := r.Raw.Victory
		killedBy := ""
		if r.Raw.KilledBy != nil {
			killedBy = *r.Raw.KilledBy
		}

		for _, event := range r.Raw.DamageTaken {
			if event.Enemies == "" {
				continue
			}

			a, ok := stats[event.Enemies]
			if !ok {
				a = &enemyAccumulator{}
				stats[event.Enemies] = a
				order = append(order, event.Enemies)
			}

			a.encounters++
			a.totalDamage += event.Damage
			a.totalTurns += event.Turns

			if victory {
				a.inVictories++
			} else {
				a.inDefeats++
			}
			if killedBy == event.Enemies {
				a.defeatsPlayer++
			}
		}
	}

	result := make([]domain.EnemyStats, 0, len(order))
	for _, enemy := range order {
		a := stats[enemy]
		if a.encounters == 0 {
			continue
		}

		result = append(result, domain.EnemyStats{
			Enemy:         enemy,
			Encounters:    a.encounters,
			AvgDamage:     a.totalDamage / float64(a.encounters),
			AvgTurns:      a.totalTurns / float64(a.encounters),
			DefeatsPlayer: a.defeatsPlayer,
			DefeatRate:    float64(a.defeatsPlayer) / float64(a.encounters) * percentFactor,
			InVictories:   a.inVictories,
			InDefeats:     a.inDefeats,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Encounters > result[j].Encounters
	})
	return result
}
