package analytics

import (
	"testing"

	"github.com/slaytrack/slaytrack/internal/domain"
)

func findEnemy(stats []domain.EnemyStats, name string) (domain.EnemyStats, bool) {
	for _, e := range stats {
		if e.Enemy == name {
			return e, true
		}
	}
	return domain.EnemyStats{}, false
}

func TestEnemyStats(t *testing.T) {
	runs := []*domain.Run{
		mustParse(t, `{
			"play_id": "a",
			"victory": true,
			"damage_taken": [
				{"enemies": "Cultist", "damage": 4, "turns": 3, "floor": 1},
				{"enemies": "Gremlin Nob", "damage": 20, "turns": 5, "floor": 6}
			]
		}`),
		mustParse(t, `{
			"play_id": "b",
			"victory": false,
			"killed_by": "Gremlin Nob",
			"damage_taken": [
				{"enemies": "Cultist", "damage": 8, "turns": 5, "floor": 1},
				{"enemies": "Gremlin Nob", "damage": 42, "turns": 4, "floor": 7}
			]
		}`),
	}

	stats := EnemyStats(runs)

	cultist, ok := findEnemy(stats, "Cultist")
	if !ok {
		t.Fatal("Cultist missing from enemy stats")
	}
	if cultist.Encounters != 2 || cultist.AvgDamage != 6 || cultist.AvgTurns != 4 {
		t.Errorf("Cultist stats wrong: %+v", cultist)
	}
	if cultist.DefeatsPlayer != 0 || cultist.DefeatRate != 0 {
		t.Errorf("Cultist never killed the player: %+v", cultist)
	}
	if cultist.InVictories != 1 || cultist.InDefeats != 1 {
		t.Errorf("Cultist run outcomes wrong: %+v", cultist)
	}

	nob, ok := findEnemy(stats, "Gremlin Nob")
	if !ok {
		t.Fatal("Gremlin Nob missing from enemy stats")
	}
	if nob.DefeatsPlayer != 1 || nob.DefeatRate != 50 {
		t.Errorf("Gremlin Nob defeats wrong: %+v", nob)
	}
	if nob.AvgDamage != 31 {
		t.Errorf("Gremlin Nob avg damage = %v, want 31", nob.AvgDamage)
	}
}

func TestEnemyStats_SkipsUnnamedEncounters(t *testing.T) {
	runs := []*domain.Run{
		mustParse(t, `{
			"play_id": "a",
			"damage_taken": [
				{"enemies": "", "damage": 10, "turns": 1, "floor": 1},
				{"enemies": "Cultist", "damage": 4, "turns": 3, "floor": 2}
			]
		}`),
	}

	stats := EnemyStats(runs)

	if len(stats) != 1 || stats[0].Enemy != "Cultist" {
		t.Fatalf("Unnamed encounters should be skipped, got %v", stats)
	}
}

func TestEnemyStats_SortedByEncounters(t *testing.T) {
	runs := []*domain.Run{
		mustParse(t, `{
			"play_id": "a",
			"damage_taken": [
				{"enemies": "Jaw Worm", "damage": 6, "turns": 2, "floor": 1},
				{"enemies": "Cultist", "damage": 4, "turns": 3, "floor": 2},
				{"enemies": "Cultist", "damage": 5, "turns": 2, "floor": 3}
			]
		}`),
	}

	stats := EnemyStats(runs)

	if len(stats) != 2 || stats[0].Enemy != "Cultist" {
		t.Fatalf("Expected Cultist first by encounter count, got %v", stats)
	}
}
