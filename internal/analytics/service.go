package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/slaytrack/slaytrack/internal/domain"
	"github.com/slaytrack/slaytrack/internal/logger"
	"github.com/slaytrack/slaytrack/internal/repository"
)

// Service defines the read-side aggregation operations. Every call fetches
// the full run collection, filters it, and recomputes from scratch; there is
// no cached or incremental aggregation layer.
type Service interface {
	Runs(ctx context.Context, filter domain.RunFilter) ([]map[string]interface{}, error)
	Summary(ctx context.Context, filter domain.RunFilter) (*domain.StatsSummary, error)
	Correlation(ctx context.Context, filter domain.RunFilter) (*domain.CorrelationMatrix, error)
	TopCorrelations(ctx context.Context, filter domain.RunFilter) (map[string]domain.TargetCorrelations, error)
	Cards(ctx context.Context, filter domain.RunFilter, rarity string) ([]domain.CardStats, error)
	Enemies(ctx context.Context, filter domain.RunFilter) ([]domain.EnemyStats, error)
	Relics(ctx context.Context, filter domain.RunFilter) ([]domain.RelicStats, error)
}

type service struct {
	repo repository.Run
}

// NewService creates a new analytics service
func NewService(repo repository.Run) Service {
	return &service{repo: repo}
}

// load fetches the full collection, sorts it by the raw timestamp ascending
// and applies the filter. Returns domain.ErrNoRuns when nothing matches.
func (s *service) load(ctx context.Context, filter domain.RunFilter) ([]*domain.Run, error) {
	runs, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load runs: %w", err)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Raw.Timestamp < runs[j].Raw.Timestamp
	})

	filtered := Apply(runs, filter)
	if len(filtered) == 0 {
		return nil, domain.ErrNoRuns
	}
	return filtered, nil
}

// Runs returns the filtered raw run documents, character-normalized for
// exports that predate the character_chosen field.
func (s *service) Runs(ctx context.Context, filter domain.RunFilter) ([]map[string]interface{}, error) {
	log := logger.FromContext(ctx)

	runs, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load runs: %w", err)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Raw.Timestamp < runs[j].Raw.Timestamp
	})
	filtered := Apply(runs, filter)

	result := make([]map[string]interface{}, 0, len(filtered))
	for _, r := range filtered {
		var doc map[string]interface{}
		if err := json.Unmarshal(r.RawData, &doc); err != nil {
			log.Warn("Skipping undecodable stored run", "run_identifier", r.RunIdentifier, "error", err)
			continue
		}
		if _, ok := doc["character"]; !ok {
			if chosen, ok := doc["character_chosen"]; ok {
				doc["character"] = chosen
			}
		}
		result = append(result, doc)
	}

	log.Debug("Retrieved runs", "total", len(runs), "matched", len(result))
	return result, nil
}

// Summary computes aggregate stats over the filtered collection.
func (s *service) Summary(ctx context.Context, filter domain.RunFilter) (*domain.StatsSummary, error) {
	log := logger.FromContext(ctx)

	runs, err := s.load(ctx, filter)
	if err != nil {
		return nil, err
	}

	summary, err := Summarize(runs)
	if err != nil {
		return nil, err
	}

	log.Debug("Computed stats summary", "runs", summary.TotalRuns, "victories", summary.Victories)
	return summary, nil
}

// Correlation computes the full pairwise Pearson matrix over the filtered
// collection's feature table.
func (s *service) Correlation(ctx context.Context, filter domain.RunFilter) (*domain.CorrelationMatrix, error) {
	log := logger.FromContext(ctx)

	runs, err := s.load(ctx, filter)
	if err != nil {
		return nil, err
	}

	matrix := CorrelationMatrix(runs)
	log.Debug("Computed correlation matrix", "runs", len(runs), "features", len(matrix.Features))
	return matrix, nil
}

// TopCorrelations ranks features against the fixed targets.
func (s *service) TopCorrelations(ctx context.Context, filter domain.RunFilter) (map[string]domain.TargetCorrelations, error) {
	log := logger.FromContext(ctx)

	runs, err := s.load(ctx, filter)
	if err != nil {
		return nil, err
	}

	top := TopCorrelations(runs)
	log.Debug("Computed top correlations", "runs", len(runs), "targets", len(top))
	return top, nil
}

// Cards computes the per-card view.
func (s *service) Cards(ctx context.Context, filter domain.RunFilter, rarity string) ([]domain.CardStats, error) {
	log := logger.FromContext(ctx)

	runs, err := s.load(ctx, filter)
	if err != nil {
		return nil, err
	}

	cards := CardStats(runs, rarity, filter.IgnoreModded)
	log.Debug("Computed card stats", "runs", len(runs), "cards", len(cards))
	return cards, nil
}

// Enemies computes the per-enemy view.
func (s *service) Enemies(ctx context.Context, filter domain.RunFilter) ([]domain.EnemyStats, error) {
	log := logger.FromContext(ctx)

	runs, err := s.load(ctx, filter)
	if err != nil {
		return nil, err
	}

	enemies := EnemyStats(runs)
	log.Debug("Computed enemy stats", "runs", len(runs), "enemies", len(enemies))
	return enemies, nil
}

// Relics computes the per-relic view.
func (s *service) Relics(ctx context.Context, filter domain.RunFilter) ([]domain.RelicStats, error) {
	log := logger.FromContext(ctx)

	runs, err := s.load(ctx, filter)
	if err != nil {
		return nil, err
	}

	relics := RelicStats(runs, filter.IgnoreModded)
	log.Debug("Computed relic stats", "runs", len(runs), "relics", len(relics))
	return relics, nil
}
