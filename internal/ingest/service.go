package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/slaytrack/slaytrack/internal/domain"
	"github.com/slaytrack/slaytrack/internal/logger"
	"github.com/slaytrack/slaytrack/internal/metrics"
	"github.com/slaytrack/slaytrack/internal/repository"
	"github.com/slaytrack/slaytrack/internal/run"
)

// File is one run document ready for parsing. Name is only used for
// diagnostics.
type File struct {
	Name    string
	Content []byte
}

// Service defines the batch import operation.
type Service interface {
	// ImportBatch parses every file, drops unparseable ones, skips runs whose
	// identifier is already stored and inserts the rest. Per-record failures
	// never abort the batch; they are returned in the result counters.
	ImportBatch(ctx context.Context, files []File) (*domain.ImportResult, error)
}

type service struct {
	repo repository.Run
}

// NewService creates a new ingest service
func NewService(repo repository.Run) Service {
	return &service{repo: repo}
}

func (s *service) ImportBatch(ctx context.Context, files []File) (*domain.ImportResult, error) {
	log := logger.FromContext(ctx)

	result := &domain.ImportResult{TotalFiles: len(files)}

	parsed := make([]*domain.Run, 0, len(files))
	for _, f := range files {
		r, err := run.Parse(f.Content)
		if err != nil {
			log.Warn("Skipping unparseable run file", "file", f.Name, "error", err)
			metrics.RunParseFailures.Inc()
			continue
		}
		parsed = append(parsed, r)
	}
	result.ParsedRuns = len(parsed)

	if len(parsed) == 0 {
		return result, nil
	}

	ids := make([]string, len(parsed))
	for i, r := range parsed {
		ids[i] = r.RunIdentifier
	}

	existing, err := s.repo.ExistingIdentifiers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicates: %w", err)
	}

	for _, r := range parsed {
		if _, ok := existing[r.RunIdentifier]; ok {
			result.DuplicateRuns++
			continue
		}

		// The existence check above races with concurrent uploads of the same
		// run; the unique constraint on the identifier column is the last
		// line of defense and surfaces here as ErrDuplicateRun.
		if err := s.repo.Insert(ctx, r); err != nil {
			if errors.Is(err, domain.ErrDuplicateRun) {
				result.DuplicateRuns++
				continue
			}
			log.Error("Failed to insert run", "play_id", r.PlayID, "error", err)
			result.Errors = append(result.Errors, fmt.Sprintf("failed to upload run %s: %v", r.PlayID, err))
			continue
		}
		result.NewRuns++
	}

	metrics.RunsIngested.Add(float64(result.NewRuns))
	metrics.RunsDuplicate.Add(float64(result.DuplicateRuns))

	log.Info("Batch import finished",
		"total_files", result.TotalFiles,
		"parsed", result.ParsedRuns,
		"new", result.NewRuns,
		"duplicates", result.DuplicateRuns,
		"errors", len(result.Errors))

	return result, nil
}
