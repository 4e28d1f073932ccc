package postgres

import (
	"context"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/slaytrack/slaytrack/internal/database"
	"github.com/slaytrack/slaytrack/internal/domain"
	"github.com/slaytrack/slaytrack/internal/logger"
	"github.com/slaytrack/slaytrack/internal/run"
)

// RunRepository implements the run repository for PostgreSQL
type RunRepository struct {
	db *pgxpool.Pool

	// parsed caches decoded runs by identifier. A canonical run is built
	// once and never mutated, so serving the cached pointer is safe.
	parsed *lru.Cache[string, *domain.Run]
}

// NewRunRepository creates a new RunRepository
func NewRunRepository(db *pgxpool.Pool) *RunRepository {
	cache, _ := lru.New[string, *domain.Run](parseCacheSize)
	return &RunRepository{db: db, parsed: cache}
}

// GetAll loads every stored run, oldest rows first. Raw documents are parsed
// on the way out so reads always reflect the current parsing rules, with an
// LRU cache keyed by identifier to skip re-parsing unchanged rows. Rows that
// no longer parse are logged and skipped rather than failing the whole read.
func (r *RunRepository) GetAll(ctx context.Context) ([]*domain.Run, error) {
	query := `
		SELECT run_identifier, raw_data
		FROM runs
		ORDER BY created_at
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRuns, err)
	}
	defer rows.Close()

	log := logger.FromContext(ctx)

	var runs []*domain.Run
	for rows.Next() {
		var (
			id      string
			rawData []byte
		)
		if err := rows.Scan(&id, &rawData); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRun, err)
		}

		if cached, ok := r.parsed.Get(id); ok {
			runs = append(runs, cached)
			continue
		}

		parsed, err := run.Parse(rawData)
		if err != nil {
			log.Warn("Skipping stored run that no longer parses", "run_identifier", id, "error", err)
			continue
		}
		r.parsed.Add(id, parsed)
		runs = append(runs, parsed)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRuns, err)
	}

	return runs, nil
}

// ExistingIdentifiers returns the subset of ids that are already stored.
func (r *RunRepository) ExistingIdentifiers(ctx context.Context, ids []string) (map[string]struct{}, error) {
	existing := make(map[string]struct{}, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}

	query := `
		SELECT run_identifier
		FROM runs
		WHERE run_identifier = ANY($1)
	`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryIdentifiers, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanIdentifier, err)
		}
		existing[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryIdentifiers, err)
	}

	return existing, nil
}

// Insert stores a single run. A unique violation on the identifier column is
// reported as domain.ErrDuplicateRun so callers can count it rather than
// fail the batch.
func (r *RunRepository) Insert(ctx context.Context, rn *domain.Run) error {
	query := `
		INSERT INTO runs (run_identifier, play_id, user_id, character_name, run_timestamp, raw_data)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query,
		rn.RunIdentifier,
		rn.PlayID,
		rn.UserID,
		rn.Character,
		rn.Timestamp,
		rn.RawData,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
			return domain.ErrDuplicateRun
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertRun, err)
	}

	r.parsed.Add(rn.RunIdentifier, rn)
	return nil
}

// Probe issues a trivial query to check whether storage is reachable.
// Failures come back as domain.ErrStorageAsleep when the backend looks
// dormant and domain.ErrStorageUnavailable otherwise.
func (r *RunRepository) Probe(ctx context.Context) error {
	var one int
	if err := r.db.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		return classifyProbeError(err)
	}
	return nil
}

// classifyProbeError wraps a failed probe in the matching storage sentinel.
// Hosted Postgres providers pause idle databases and answer with an error
// text that database.IsDormantError recognizes.
func classifyProbeError(err error) error {
	if database.IsDormantError(err) {
		return fmt.Errorf("%w: %v", domain.ErrStorageAsleep, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
}
