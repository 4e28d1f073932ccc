package repository

import (
	"context"

	"github.com/slaytrack/slaytrack/internal/domain"
)

// Run defines the interface for run persistence. Every call crosses the
// network to the row store and can fail; callers must not assume
// transactional batching across calls.
type Run interface {
	// GetAll returns every stored run, decoded from its raw form.
	GetAll(ctx context.Context) ([]*domain.Run, error)
	// ExistingIdentifiers reports which of the given run identifiers are
	// already stored.
	ExistingIdentifiers(ctx context.Context, ids []string) (map[string]struct{}, error)
	// Insert stores one canonical run. Returns domain.ErrDuplicateRun when
	// the identifier is already present.
	Insert(ctx context.Context, r *domain.Run) error
	// Probe issues a minimal query to verify the backend is reachable and
	// awake. Returns domain.ErrStorageAsleep for dormant backends and
	// domain.ErrStorageUnavailable for any other failure.
	Probe(ctx context.Context) error
}
