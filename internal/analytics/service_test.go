package analytics

import (
	"context"
	"errors"
	"testing"

	"github.com/slaytrack/slaytrack/internal/domain"
)

// stubRunRepo serves a fixed collection for service tests.
type stubRunRepo struct {
	runs []*domain.Run
	err  error
}

func (s *stubRunRepo) GetAll(ctx context.Context) ([]*domain.Run, error) {
	return s.runs, s.err
}

func (s *stubRunRepo) ExistingIdentifiers(ctx context.Context, ids []string) (map[string]struct{}, error) {
	return nil, nil
}

func (s *stubRunRepo) Insert(ctx context.Context, r *domain.Run) error { return nil }
func (s *stubRunRepo) Probe(ctx context.Context) error                 { return nil }

func TestService_SummaryNoMatches(t *testing.T) {
	svc := NewService(&stubRunRepo{})

	_, err := svc.Summary(context.Background(), domain.RunFilter{})
	if !errors.Is(err, domain.ErrNoRuns) {
		t.Errorf("Summary over empty store = %v, want ErrNoRuns", err)
	}
}

func TestService_SummaryFilterExcludesEverything(t *testing.T) {
	repo := &stubRunRepo{runs: []*domain.Run{
		mustParse(t, `{"play_id": "a", "character_chosen": "IRONCLAD"}`),
	}}
	svc := NewService(repo)

	_, err := svc.Summary(context.Background(), domain.RunFilter{Character: "WATCHER"})
	if !errors.Is(err, domain.ErrNoRuns) {
		t.Errorf("Summary with no matches = %v, want ErrNoRuns", err)
	}
}

func TestService_RunsSortedAndNormalized(t *testing.T) {
	repo := &stubRunRepo{runs: []*domain.Run{
		mustParse(t, `{"play_id": "late", "timestamp": 200, "character_chosen": "IRONCLAD"}`),
		mustParse(t, `{"play_id": "early", "timestamp": 100, "character_chosen": "WATCHER"}`),
	}}
	svc := NewService(repo)

	docs, err := svc.Runs(context.Background(), domain.RunFilter{})
	if err != nil {
		t.Fatalf("Runs failed: %v", err)
	}

	if len(docs) != 2 {
		t.Fatalf("Expected 2 documents, got %d", len(docs))
	}
	if docs[0]["play_id"] != "early" || docs[1]["play_id"] != "late" {
		t.Errorf("Documents should be sorted by timestamp ascending: %v, %v", docs[0]["play_id"], docs[1]["play_id"])
	}
	// Old clients read "character"; it is backfilled from character_chosen.
	if docs[0]["character"] != "WATCHER" {
		t.Errorf("Expected backfilled character WATCHER, got %v", docs[0]["character"])
	}
}

func TestService_RunsEmptyStoreIsNotAnError(t *testing.T) {
	svc := NewService(&stubRunRepo{})

	docs, err := svc.Runs(context.Background(), domain.RunFilter{})
	if err != nil {
		t.Fatalf("Runs over empty store should succeed: %v", err)
	}
	if len(docs) != 0 {
		t.Errorf("Expected empty result, got %d documents", len(docs))
	}
}

func TestService_RepositoryErrorPropagates(t *testing.T) {
	storeErr := errors.New("connection refused")
	svc := NewService(&stubRunRepo{err: storeErr})

	_, err := svc.Summary(context.Background(), domain.RunFilter{})
	if !errors.Is(err, storeErr) {
		t.Errorf("Summary should wrap the repository error, got %v", err)
	}

	_, err = svc.Runs(context.Background(), domain.RunFilter{})
	if !errors.Is(err, storeErr) {
		t.Errorf("Runs should wrap the repository error, got %v", err)
	}
}

func TestService_CardsAppliesModdedFilter(t *testing.T) {
	repo := &stubRunRepo{runs: []*domain.Run{
		mustParse(t, `{
			"play_id": "a",
			"character_chosen": "IRONCLAD",
			"card_choices": [
				{"picked": "snecko:Weird_Card", "not_picked": [], "floor": 2},
				{"picked": "Anger", "not_picked": [], "floor": 4}
			]
		}`),
	}}
	svc := NewService(repo)

	cards, err := svc.Cards(context.Background(), domain.RunFilter{IgnoreModded: true}, "")
	if err != nil {
		t.Fatalf("Cards failed: %v", err)
	}
	if len(cards) != 1 || cards[0].Card != "Anger" {
		t.Fatalf("Expected modded pick filtered, got %v", cards)
	}
}
