package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/custodia-labs/marginalia-cli/internal/core/domain"
	"github.com/custodia-labs/marginalia-cli/internal/core/ports/driven"
)

// cycleHistoryStore implements driven.CycleHistoryStore.
type cycleHistoryStore struct {
	store *Store
}

var _ driven.CycleHistoryStore = (*cycleHistoryStore)(nil)

// RecordResult logs a completed cycle.
func (s *cycleHistoryStore) RecordResult(ctx context.Context, result *domain.CycleResult) error {
	if result == nil || result.ID == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO sync_cycles
			(id, trigger_kind, started_at, ended_at, outcome, error, books_fetched, highlights_fetched)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, result.ID, string(result.Trigger), result.StartedAt, result.EndedAt,
		string(result.Outcome), result.Error, result.BooksFetched, result.HighlightsFetched)
	if err != nil {
		return fmt.Errorf("recording cycle result: %w", err)
	}
	return nil
}

// ListResults returns recent cycle results, most recent first.
func (s *cycleHistoryStore) ListResults(ctx context.Context, limit int) ([]domain.CycleResult, error) {
	query := `
		SELECT id, trigger_kind, started_at, ended_at, outcome, error, books_fetched, highlights_fetched
		FROM sync_cycles
		ORDER BY started_at DESC, id
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying cycle history: %w", err)
	}
	defer rows.Close()

	var results []domain.CycleResult //nolint:prealloc // size unknown from query
	for rows.Next() {
		var result domain.CycleResult
		var trigger, outcome string
		var startedAt, endedAt sql.NullTime
		if err := rows.Scan(&result.ID, &trigger, &startedAt, &endedAt,
			&outcome, &result.Error, &result.BooksFetched, &result.HighlightsFetched); err != nil {
			return nil, fmt.Errorf("scanning cycle result: %w", err)
		}

		result.Trigger = domain.CycleTrigger(trigger)
		result.Outcome = domain.OutcomeKind(outcome)
		if startedAt.Valid {
			result.StartedAt = startedAt.Time
		}
		if endedAt.Valid {
			result.EndedAt = endedAt.Time
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cycle history: %w", err)
	}

	return results, nil
}

// PruneHistory keeps only the most recent 'keep' results.
func (s *cycleHistoryStore) PruneHistory(ctx context.Context, keep int) error {
	if keep < 0 {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		DELETE FROM sync_cycles WHERE id NOT IN (
			SELECT id FROM sync_cycles ORDER BY started_at DESC, id LIMIT ?
		)
	`, keep)
	if err != nil {
		return fmt.Errorf("pruning cycle history: %w", err)
	}
	return nil
}
