package driven

import (
	"context"

	"github.com/custodia-labs/marginalia-cli/internal/core/domain"
)

// CycleHistoryStore persists sync cycle results for status reporting.
type CycleHistoryStore interface {
	// RecordResult logs a completed cycle.
	RecordResult(ctx context.Context, result *domain.CycleResult) error

	// ListResults returns recent cycle results, most recent first.
	ListResults(ctx context.Context, limit int) ([]domain.CycleResult, error)

	// PruneHistory removes old results beyond the retention limit,
	// keeping the most recent 'keep' results.
	PruneHistory(ctx context.Context, keep int) error
}
