package driven

import (
	"context"
	"time"

	"github.com/custodia-labs/marginalia-cli/internal/core/domain"
)

// ExportClient fetches changed records from the remote export API.
// Implementations handle pagination and rate limiting internally;
// no timeout is imposed by the core.
type ExportClient interface {
	// FetchExports retrieves books (with highlights) changed at or after
	// since. A nil since requests the full history.
	//
	// Auth rejections are reported by wrapping domain.ErrAuthInvalid;
	// every other failure (network, malformed response, rate limit)
	// is returned as-is for generic classification.
	FetchExports(ctx context.Context, apiKey string, since *time.Time) ([]domain.Book, error)
}
