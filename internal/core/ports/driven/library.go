package driven

import (
	"context"

	"github.com/custodia-labs/marginalia-cli/internal/core/domain"
)

// LibraryStore reads imported books and highlights back out of the
// knowledge base for status, browsing and search surfaces.
type LibraryStore interface {
	// ListBooks returns all imported books without their highlights,
	// ordered by most recently updated first.
	ListBooks(ctx context.Context) ([]domain.Book, error)

	// GetBook returns one book with its highlights.
	// Returns domain.ErrNotFound if the book is not imported.
	GetBook(ctx context.Context, id int64) (*domain.Book, error)

	// SearchHighlights returns highlights whose text or note contains
	// the query, most recently highlighted first.
	SearchHighlights(ctx context.Context, query string, limit int) ([]domain.Highlight, error)
}
