package driven

import (
	"context"

	"github.com/custodia-labs/marginalia-cli/internal/core/domain"
)

// RecordImporter materialises fetched records into the knowledge base.
//
// Implementations must be idempotent for already-imported records:
// re-importing an overlapping window matches on the hidden unique
// external identifier and must not duplicate records. The core relies
// on this contract and does not re-validate it.
type RecordImporter interface {
	// ImportRecords upserts the given books and their highlights.
	ImportRecords(ctx context.Context, books []domain.Book) error
}

// SchemaRegistrar declares record kinds with the knowledge base.
// Called once at startup; not part of the recurring sync core.
type SchemaRegistrar interface {
	// RegisterKinds declares the given record kinds.
	// Registering an already-known kind updates its attribute set.
	RegisterKinds(ctx context.Context, kinds []domain.RecordKind) error
}
