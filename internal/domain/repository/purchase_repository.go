package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// PurchaseRepository persists the append-only checkout ledger. Records are
// never mutated or deleted once written.
type PurchaseRepository interface {
	// List reads the full ledger in append order. Absent or malformed
	// stored data yields an empty ledger.
	List(ctx context.Context) ([]entity.PurchaseRecord, error)

	// Append adds a completed checkout to the ledger.
	Append(ctx context.Context, record entity.PurchaseRecord) error
}
