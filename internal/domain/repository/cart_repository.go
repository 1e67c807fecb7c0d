package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartRepository persists the cart as a whole. The in-memory cart held by
// the application layer is only a cache; every mutation must be written back
// through Save before the next read.
type CartRepository interface {
	// Load reads the full cart. Absent or malformed stored data yields an
	// empty cart, never an error caused by the payload itself.
	Load(ctx context.Context) (entity.Cart, error)

	// Save writes the full cart, replacing the stored one.
	Save(ctx context.Context, cart entity.Cart) error
}
