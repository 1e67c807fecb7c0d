package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrProductNotFound is returned when no catalog entry matches a lookup.
var ErrProductNotFound = errors.New("product not found")

// CatalogRepository serves the product listing. The catalog is the source of
// truth for names and prices; the storefront never derives a price from
// rendered display text.
type CatalogRepository interface {
	// List returns the catalog in display order.
	List(ctx context.Context) ([]entity.Product, error)

	// FindByID retrieves a single product, or ErrProductNotFound.
	FindByID(ctx context.Context, id string) (*entity.Product, error)
}
