package usecase

import "context"

// ProductView is the client projection of a catalog product.
type ProductView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"priceCents"`
	Price      string `json:"price"`
}

// CatalogUsecase exposes the product listing.
type CatalogUsecase interface {
	Products(ctx context.Context) ([]ProductView, error)
}
