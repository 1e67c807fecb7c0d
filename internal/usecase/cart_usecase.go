// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// AddItemInput defines the data required to add a line to the cart.
// Either ProductID (resolved against the catalog) or Name plus Price
// (free-form, the price text is parsed to cents) must be provided.
type AddItemInput struct {
	ProductID string
	Name      string
	Price     string
}

// ChangeQuantityInput adjusts a cart line's quantity by a signed delta.
type ChangeQuantityInput struct {
	LineID string
	Delta  int
}

// --- Output DTOs ---

// CartLineView is the per-line projection rendered to clients.
type CartLineView struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"priceCents"`
	UnitPrice      string `json:"price"`
	Quantity       int    `json:"qty"`
	LineTotal      string `json:"lineTotal"`
}

// CartView is the full cart projection, re-read from the store after
// every mutation.
type CartView struct {
	Items           []CartLineView `json:"items"`
	TotalCount      int            `json:"totalCount"`
	SubtotalCents   int64          `json:"subtotalCents"`
	Subtotal        string         `json:"subtotal"`
	CheckoutEnabled bool           `json:"checkoutEnabled"`
}

// CartUsecase defines the interface for cart operations.
// Every mutation persists before the returned view is re-read.
type CartUsecase interface {
	AddItem(ctx context.Context, input AddItemInput) (*CartView, error)
	RemoveItem(ctx context.Context, lineID string) (*CartView, error)
	ChangeQuantity(ctx context.Context, input ChangeQuantityInput) (*CartView, error)
	View(ctx context.Context) (*CartView, error)
}

// NewCartView projects a cart entity into its client view.
func NewCartView(cart entity.Cart) *CartView {
	items := make([]CartLineView, 0, len(cart))
	for _, item := range cart {
		items = append(items, CartLineView{
			ID:             item.ID,
			Name:           item.Name,
			UnitPriceCents: item.UnitPriceCents,
			UnitPrice:      entity.FormatCents(item.UnitPriceCents),
			Quantity:       item.Quantity,
			LineTotal:      entity.FormatCents(item.UnitPriceCents * int64(item.Quantity)),
		})
	}

	subtotal := cart.SubtotalCents()

	return &CartView{
		Items:           items,
		TotalCount:      cart.TotalCount(),
		SubtotalCents:   subtotal,
		Subtotal:        entity.FormatCents(subtotal),
		CheckoutEnabled: subtotal > 0,
	}
}
