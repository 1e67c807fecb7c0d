package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CheckoutOutput returns the recorded purchase and the post-checkout cart.
type CheckoutOutput struct {
	Record *entity.PurchaseRecord `json:"record"`
	Cart   *CartView              `json:"cart"`
}

// CheckoutUsecase records the current cart as a purchase for the
// signed-in user. The cart is left intact afterwards.
type CheckoutUsecase interface {
	Checkout(ctx context.Context) (*CheckoutOutput, error)
}
