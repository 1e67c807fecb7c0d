package entity

import (
	"time"

	"github.com/google/uuid"
)

// Purchaser is the identity snapshot taken from the session at checkout
// time. A nil Purchaser on a PurchaseRecord marks a guest purchase.
type Purchaser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// PurchaseItem is a cart line frozen into the ledger. Unlike CartItem it has
// no identity of its own; it exists only inside its PurchaseRecord.
type PurchaseItem struct {
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"priceCents"`
	Quantity       int    `json:"qty"`
}

// PurchaseRecord is one completed checkout in the append-only ledger.
// Records are never mutated or deleted after being written.
type PurchaseRecord struct {
	ID            uuid.UUID      `json:"id"`
	At            time.Time      `json:"at"` // Checkout time, persisted as ISO-8601 UTC.
	User          *Purchaser     `json:"user"`
	Items         []PurchaseItem `json:"items"`
	SubtotalCents int64          `json:"subtotalCents"`
}

// NewPurchaseRecord freezes the given cart and session identity into a
// ledger record stamped with the current UTC time.
func NewPurchaseRecord(cart Cart, session *Session) PurchaseRecord {
	items := make([]PurchaseItem, 0, len(cart))
	for _, line := range cart {
		items = append(items, PurchaseItem{
			Name:           line.Name,
			UnitPriceCents: line.UnitPriceCents,
			Quantity:       line.Quantity,
		})
	}

	var user *Purchaser
	if session != nil {
		user = &Purchaser{Email: session.Email, Name: session.Name}
	}

	return PurchaseRecord{
		ID:            uuid.New(),
		At:            time.Now().UTC(),
		User:          user,
		Items:         items,
		SubtotalCents: cart.SubtotalCents(),
	}
}
