package service

import (
	"context"
	"time"
)

// CheckoutEvent is published after a purchase record has been durably
// appended to the ledger. Downstream consumers (fulfilment, analytics) react
// to it; the checkout flow itself never depends on delivery.
type CheckoutEvent struct {
	PurchaseID    string    `json:"purchase_id"`
	Email         string    `json:"email,omitempty"` // Empty for guest checkouts.
	ItemCount     int       `json:"item_count"`
	SubtotalCents int64     `json:"subtotal_cents"`
	At            time.Time `json:"at"` // Checkout timestamp, UTC.
	RequestID     string    `json:"request_id,omitempty"`
}

// EventPublisher defines the interface for publishing checkout events.
type EventPublisher interface {
	// PublishCheckoutEvent publishes an event for a completed checkout.
	PublishCheckoutEvent(ctx context.Context, event *CheckoutEvent) error

	// Close releases any provider resources.
	Close() error
}
