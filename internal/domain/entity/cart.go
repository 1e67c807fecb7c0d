package entity

import "fmt"

// CartItem is one distinct line in the cart: a (name, unit price) pairing
// with an aggregated quantity. The line ID is derived deterministically from
// name and unit price, so adding the same product at the same price merges
// into an existing line while the same name at a different price opens a new
// one.
type CartItem struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"priceCents"`
	Quantity       int    `json:"qty"`
}

// LineID derives the deterministic cart line identifier for a product name
// and unit price.
func LineID(name string, unitPriceCents int64) string {
	return fmt.Sprintf("%s__%d", name, unitPriceCents)
}

// LineTotalCents returns the line's contribution to the cart subtotal.
func (i CartItem) LineTotalCents() int64 {
	return i.UnitPriceCents * int64(i.Quantity)
}

// Cart is the ordered list of line items. The zero value is an empty cart.
// Mutating helpers uphold the invariant that no line ever keeps a quantity
// at or below zero: a decrement that reaches zero removes the line.
type Cart []CartItem

// Add merges a product into the cart: an existing line with the same derived
// ID gains quantity, otherwise a new line is appended at quantity 1. It
// returns the ID of the affected line.
func (c Cart) Add(name string, unitPriceCents int64) (Cart, string) {
	id := LineID(name, unitPriceCents)
	for idx := range c {
		if c[idx].ID == id {
			c[idx].Quantity++

			return c, id
		}
	}

	return append(c, CartItem{
		ID:             id,
		Name:           name,
		UnitPriceCents: unitPriceCents,
		Quantity:       1,
	}), id
}

// Remove deletes the line with the given ID. Removing an unknown ID is a
// no-op.
func (c Cart) Remove(id string) Cart {
	kept := c[:0]
	for _, item := range c {
		if item.ID != id {
			kept = append(kept, item)
		}
	}

	return kept
}

// ChangeQuantity applies a signed delta to the line with the given ID. A
// resulting quantity at or below zero removes the line entirely. There is no
// upper bound on quantity. Unknown IDs are a no-op.
func (c Cart) ChangeQuantity(id string, delta int) Cart {
	for idx := range c {
		if c[idx].ID != id {
			continue
		}

		c[idx].Quantity += delta
		if c[idx].Quantity <= 0 {
			return c.Remove(id)
		}

		return c
	}

	return c
}

// Find returns the line with the given ID, or nil.
func (c Cart) Find(id string) *CartItem {
	for idx := range c {
		if c[idx].ID == id {
			return &c[idx]
		}
	}

	return nil
}

// SubtotalCents sums unit price times quantity over all lines.
func (c Cart) SubtotalCents() int64 {
	var sum int64
	for _, item := range c {
		sum += item.LineTotalCents()
	}

	return sum
}

// TotalCount sums the quantities over all lines.
func (c Cart) TotalCount() int {
	var count int
	for _, item := range c {
		count += item.Quantity
	}

	return count
}
