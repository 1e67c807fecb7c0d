package entity

// Product is one catalog entry. The catalog is the source of truth for
// product names and prices; cart lines and display text are derived from it,
// never the reverse.
type Product struct {
	ID           string `json:"id"`           // Stable slug from the catalog source.
	Name         string `json:"name"`         // Display name, also the cart line name.
	PriceCents   int64  `json:"priceCents"`   // Unit price in integer cents.
	DisplayPrice string `json:"displayPrice"` // Price text as shown on product cards, e.g. "$24.99".
}

// NewProduct builds a catalog entry from its source name and display price
// text, deriving the cent value from the text when no explicit value is
// given.
func NewProduct(id, name, displayPrice string) Product {
	return Product{
		ID:           id,
		Name:         name,
		PriceCents:   ParsePriceCents(displayPrice),
		DisplayPrice: displayPrice,
	}
}
