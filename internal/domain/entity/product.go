package entity

import "time"

// Product is a stocked item. Every product belongs to a category and is
// owned by the user who created it; only the owner may update or delete it.
type Product struct {
	ID         uint
	Name       string  // Unique across all products, 3-50 characters.
	Price      float64 // Greater than zero, two fractional digits in the store.
	Quantity   int     // Never negative.
	CategoryID uint
	OwnerEmail string
	CreatedAt  time.Time

	// Category and Owner are populated by joined reads, nil otherwise.
	Category *Category
	Owner    *User
}

// Available reports whether the product is in stock. It is derived from the
// quantity and never persisted.
func (p *Product) Available() bool {
	return p.Quantity > 0
}
