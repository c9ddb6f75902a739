package repository

import (
	"context"
	"errors"

	"stockroom/internal/domain/entity"
)

// ErrProductNotFound is returned when no product matches the lookup,
// including owned lookups where the product exists but belongs to someone
// else. Callers must not distinguish the two cases.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// FindAll returns every product with its category and owning user
	// preloaded (the global inventory view).
	FindAll(ctx context.Context) ([]*entity.Product, error)

	// FindByName retrieves a product by exact, case-sensitive name match.
	FindByName(ctx context.Context, name string) (*entity.Product, error)

	// FindOwnedByID retrieves the product matching BOTH id and owner email
	// in a single query. Ownership filtering must happen in the query, never
	// as a load-then-compare, so the check and any following mutation see
	// the same row.
	FindOwnedByID(ctx context.Context, id uint, ownerEmail string) (*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes the product by id.
	Delete(ctx context.Context, id uint) error
}
