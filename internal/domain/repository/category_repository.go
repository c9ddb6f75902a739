package repository

import (
	"context"
	"errors"

	"stockroom/internal/domain/entity"
)

// ErrCategoryNotFound is returned when no category matches the lookup.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the standard operations for category persistence.
type CategoryRepository interface {
	// FindByID retrieves a single category by its id.
	FindByID(ctx context.Context, id uint) (*entity.Category, error)

	// FindByName retrieves a category by exact, case-sensitive name match.
	FindByName(ctx context.Context, name string) (*entity.Category, error)

	// FindAll returns every category, unfiltered.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// Update persists changes to an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes the category by id.
	Delete(ctx context.Context, id uint) error

	// CountProducts reports how many products reference the category.
	CountProducts(ctx context.Context, id uint) (int64, error)
}
