package usecase

import (
	"context"

	"stockroom/internal/domain/entity"
)

// --- Input DTOs ---

// CreateCategoryInput defines the data required to create a category.
type CreateCategoryInput struct {
	Name        string
	Description string
}

// UpdateCategoryInput carries the full replacement state for a category.
// IsActive is a pointer so an omitted flag keeps the stored value.
type UpdateCategoryInput struct {
	ID          uint
	Name        string
	Description string
	IsActive    *bool
}

// CategoryUsecase defines the interface for category business operations.
type CategoryUsecase interface {
	Create(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Update(ctx context.Context, input *UpdateCategoryInput) (*entity.Category, error)
	Delete(ctx context.Context, id uint) error
}
