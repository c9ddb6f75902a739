package usecase

import (
	"context"

	"stockroom/internal/domain/entity"
)

// --- Input DTOs ---

// CreateProductInput defines the data required to create a product.
// Price and Quantity are pointers so a missing field can be told apart
// from an explicit zero during validation.
type CreateProductInput struct {
	Name       string
	Price      *float64
	Quantity   *int
	CategoryID uint
	OwnerEmail string
}

// UpdateProductInput carries the replacement state for an owned product.
type UpdateProductInput struct {
	ID         uint
	Name       string
	Price      *float64
	Quantity   *int
	CategoryID uint
	OwnerEmail string
}

// ProductUsecase defines the interface for product business operations.
// Mutations are scoped to the owner identified by the caller's token.
type ProductUsecase interface {
	List(ctx context.Context) ([]*entity.Product, error)
	Create(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	Update(ctx context.Context, input *UpdateProductInput) (*entity.Product, error)
	Delete(ctx context.Context, id uint, ownerEmail string) error
}
