package postgres

import (
	"context"

	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	"stockroom/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// FindAll returns every product with its category and owner preloaded.
func (repo *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	var productMs []model.ProductModel
	err := repo.db.WithContext(ctx).
		Preload("Category").
		Preload("User").
		Order("id").
		Find(&productMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		products = append(products, toProductDomain(&productMs[i]))
	}

	return products, nil
}

// FindByName retrieves a product by exact name match.
func (repo *productRepository) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		First(&productM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by name")
	}

	return toProductDomain(&productM), nil
}

// FindOwnedByID retrieves a product only when it belongs to the given owner.
// The ownership check happens inside the query so a foreign product is
// indistinguishable from a missing one.
func (repo *productRepository) FindOwnedByID(ctx context.Context, id uint, ownerEmail string) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_email = ?", id, ownerEmail).
		First(&productM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find owned product")
	}

	return toProductDomain(&productM), nil
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return domainerrors.ErrNameConflict.WrapMessage("product name already exists")
		case isForeignKeyConstraintViolation(err):
			return domainerrors.ErrCategoryNotFound.WrapMessage("product references missing category")
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
		}
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt

	return nil
}

// Update persists changes to an existing product. Price and quantity are
// written explicitly because GORM's struct updates skip zero values.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	updates := map[string]any{
		"name":        product.Name,
		"price":       product.Price,
		"quantity":    product.Quantity,
		"category_id": product.CategoryID,
	}

	err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(updates).Error

	if err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return domainerrors.ErrNameConflict.WrapMessage("product name already exists")
		case isForeignKeyConstraintViolation(err):
			return domainerrors.ErrCategoryNotFound.WrapMessage("product references missing category")
		default:
			return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
		}
	}

	return nil
}

// Delete removes the product by id.
func (repo *productRepository) Delete(ctx context.Context, id uint) error {
	if err := repo.db.WithContext(ctx).Delete(&model.ProductModel{}, id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}

	return nil
}

// --- Mapper functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:         data.ID,
		Name:       data.Name,
		Price:      data.Price,
		Quantity:   data.Quantity,
		CategoryID: data.CategoryID,
		OwnerEmail: data.UserEmail,
		CreatedAt:  data.CreatedAt,
	}

	if data.Category != nil {
		product.Category = toCategoryDomain(data.Category)
	}
	if data.User != nil {
		product.Owner = toUserDomain(data.User)
	}

	return product
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:         data.ID,
		Name:       data.Name,
		Price:      data.Price,
		Quantity:   data.Quantity,
		CategoryID: data.CategoryID,
		UserEmail:  data.OwnerEmail,
	}
}
