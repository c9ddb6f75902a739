package impl

import (
	"context"
	"log/slog"

	deliverycontext "stockroom/internal/delivery/context"
	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/domain/repository"
	"stockroom/internal/domain/validation"
	"stockroom/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager    repository.TransactionManager
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
	logger       *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	UserRepo     repository.UserRepository
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:    params.TxManager,
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		userRepo:     params.UserRepo,
		logger:       params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// nameTakenBy reports whether another product already uses the name.
// Product names are unique across all owners, not per owner.
func (srv *productService) nameTakenBy(ctx context.Context, name string, excludeID uint) (bool, error) {
	existing, err := srv.productRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to check product name")
	}

	return existing.ID != excludeID, nil
}

// categoryExists confirms the referenced category is present before a write
// so the caller gets a 404 instead of a surfaced constraint failure.
func (srv *productService) categoryExists(ctx context.Context, id uint) error {
	if _, err := srv.categoryRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("product write rejected")
		}

		return errors.Wrap(err, "failed to check product category")
	}

	return nil
}

// ownerExists confirms the caller's user row still exists. The token outlives
// the account when a user is removed, so the email in a valid token is not
// proof of a live owner.
func (srv *productService) ownerExists(ctx context.Context, email string) error {
	if _, err := srv.userRepo.FindByEmail(ctx, email); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("product write rejected")
		}

		return errors.Wrap(err, "failed to check product owner")
	}

	return nil
}

// List returns every product in the system with category and owner attached.
// The listing is deliberately global; only mutations are owner-scoped.
func (srv *productService) List(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// Create validates and persists a new product owned by the caller.
func (srv *productService) Create(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	nameTaken, err := srv.nameTakenBy(ctx, input.Name, 0)
	if err != nil {
		return nil, err
	}

	if messages := validation.ProductFields(input.Name, input.CategoryID, input.Price, input.Quantity, nameTaken); len(messages) > 0 {
		return nil, domainerrors.NewValidationError(messages)
	}

	if err := srv.ownerExists(ctx, input.OwnerEmail); err != nil {
		return nil, err
	}

	if err := srv.categoryExists(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:       input.Name,
		Price:      *input.Price,
		Quantity:   *input.Quantity,
		CategoryID: input.CategoryID,
		OwnerEmail: input.OwnerEmail,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.log(ctx).Warn("Failed to create product", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.String("owner", input.OwnerEmail))

	return product, nil
}

// Update replaces an owned product's fields. A product that does not exist
// and a product owned by someone else produce the same error.
func (srv *productService) Update(ctx context.Context, input *usecase.UpdateProductInput) (*entity.Product, error) {
	nameTaken, err := srv.nameTakenBy(ctx, input.Name, input.ID)
	if err != nil {
		return nil, err
	}

	// Field validation answers before the ownership lookup, so a bad payload
	// against a missing or foreign product is still a 400 with the full
	// error list.
	if messages := validation.ProductFields(input.Name, input.CategoryID, input.Price, input.Quantity, nameTaken); len(messages) > 0 {
		return nil, domainerrors.NewValidationError(messages)
	}

	if err := srv.categoryExists(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindOwnedByID(ctx, input.ID, input.OwnerEmail)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotOwned.WrapMessage("update rejected")
		}

		return nil, errors.Wrap(err, "failed to load product for update")
	}

	product.Name = input.Name
	product.Price = *input.Price
	product.Quantity = *input.Quantity
	product.CategoryID = input.CategoryID

	if err := srv.productRepo.Update(ctx, product); err != nil {
		srv.log(ctx).Warn("Failed to update product", slog.Any("productID", input.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.log(ctx).Info("Product updated", slog.Any("productID", product.ID))

	return product, nil
}

// Delete removes an owned product. The ownership check and the delete run in
// one transaction.
func (srv *productService) Delete(ctx context.Context, id uint, ownerEmail string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		if _, err := productRepo.FindOwnedByID(ctx, id, ownerEmail); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotOwned.WrapMessage("delete rejected")
			}

			return errors.Wrap(err, "failed to load product for delete")
		}

		return productRepo.Delete(ctx, id)
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to delete product", slog.Any("productID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute product delete transaction")
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", id), slog.String("owner", ownerEmail))

	return nil
}
