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

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for categoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// nameTakenBy reports whether another category already uses the name.
// excludeID skips the category being updated so an unchanged name passes.
func (srv *categoryService) nameTakenBy(ctx context.Context, name string, excludeID uint) (bool, error) {
	existing, err := srv.categoryRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "failed to check category name")
	}

	return existing.ID != excludeID, nil
}

// Create validates and persists a new category. New categories always start
// active regardless of caller input.
func (srv *categoryService) Create(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	nameTaken, err := srv.nameTakenBy(ctx, input.Name, 0)
	if err != nil {
		return nil, err
	}

	if messages := validation.CategoryFields(input.Name, input.Description, nameTaken); len(messages) > 0 {
		return nil, domainerrors.NewValidationError(messages)
	}

	category := &entity.Category{
		Name:        input.Name,
		Description: input.Description,
		IsActive:    true,
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		srv.log(ctx).Warn("Failed to create category", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create category")
	}

	srv.log(ctx).Info("Category created", slog.Any("categoryID", category.ID))

	return category, nil
}

// List returns every category, active or not.
func (srv *categoryService) List(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

// Update replaces the category's name and description and, when provided,
// its active flag.
func (srv *categoryService) Update(ctx context.Context, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	nameTaken, err := srv.nameTakenBy(ctx, input.Name, input.ID)
	if err != nil {
		return nil, err
	}

	// Field validation answers before the existence check, so a bad payload
	// against a missing id is still a 400 with the full error list.
	if messages := validation.CategoryFields(input.Name, input.Description, nameTaken); len(messages) > 0 {
		return nil, domainerrors.NewValidationError(messages)
	}

	category, err := srv.categoryRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound.WrapMessage("update rejected")
		}

		return nil, errors.Wrap(err, "failed to load category for update")
	}

	category.Name = input.Name
	category.Description = input.Description
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		srv.log(ctx).Warn("Failed to update category", slog.Any("categoryID", input.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update category")
	}

	srv.log(ctx).Info("Category updated", slog.Any("categoryID", category.ID))

	return category, nil
}

// Delete removes an empty category. The product-count guard and the delete
// run in one transaction so a concurrent product insert cannot slip between
// the check and the removal.
func (srv *categoryService) Delete(ctx context.Context, id uint) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		if _, err := categoryRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound.WrapMessage("delete rejected")
			}

			return errors.Wrap(err, "failed to load category for delete")
		}

		count, err := categoryRepo.CountProducts(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to count category products")
		}
		if count > 0 {
			return domainerrors.ErrCategoryHasProducts.WrapMessage("delete rejected")
		}

		return categoryRepo.Delete(ctx, id)
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to delete category", slog.Any("categoryID", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute category delete transaction")
	}

	srv.log(ctx).Info("Category deleted", slog.Any("categoryID", id))

	return nil
}
