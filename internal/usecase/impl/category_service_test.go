package impl

import (
	"context"
	"testing"

	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategoryServiceForTest(categoryRepo *fakeCategoryRepo) usecase.CategoryUsecase {
	return NewCategoryService(CategoryServiceParams{
		TxManager:    &fakeTxManager{factory: &fakeRepoFactory{categoryRepo: categoryRepo}},
		CategoryRepo: categoryRepo,
		Logger:       testLogger(),
	})
}

func TestCategoryCreate_Success(t *testing.T) {
	categoryRepo := newFakeCategoryRepo()
	svc := newCategoryServiceForTest(categoryRepo)

	category, err := svc.Create(context.Background(), &usecase.CreateCategoryInput{
		Name:        "Electronics",
		Description: "Gadgets and devices",
	})

	require.NoError(t, err)
	assert.NotZero(t, category.ID)
	assert.True(t, category.IsActive, "new categories start active")
}

func TestCategoryCreate_DuplicateName(t *testing.T) {
	categoryRepo := newFakeCategoryRepo()
	categoryRepo.seed(&entity.Category{Name: "Electronics", Description: "Gadgets", IsActive: true})
	svc := newCategoryServiceForTest(categoryRepo)

	_, err := svc.Create(context.Background(), &usecase.CreateCategoryInput{
		Name:        "Electronics",
		Description: "Another take",
	})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"A category with this name already exists."}, validationErr.Messages)
}

func TestCategoryCreate_CollectsAllViolations(t *testing.T) {
	svc := newCategoryServiceForTest(newFakeCategoryRepo())

	_, err := svc.Create(context.Background(), &usecase.CreateCategoryInput{
		Name:        "ab",
		Description: "",
	})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{
		"The name must be between 3 and 50 characters long.",
		"The description field is required.",
	}, validationErr.Messages)
}

func TestCategoryList_IncludesInactive(t *testing.T) {
	categoryRepo := newFakeCategoryRepo()
	categoryRepo.seed(&entity.Category{Name: "Active", Description: "x", IsActive: true})
	categoryRepo.seed(&entity.Category{Name: "Dormant", Description: "y", IsActive: false})
	svc := newCategoryServiceForTest(categoryRepo)

	categories, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Active", categories[0].Name)
	assert.Equal(t, "Dormant", categories[1].Name)
}

func TestCategoryUpdate_KeepingOwnNameIsNotAConflict(t *testing.T) {
	categoryRepo := newFakeCategoryRepo()
	seeded := categoryRepo.seed(&entity.Category{Name: "Electronics", Description: "Gadgets", IsActive: true})
	svc := newCategoryServiceForTest(categoryRepo)

	inactive := false
	updated, err := svc.Update(context.Background(), &usecase.UpdateCategoryInput{
		ID:          seeded.ID,
		Name:        "Electronics",
		Description: "Updated description",
		IsActive:    &inactive,
	})

	require.NoError(t, err)
	assert.Equal(t, "Updated description", updated.Description)
	assert.False(t, updated.IsActive)
}

func TestCategoryUpdate_OmittedIsActiveKeepsStoredValue(t *testing.T) {
	categoryRepo := newFakeCategoryRepo()
	seeded := categoryRepo.seed(&entity.Category{Name: "Electronics", Description: "Gadgets", IsActive: false})
	svc := newCategoryServiceForTest(categoryRepo)

	updated, err := svc.Update(context.Background(), &usecase.UpdateCategoryInput{
		ID:          seeded.ID,
		Name:        "Electronics",
		Description: "Gadgets",
	})

	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}

func TestCategoryUpdate_TakenNameRejected(t *testing.T) {
	categoryRepo := newFakeCategoryRepo()
	categoryRepo.seed(&entity.Category{Name: "Electronics", Description: "Gadgets", IsActive: true})
	target := categoryRepo.seed(&entity.Category{Name: "Books", Description: "Paper", IsActive: true})
	svc := newCategoryServiceForTest(categoryRepo)

	_, err := svc.Update(context.Background(), &usecase.UpdateCategoryInput{
		ID:          target.ID,
		Name:        "Electronics",
		Description: "Paper",
	})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"A category with this name already exists."}, validationErr.Messages)
}

func TestCategoryUpdate_NotFound(t *testing.T) {
	svc := newCategoryServiceForTest(newFakeCategoryRepo())

	_, err := svc.Update(context.Background(), &usecase.UpdateCategoryInput{
		ID:          42,
		Name:        "Electronics",
		Description: "Gadgets",
	})

	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCategoryUpdate_ValidationAnswersBeforeExistence(t *testing.T) {
	svc := newCategoryServiceForTest(newFakeCategoryRepo())

	// Bad fields against a missing id: the full validation list wins over
	// the not-found answer.
	_, err := svc.Update(context.Background(), &usecase.UpdateCategoryInput{
		ID:          42,
		Name:        "ab",
		Description: "",
	})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{
		"The name must be between 3 and 50 characters long.",
		"The description field is required.",
	}, validationErr.Messages)
}

func TestCategoryDelete_Success(t *testing.T) {
	categoryRepo := newFakeCategoryRepo()
	seeded := categoryRepo.seed(&entity.Category{Name: "Empty", Description: "Nothing here", IsActive: true})
	svc := newCategoryServiceForTest(categoryRepo)

	require.NoError(t, svc.Delete(context.Background(), seeded.ID))

	_, err := categoryRepo.FindByID(context.Background(), seeded.ID)
	assert.Error(t, err)
}

func TestCategoryDelete_BlockedWhenProductsReference(t *testing.T) {
	categoryRepo := newFakeCategoryRepo()
	seeded := categoryRepo.seed(&entity.Category{Name: "Busy", Description: "Has stock", IsActive: true})
	categoryRepo.products[seeded.ID] = 3
	svc := newCategoryServiceForTest(categoryRepo)

	err := svc.Delete(context.Background(), seeded.ID)

	assert.ErrorIs(t, err, domainerrors.ErrCategoryHasProducts)

	_, findErr := categoryRepo.FindByID(context.Background(), seeded.ID)
	assert.NoError(t, findErr, "category must survive a blocked delete")
}

func TestCategoryDelete_NotFound(t *testing.T) {
	svc := newCategoryServiceForTest(newFakeCategoryRepo())

	err := svc.Delete(context.Background(), 42)

	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}
