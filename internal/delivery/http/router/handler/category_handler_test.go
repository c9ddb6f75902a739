package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategoryUsecase struct {
	createOut *entity.Category
	createErr error
	listOut   []*entity.Category
	listErr   error
	updateOut *entity.Category
	updateErr error
	deleteErr error

	gotUpdate *usecase.UpdateCategoryInput
	gotDelete uint
}

func (f *fakeCategoryUsecase) Create(_ context.Context, _ *usecase.CreateCategoryInput) (*entity.Category, error) {
	return f.createOut, f.createErr
}

func (f *fakeCategoryUsecase) List(_ context.Context) ([]*entity.Category, error) {
	return f.listOut, f.listErr
}

func (f *fakeCategoryUsecase) Update(_ context.Context, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	f.gotUpdate = input

	return f.updateOut, f.updateErr
}

func (f *fakeCategoryUsecase) Delete(_ context.Context, id uint) error {
	f.gotDelete = id

	return f.deleteErr
}

func newCategoryTestServer(uc usecase.CategoryUsecase) *testServer {
	e := newTestEcho()
	h := NewCategoryHandler(uc)
	g := e.Group("/api/v1/categories", asUser("alice@example.com"))
	g.GET("", h.List)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)

	return &testServer{e}
}

func TestCategoryHandlerCreate_Created(t *testing.T) {
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	uc := &fakeCategoryUsecase{
		createOut: &entity.Category{
			ID: 1, Name: "Electronics", Description: "Gadgets",
			IsActive: true, CreatedAt: created,
		},
	}
	srv := newCategoryTestServer(uc)

	rec := srv.do(http.MethodPost, "/api/v1/categories",
		`{"name":"Electronics","description":"Gadgets"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t,
		`{"id":1,"name":"Electronics","description":"Gadgets","isActive":true,"createdAt":"2026-08-01T12:00:00Z"}`,
		rec.Body.String())
}

func TestCategoryHandlerCreate_ValidationBody(t *testing.T) {
	uc := &fakeCategoryUsecase{
		createErr: domainerrors.NewValidationError([]string{
			"The name field is required.",
			"The description field is required.",
		}),
	}
	srv := newCategoryTestServer(uc)

	rec := srv.do(http.MethodPost, "/api/v1/categories", `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t,
		`{"errors":["The name field is required.","The description field is required."]}`,
		rec.Body.String())
}

func TestCategoryHandlerList_EmptyIsArray(t *testing.T) {
	srv := newCategoryTestServer(&fakeCategoryUsecase{})

	rec := srv.do(http.MethodGet, "/api/v1/categories", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCategoryHandlerUpdate_PassesIsActivePointer(t *testing.T) {
	uc := &fakeCategoryUsecase{
		updateOut: &entity.Category{ID: 3, Name: "Books", Description: "Paper", IsActive: false},
	}
	srv := newCategoryTestServer(uc)

	rec := srv.do(http.MethodPut, "/api/v1/categories/3",
		`{"name":"Books","description":"Paper","isActive":false}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotUpdate)
	assert.Equal(t, uint(3), uc.gotUpdate.ID)
	require.NotNil(t, uc.gotUpdate.IsActive)
	assert.False(t, *uc.gotUpdate.IsActive)
}

func TestCategoryHandlerUpdate_OmittedIsActiveStaysNil(t *testing.T) {
	uc := &fakeCategoryUsecase{
		updateOut: &entity.Category{ID: 3, Name: "Books", Description: "Paper", IsActive: true},
	}
	srv := newCategoryTestServer(uc)

	srv.do(http.MethodPut, "/api/v1/categories/3", `{"name":"Books","description":"Paper"}`)

	require.NotNil(t, uc.gotUpdate)
	assert.Nil(t, uc.gotUpdate.IsActive)
}

func TestCategoryHandlerDelete_MessageBody(t *testing.T) {
	uc := &fakeCategoryUsecase{}
	srv := newCategoryTestServer(uc)

	rec := srv.do(http.MethodDelete, "/api/v1/categories/3", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Category deleted successfully"}`, rec.Body.String())
	assert.Equal(t, uint(3), uc.gotDelete)
}

func TestCategoryHandlerDelete_HasProducts(t *testing.T) {
	uc := &fakeCategoryUsecase{
		deleteErr: domainerrors.ErrCategoryHasProducts.WrapMessage("delete rejected"),
	}
	srv := newCategoryTestServer(uc)

	rec := srv.do(http.MethodDelete, "/api/v1/categories/3", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"Cannot delete category with associated products"}`, rec.Body.String())
}

func TestCategoryHandlerDelete_BadIDIsNotFound(t *testing.T) {
	srv := newCategoryTestServer(&fakeCategoryUsecase{})

	rec := srv.do(http.MethodDelete, "/api/v1/categories/abc", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Category not found"}`, rec.Body.String())
}
