package handler

import (
	"net/http"
	"time"

	deliverycontext "stockroom/internal/delivery/context"
	"stockroom/internal/domain/entity"
	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for the product endpoints.
type ProductHandler struct {
	uc usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// productRequest uses pointers for price and quantity so validation can
// distinguish an omitted field from an explicit zero.
type productRequest struct {
	Name       string   `json:"name"`
	Price      *float64 `json:"price"`
	Quantity   *int     `json:"quantity"`
	CategoryID uint     `json:"categoryId"`
}

// productOwnerResponse is the public slice of the owning user. The password
// hash never crosses this boundary.
type productOwnerResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type productResponse struct {
	ID         uint                  `json:"id"`
	Name       string                `json:"name"`
	Price      float64               `json:"price"`
	Quantity   int                   `json:"quantity"`
	Available  bool                  `json:"available"`
	CategoryID uint                  `json:"categoryId"`
	Owner      string                `json:"owner"`
	Category   *categoryResponse     `json:"category,omitempty"`
	User       *productOwnerResponse `json:"user,omitempty"`
	CreatedAt  time.Time             `json:"createdAt"`
}

func toProductResponse(product *entity.Product) productResponse {
	resp := productResponse{
		ID:         product.ID,
		Name:       product.Name,
		Price:      product.Price,
		Quantity:   product.Quantity,
		Available:  product.Available(),
		CategoryID: product.CategoryID,
		Owner:      product.OwnerEmail,
		CreatedAt:  product.CreatedAt,
	}

	if product.Category != nil {
		category := toCategoryResponse(product.Category)
		resp.Category = &category
	}
	if product.Owner != nil {
		resp.User = &productOwnerResponse{
			Username: product.Owner.Username,
			Email:    product.Owner.Email,
		}
	}

	return resp
}

// callerEmail returns the authenticated email placed on the request context
// by the auth middleware.
func callerEmail(c echo.Context) (string, error) {
	email := deliverycontext.GetUserEmail(c.Request().Context())
	if email == "" {
		return "", domainerrors.ErrAccessDenied.WrapMessage("no authenticated user on request")
	}

	return email, nil
}

// List returns every product across all owners.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	result := make([]productResponse, 0, len(products))
	for _, product := range products {
		result = append(result, toProductResponse(product))
	}

	return c.JSON(http.StatusOK, result)
}

// Create handles product creation for the authenticated owner.
func (h *ProductHandler) Create(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	product, err := h.uc.Create(c.Request().Context(), &usecase.CreateProductInput{
		Name:       req.Name,
		Price:      req.Price,
		Quantity:   req.Quantity,
		CategoryID: req.CategoryID,
		OwnerEmail: email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, toProductResponse(product))
}

// Update replaces an owned product's fields.
func (h *ProductHandler) Update(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c)
	if err != nil {
		return domainerrors.ErrProductNotOwned.WrapMessage("bad product id")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	product, err := h.uc.Update(c.Request().Context(), &usecase.UpdateProductInput{
		ID:         id,
		Name:       req.Name,
		Price:      req.Price,
		Quantity:   req.Quantity,
		CategoryID: req.CategoryID,
		OwnerEmail: email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Delete removes an owned product. A successful delete has no body.
func (h *ProductHandler) Delete(c echo.Context) error {
	email, err := callerEmail(c)
	if err != nil {
		return err
	}

	id, err := parseIDParam(c)
	if err != nil {
		return domainerrors.ErrProductNotOwned.WrapMessage("bad product id")
	}

	if err := h.uc.Delete(c.Request().Context(), id, email); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
