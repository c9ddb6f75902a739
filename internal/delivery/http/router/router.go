// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"stockroom/internal/delivery/http/middleware"
	"stockroom/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CategoryHandler *handler.CategoryHandler
	ProductHandler  *handler.ProductHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	categoryHandler *handler.CategoryHandler
	productHandler  *handler.ProductHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		categoryHandler: params.CategoryHandler,
		productHandler:  params.ProductHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")

	// Auth routes are public; refresh authenticates via the refresh token
	// in the body, not the access token.
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh-token", r.authHandler.Refresh)
	}

	// Inventory routes all require a valid access token.
	categoryGroup := api.Group("/categories")
	categoryGroup.Use(r.authMiddleware.Authenticate)
	{
		categoryGroup.GET("", r.categoryHandler.List)
		categoryGroup.POST("", r.categoryHandler.Create)
		categoryGroup.PUT("/:id", r.categoryHandler.Update)
		categoryGroup.DELETE("/:id", r.categoryHandler.Delete)
	}

	productGroup := api.Group("/products")
	productGroup.Use(r.authMiddleware.Authenticate)
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.POST("", r.productHandler.Create)
		productGroup.PUT("/:id", r.productHandler.Update)
		productGroup.DELETE("/:id", r.productHandler.Delete)
	}
}
