// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	httpmiddleware "harvest/internal/delivery/http/middleware"
	"harvest/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	FarmerHandler  *handler.FarmerHandler
	ProductHandler *handler.ProductHandler
	AuthMiddleware *httpmiddleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	farmerHandler  *handler.FarmerHandler
	productHandler *handler.ProductHandler
	authMiddleware *httpmiddleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		farmerHandler:  params.FarmerHandler,
		productHandler: params.ProductHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// The paths mirror the public API contract.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account routes
	e.POST("/register", r.farmerHandler.Register)
	e.POST("/login", r.farmerHandler.Login)
	e.PUT("/update", r.farmerHandler.ChangePassword)
	e.GET("/farmers", r.farmerHandler.ListFarmers)

	// Listing routes
	e.POST("/products", r.productHandler.CreateProduct)
	e.PUT("/products/update", r.productHandler.UpdateProduct)
	e.GET("/products", r.productHandler.ListProducts)

	// Routes that require a valid session token
	meGroup := e.Group("/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("", r.farmerHandler.Me)
	}
}
