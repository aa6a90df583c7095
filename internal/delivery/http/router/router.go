// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"greenmarket/internal/delivery/http/middleware"
	"greenmarket/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	MerchantHandler     *handler.MerchantHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	merchantHandler     *handler.MerchantHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		merchantHandler:     params.MerchantHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Registration
	e.POST("/users", r.userHandler.Register)

	// Merchant directory
	merchantGroup := e.Group("/merchants")
	{
		// The literal route must be registered alongside the :id routes;
		// echo matches /merchants/search before the parameterized lookup.
		merchantGroup.GET("/search", r.merchantHandler.Search)
		merchantGroup.POST("", r.merchantHandler.Create)
		merchantGroup.GET("/:id", r.merchantHandler.Get)
		merchantGroup.PUT("/:id", r.merchantHandler.Update)
		merchantGroup.DELETE("/:id", r.merchantHandler.Delete)
	}
}
