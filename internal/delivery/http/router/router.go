// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"atlas/internal/delivery/http/middleware"
	"atlas/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler   *handler.AccountHandler
	FavoritesHandler *handler.FavoritesHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler   *handler.AccountHandler
	favoritesHandler *handler.FavoritesHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:   params.AccountHandler,
		favoritesHandler: params.FavoritesHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.POST("/logout", r.accountHandler.Logout)
	}

	// Routes that require a valid bearer token
	apiGroup := e.Group("")
	apiGroup.Use(r.authMiddleware.Authenticate)
	{
		apiGroup.GET("/profile", r.accountHandler.Profile)

		apiGroup.GET("/favorites", r.favoritesHandler.List)
		apiGroup.POST("/favorites/add", r.favoritesHandler.Add)
		apiGroup.POST("/favorites/remove", r.favoritesHandler.Remove)
	}
}
