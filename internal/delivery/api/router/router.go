// Package router wires handlers and the access gate onto the echo instance.
package router

import (
	"blog/internal/delivery/api/middleware"
	"blog/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	BlogHandler    *handler.BlogHandler
	PhotoHandler   *handler.PhotoHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	blogHandler    *handler.BlogHandler
	photoHandler   *handler.PhotoHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		blogHandler:    params.BlogHandler,
		photoHandler:   params.PhotoHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Public routes
	e.POST("/login", r.authHandler.Login)
	e.POST("/user", r.userHandler.Register)
	e.GET("/user/:id", r.userHandler.Show)

	// The caller's own account. Static segments win over /user/:id.
	accountGroup := e.Group("/user", r.authMiddleware.Authenticate)
	{
		accountGroup.GET("/me", r.userHandler.Me)
		accountGroup.POST("/upload", r.photoHandler.Upload)
	}

	blogGroup := e.Group("/blog", r.authMiddleware.Authenticate)
	{
		blogGroup.GET("", r.blogHandler.List)
		blogGroup.POST("", r.blogHandler.Create)
		blogGroup.GET("/:id", r.blogHandler.Show)
		blogGroup.PUT("/:id", r.blogHandler.Update)
		blogGroup.DELETE("/:id", r.blogHandler.Delete)
		blogGroup.GET("/:id/qr", r.blogHandler.ShareQR)
	}
}
