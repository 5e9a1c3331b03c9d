// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"crosslink/internal/delivery/http/middleware"
	"crosslink/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler *handler.SessionHandler
	LinkHandler    *handler.LinkHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler *handler.SessionHandler
	linkHandler    *handler.LinkHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler: params.SessionHandler,
		linkHandler:    params.LinkHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Opening a session is the only unauthenticated operation
	e.POST("/session", r.sessionHandler.Connect)

	sessionGroup := e.Group("/session")
	sessionGroup.Use(r.authMiddleware.Authenticate)
	{
		sessionGroup.DELETE("", r.sessionHandler.Disconnect)
		sessionGroup.GET("/messages", r.sessionHandler.Messages)
	}

	linkGroup := e.Group("/link")
	linkGroup.Use(r.authMiddleware.Authenticate)
	{
		linkGroup.POST("/request", r.linkHandler.CreateRequest)
		linkGroup.DELETE("/request", r.linkHandler.CancelRequest)
		linkGroup.GET("/request", r.linkHandler.ActiveRequest)

		linkGroup.POST("/redeem", r.linkHandler.Redeem)

		linkGroup.GET("", r.linkHandler.Info)
		linkGroup.GET("/cached", r.linkHandler.CachedInfo)
		linkGroup.DELETE("", r.linkHandler.Unlink)
	}
}
