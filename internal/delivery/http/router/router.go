// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"raidhub/internal/delivery/http/middleware"
	"raidhub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	CharacterHandler *handler.CharacterHandler
	RaidHandler      *handler.RaidHandler
	SignupHandler    *handler.SignupHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	characterHandler *handler.CharacterHandler
	raidHandler      *handler.RaidHandler
	signupHandler    *handler.SignupHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		characterHandler: params.CharacterHandler,
		raidHandler:      params.RaidHandler,
		signupHandler:    params.SignupHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application. Token
// validation runs globally so any presented token is checked even on public
// routes; RequireUser guards the protected groups.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.authMiddleware.Authenticate)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/line", r.authHandler.LineLogin)
	}

	// Raid routes: listing the schedule and rosters is public, mutations
	// require authentication
	raidGroup := e.Group("/raids")
	{
		raidGroup.GET("", r.raidHandler.List)
		raidGroup.GET("/:raidId/signups", r.signupHandler.List)

		raidGroup.POST("", r.raidHandler.Create, r.authMiddleware.RequireUser)
		raidGroup.DELETE("/:raidId", r.raidHandler.Delete, r.authMiddleware.RequireUser)
		raidGroup.POST("/:raidId/signups", r.signupHandler.Create, r.authMiddleware.RequireUser)
		raidGroup.DELETE("/:raidId/signups", r.signupHandler.Cancel, r.authMiddleware.RequireUser)
	}

	// Character routes scoped to the authenticated caller
	meGroup := e.Group("/me", r.authMiddleware.RequireUser)
	{
		meGroup.GET("/characters", r.characterHandler.List)
		meGroup.POST("/characters", r.characterHandler.Create)
		meGroup.PUT("/characters/:characterId", r.characterHandler.Update)
		meGroup.DELETE("/characters/:characterId", r.characterHandler.Delete)
		meGroup.PUT("/characters/:characterId/default", r.characterHandler.SetDefault)
	}
}
