// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"safezone/internal/delivery/http/middleware"
	"safezone/internal/delivery/http/router/handler"
	"safezone/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SafeLocationHandler *handler.SafeLocationHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Registry            *prometheus.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	safeLocationHandler *handler.SafeLocationHandler
	authMiddleware      *middleware.AuthMiddleware
	registry            *prometheus.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		safeLocationHandler: params.SafeLocationHandler,
		authMiddleware:      params.AuthMiddleware,
		registry:            params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo, metricsPath string) {
	e.GET("/health", handler.HealthCheck)
	e.GET(metricsPath, metrics.Handler(r.registry))

	// Every safe-location route needs a bearer token for the target user
	safeLocationGroup := e.Group("/safe-location")
	safeLocationGroup.Use(r.authMiddleware.Authenticate)
	{
		safeLocationGroup.GET("", r.safeLocationHandler.GetSafeLocation)
		safeLocationGroup.POST("", r.safeLocationHandler.SaveSafeLocation)
		safeLocationGroup.GET("/zone", r.safeLocationHandler.GetSafeZone)
	}
}
