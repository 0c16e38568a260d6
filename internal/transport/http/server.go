// Package http provides the HTTP server for the assistant.
package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/ewasteheroes/carbobot/internal/metrics"
	"github.com/ewasteheroes/carbobot/internal/service"
)

// NewServer creates and configures the HTTP server. m may be nil to disable
// the metrics endpoint.
func NewServer(svc *service.Service, m *metrics.Metrics, model string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Handlers
	h := NewHandler(svc, model)
	h.RegisterRoutes(e)

	if m != nil {
		e.GET("/metrics", echo.WrapHandler(m.Handler()))
	}

	return e
}
