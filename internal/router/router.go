// Package router wires HTTP routes to handlers.  Route groups mirror
// the client tabs: billboard and catalog are public and cached, the
// cart is session-bound, and reservations plus the profile sit behind
// JWT auth.
package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/cinemagico/customer-api/internal/handler"
)

// RegisterRoutes installs the base middleware and the health check.
func RegisterRoutes(e *echo.Echo) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.GET("/healthz", handler.Health)
}
