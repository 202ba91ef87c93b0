package router

import (
	"github.com/labstack/echo/v4"

	"github.com/cinemagico/customer-api/internal/handler"
	"github.com/cinemagico/customer-api/internal/middleware"
)

// RegisterAuth registers the account endpoints.  Register, login,
// refresh, logout and recover live under /v1/auth and need no session;
// the profile endpoint requires a valid access token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)
	g.POST("/recover", a.Recover)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterReservations registers the "Mis Reservas" endpoints behind
// JWT auth.  The client gates the DELETE behind its own confirmation
// dialog before calling.
func RegisterReservations(e *echo.Echo, r *handler.ReservationHandler, jwtSecret string) {
	g := e.Group("/v1/reservations")
	g.Use(middleware.JWTAuth(jwtSecret))
	g.GET("", r.ListActive)
	g.GET("/upcoming", r.ListUpcoming)
	g.GET("/:id", r.Get)
	g.GET("/:id/ticket", r.Ticket)
	g.DELETE("/:id", r.Cancel)
}
