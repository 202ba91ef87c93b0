package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/cinemagico/customer-api/internal/config"
	"github.com/cinemagico/customer-api/internal/handler"
	"github.com/cinemagico/customer-api/internal/middleware"
)

// RegisterPublic registers the unauthenticated browse and cart routes.
// Catalog and billboard responses are cached in Redis; the cart group
// runs behind the session middleware so every visitor owns a cart
// before signing in.
func RegisterPublic(e *echo.Echo, cat *handler.CatalogHandler, crt *handler.CartHandler, rdb *redis.Client) {
	cached := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	// Billboard (cartelera) and concession catalog
	e.GET("/v1/movies", cat.Movies, cached)
	e.GET("/v1/catalog", cat.List, cached)
	e.GET("/v1/catalog/:section", cat.Section, cached)
	// About-us block; the client launches maps/dialer/mail from it
	e.GET("/v1/cinema", cat.CinemaInfo, cached)

	// Session-scoped concession cart
	g := e.Group("/v1/cart", middleware.Session())
	g.GET("", crt.Get)
	g.POST("/items", crt.AddItem)
	g.DELETE("/items/:id", crt.RemoveItem)
	g.DELETE("", crt.Clear)
	g.POST("/checkout", crt.Checkout)
}
