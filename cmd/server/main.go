package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/cinemagico/customer-api/internal/cart"
	"github.com/cinemagico/customer-api/internal/catalog"
	"github.com/cinemagico/customer-api/internal/config"
	"github.com/cinemagico/customer-api/internal/handler"
	"github.com/cinemagico/customer-api/internal/middleware"
	"github.com/cinemagico/customer-api/internal/queue"
	"github.com/cinemagico/customer-api/internal/reservation"
	"github.com/cinemagico/customer-api/internal/router"
	"github.com/cinemagico/customer-api/internal/store"
)

func main() {
	cfg := config.Load()

	// Redis is optional: when unreachable the rate limiter and the
	// response cache degrade to pass-through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and response cache disabled")
	}

	// In-memory state, owned here and injected into the handlers.
	catalogStore := catalog.NewStore()
	cartStore := cart.NewStore()
	reservationStore := reservation.NewStore()
	userStore := store.NewUserStore()
	tokenStore := store.NewTokenStore()

	if cfg.SeedDemo {
		// Demo bookings for the first registered account.
		reservation.SeedDemo(reservationStore, 1)
		log.Println("seeded demo reservations for user 1")
	}

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterPublic(e,
		handler.NewCatalogHandler(catalogStore),
		handler.NewCartHandler(catalogStore, cartStore),
		rdb)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, userStore, tokenStore), cfg.JWTSecret)
	router.RegisterReservations(e, handler.NewReservationHandler(reservationStore), cfg.JWTSecret)

	// Notification consumer: drains the event queues into
	// logs/notifications.log, reconnecting on broker failures.
	go queue.StartNotificationConsumer()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
