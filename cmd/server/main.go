package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // Loads .env files in development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/cargonova/logistics-api/internal/booking"
	"github.com/cargonova/logistics-api/internal/config"
	"github.com/cargonova/logistics-api/internal/database"
	"github.com/cargonova/logistics-api/internal/handler"
	"github.com/cargonova/logistics-api/internal/queue"
	"github.com/cargonova/logistics-api/internal/repository"
	"github.com/cargonova/logistics-api/internal/router"
	"github.com/cargonova/logistics-api/internal/store"
	"github.com/cargonova/logistics-api/internal/tracking"
)

func main() {
	// Load .env if present; in production the environment is set by the deployment.
	_ = godotenv.Load()

	cfg := config.Load() // Load environment config

	// MySQL holds the booking archive and contact messages.
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	defer db.Close()

	// Redis backs the record store plus response caching and rate limiting.
	// When it is unreachable the record store degrades to process memory and
	// the middleware switch themselves off.
	rdb := config.NewRedisClient()
	var kv store.Store
	if rdb != nil {
		kv = store.NewRedisStore(rdb)
	} else {
		log.Printf("redis unavailable; using in-memory record store for this run")
		kv = store.NewMemoryStore()
	}

	sessions := booking.NewRegistry(nil) // wall clock
	bookingRepo := repository.NewBookingRepo(db)
	contactRepo := repository.NewContactRepo(db)
	trackSvc := tracking.NewService(kv, nil, cfg.TrackingDelay)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterBooking(e, handler.NewBookingHandler(sessions, kv, bookingRepo))
	router.RegisterTracking(e, handler.NewTrackingHandler(trackSvc), config.LoadRateLimitConfig(), rdb)
	router.RegisterContact(e, handler.NewContactHandler(contactRepo))
	router.RegisterContent(e, config.LoadCacheConfig(), rdb)

	// Consume booking.confirmed events in the background; the consumer runs
	// its own reconnect loop and never brings the server down.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port                                // Address string with port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		log.Fatal(err) // Log and exit if server fails
	}
}
