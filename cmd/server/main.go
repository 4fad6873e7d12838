package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/coworking-reservation/internal/config"
	"github.com/iliyamo/coworking-reservation/internal/database"
	"github.com/iliyamo/coworking-reservation/internal/handler"
	"github.com/iliyamo/coworking-reservation/internal/middleware"
	"github.com/iliyamo/coworking-reservation/internal/queue"
	"github.com/iliyamo/coworking-reservation/internal/repository"
	"github.com/iliyamo/coworking-reservation/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; rate limiting and caching disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	seats := repository.NewSeatRepo(db)
	reservations := repository.NewReservationRepo(db)

	h := router.Handlers{
		Auth:         handler.NewAuthHandler(cfg, users, tokens),
		Users:        handler.NewUserHandler(cfg, users, tokens),
		Seats:        handler.NewSeatHandler(seats),
		Reservations: handler.NewReservationHandler(reservations, seats),
	}

	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	router.Register(e, db, h, cfg.JWTSecret, cache)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
