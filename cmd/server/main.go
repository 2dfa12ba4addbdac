package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"whlin31/CarHub/internal/api/controller"
	"whlin31/CarHub/internal/api/repository"
	"whlin31/CarHub/internal/api/service"
	"whlin31/CarHub/internal/auth"
	"whlin31/CarHub/internal/config"
	"whlin31/CarHub/internal/db"
	"whlin31/CarHub/internal/logger"
	"whlin31/CarHub/internal/ratelimit"
	"whlin31/CarHub/internal/server"
	"whlin31/CarHub/internal/telemetry"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel()
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	logger.Init(cfg.IsDevelopment())

	// Initialize SQLite DB
	pool, err := db.Connect(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open sqlite db: %v", err)
	}
	defer pool.Close()
	if err := db.Initialize(pool); err != nil {
		log.Fatalf("failed to initialize sqlite db: %v", err)
	}

	// Redis backs the auth rate limiter only; run without it if unreachable.
	var limiter *ratelimit.FixedWindowLimiter
	rdb, err := db.NewRedisClient(ctx, cfg.RedisAddr)
	if err != nil {
		log.Printf("redis unavailable, auth rate limiting disabled: %v", err)
	} else {
		defer rdb.Close()
		limiter = ratelimit.NewFixedWindowLimiter(rdb, cfg.AuthRateLimit, time.Minute)
	}

	// Create repositories
	userRepo := repository.NewUserRepository(pool)
	carRepo := repository.NewCarRepository(pool)

	// Create services
	userService := service.NewUserService(userRepo)
	carService := service.NewCarService(carRepo)

	// Session token issuer shared by the auth endpoints and the guard.
	issuer := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL, cfg.IsDevelopment())

	// Create controllers
	authController := controller.NewAuthController(userService, issuer)
	userController := controller.NewUserController(userService)
	carController := controller.NewCarController(carService)

	// Create the Gin-based server
	srv := server.NewServer(issuer, limiter, authController, userController, carController)

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("http server started on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
