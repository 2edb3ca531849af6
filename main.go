package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"prestabanco/client"
	"prestabanco/config"
	httpLayer "prestabanco/http"
	"prestabanco/repository"
	"prestabanco/service"
	"prestabanco/telemetry"
)

const serviceName = "prestabanco-console"

func main() {
	log.SetPrefix("[prestabanco] ")

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Fatalf("Error loading .env: %v", err)
	}
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Error in configuration: %v", err)
	}

	shutdownTracing, err := telemetry.Setup(context.Background(), serviceName, cfg.OTelEndpoint)
	if err != nil {
		log.Printf("Warning: tracing disabled: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			log.Printf("Warning: tracing shutdown: %v", err)
		}
	}()

	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		redisCache := repository.NewRedisCache(cfg.RedisAddr, "prestabanco:")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := redisCache.Ping(ctx)
		cancel()
		if err != nil {
			log.Fatalf("Error connecting to redis at %s: %v", cfg.RedisAddr, err)
		}
		defer redisCache.Close()
		cache = redisCache
	} else {
		log.Println("Redis not configured, using in-memory cache")
		memoryCache := repository.NewMemoryCache()
		defer memoryCache.Stop()
		cache = memoryCache
	}

	backend, err := client.New(cfg.BaseURL(), client.WithTimeout(cfg.BackendTimeout))
	if err != nil {
		log.Fatalf("Error creating backend client: %v", err)
	}
	log.Printf("Backend: %s", backend.BaseURL())

	sessions, err := service.NewSessionService(cfg.SessionSecret, cfg.SessionTTL, cache)
	if err != nil {
		log.Fatalf("Error creating session service: %v", err)
	}

	simulations := repository.NewSimulationRepositoryMemory()
	applicationsView := service.NewApplicationsView(backend.Applications)

	handlers := httpLayer.Handlers{
		Auth: httpLayer.NewAuthHandler(service.NewAuthService(backend.Users, sessions)),
		Simulator: httpLayer.NewSimulatorHandler(
			service.NewSimulatorService(backend.Loans, simulations, cache, cfg.SimulationTTL),
		),
		Application: httpLayer.NewApplicationHandler(
			service.NewApplicationFormService(backend.Applications),
			applicationsView,
		),
		Management: httpLayer.NewManagementHandler(applicationsView),
		Credit: httpLayer.NewCreditHandler(
			service.NewCreditView(backend.Applications, backend.Savings, backend.Loans),
		),
		History: httpLayer.NewHistoryHandler(service.NewHistoryView(backend.Applications)),
		Health:  httpLayer.NewHealthHandler(backend),
	}

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      httpLayer.NewRouter(handlers, sessions, rateLimiter),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.BackendTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Console API listening on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Printf("Error starting server: %v", err)
		return
	case <-quit:
		log.Println("Shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server exited")
}
