package main

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"forecast-service/internal/cache"
	"forecast-service/internal/config"
	"forecast-service/internal/forecast"
	"forecast-service/internal/geocode"
	"forecast-service/internal/weather"

	_ "forecast-service/docs" // Import generated docs
)

// App encapsulates application dependencies
type App struct {
	router       *gin.Engine
	logger       *slog.Logger
	orchestrator *forecast.Orchestrator
	cfg          *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	store, err := newCacheStore(cfg)
	if err != nil {
		return nil, err
	}

	resolver := geocode.NewService(cfg.Geocoding.BaseURL, cfg.Geocoding.UserAgent, logger)
	fetcher := weather.NewService(cfg.Weather.BaseURL, cfg.Weather.APIKey, cfg.Weather.Units, cfg.Weather.Timeout, logger)
	orchestrator := forecast.NewOrchestrator(resolver, fetcher, store, cfg.Cache.TTL, cfg.App.ForecastDays, logger)

	app := &App{
		router:       router,
		logger:       logger,
		orchestrator: orchestrator,
		cfg:          cfg,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// newCacheStore builds the configured cache backend.
func newCacheStore(cfg *config.Config) (cache.Store, error) {
	switch cfg.Cache.Backend {
	case "memory":
		return cache.NewMemoryStore(cfg.Cache.CleanupInterval), nil
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		return cache.NewRedisStore(client), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
