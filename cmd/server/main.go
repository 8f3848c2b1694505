// Package main implements the entry point for the Study Aid API
// server, which turns user-submitted text into flashcards and SEO meta
// descriptions through an LLM provider.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/askary/studyaid-api/internal/cache"
	"github.com/askary/studyaid-api/internal/config"
	"github.com/askary/studyaid-api/internal/platform/logger"
	"github.com/askary/studyaid-api/internal/platform/openai"
	"github.com/askary/studyaid-api/internal/service"
)

// application bundles the wired dependencies for router and server
// setup.
type application struct {
	config       *config.Config
	logger       *slog.Logger
	studyService *service.StudyService
}

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and wires application components.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.Provider.Model,
		"cache_backend", cfg.Cache.Backend,
		"cache_ttl_seconds", cfg.Cache.TTLSeconds,
		"api_key_present", cfg.Provider.APIKey != "")

	provider := openai.New(cfg.Provider, appLogger)

	var store cache.Cache
	switch cfg.Cache.Backend {
	case "redis":
		store = cache.NewRedisCache(cfg.Cache.RedisAddr, appLogger)
	default:
		store = cache.NewMemoryCache()
	}

	studyService := service.NewStudyService(
		provider,
		store,
		time.Duration(cfg.Cache.TTLSeconds)*time.Second,
		appLogger,
	)

	return &application{
		config:       cfg,
		logger:       appLogger,
		studyService: studyService,
	}, nil
}
