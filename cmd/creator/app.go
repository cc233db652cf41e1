package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/forgelight/creator-api/internal/catalog"
	"github.com/forgelight/creator-api/internal/config"
	"github.com/forgelight/creator-api/internal/engine"
	creatororch "github.com/forgelight/creator-api/internal/orchestrators/creator"
	"github.com/forgelight/creator-api/internal/redis"
	"github.com/forgelight/creator-api/internal/repositories/draft"
	"github.com/forgelight/creator-api/internal/repositories/library"
	"github.com/forgelight/creator-api/internal/services/creator"
)

// app bundles the wired service and its configuration for command handlers.
type app struct {
	cfg     config.Config
	service creator.Service
}

// newApp loads configuration, configures logging, and wires the full
// service: redis client, repositories, engine, catalog, orchestrator.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	setupLogging(cfg.Logging)

	client, err := redis.NewClient(cfg.Redis.Address, &redis.Options{
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		UseTLS:       cfg.Redis.UseTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	libraryRepo, err := library.NewRedis(&library.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create library repository: %w", err)
	}

	draftRepo, err := draft.NewRedis(&draft.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create draft repository: %w", err)
	}

	eng, err := engine.New(&engine.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	snap, err := catalog.Load(ctx, cfg.Catalog.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	svc, err := creatororch.New(&creatororch.Config{
		LibraryRepo: libraryRepo,
		DraftRepo:   draftRepo,
		Engine:      eng,
		Catalog:     catalog.NewStaticProvider(snap),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create orchestrator: %w", err)
	}

	return &app{cfg: cfg, service: svc}, nil
}

func setupLogging(cfg config.LoggingConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
