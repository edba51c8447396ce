// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tomtom215/ventureboard/internal/api"
	"github.com/tomtom215/ventureboard/internal/cache"
	"github.com/tomtom215/ventureboard/internal/config"
	"github.com/tomtom215/ventureboard/internal/database"
	"github.com/tomtom215/ventureboard/internal/logging"
	"github.com/tomtom215/ventureboard/internal/models"
	"github.com/tomtom215/ventureboard/internal/ranking"
	"github.com/tomtom215/ventureboard/internal/supervisor"
	"github.com/tomtom215/ventureboard/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// idleTimeout bounds keep-alive connections.
const idleTimeout = 60 * time.Second

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		// Config not yet available; the default logger is used.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("db_path", cfg.Database.Path).
		Str("cache_backend", cfg.Cache.Backend).
		Msg("Starting ventureboard")

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("Server exited with error")
	}
	logging.Info().Msg("Shutdown complete")
}

// errSupervisorStopped reports a tree that exited cleanly without a shutdown signal.
var errSupervisorStopped = errors.New("stopped without shutdown signal")

//nolint:gocyclo // Sequential startup steps
func run(cfg *config.Config) error {
	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	seeded, err := db.SeedVentures(context.Background(), database.SeedOptions{
		Path: cfg.Database.SeedPath,
		Demo: cfg.Database.SeedDemoData,
	})
	if err != nil {
		return fmt.Errorf("seed ventures: %w", err)
	}
	logging.Info().Int("seeded", seeded).Msg("Venture store ready")

	reader := database.NewCircuitBreakerStore(db, &cfg.Breaker)

	store, redisClient, err := newResultCache(&cfg.Cache)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer func() {
			if err := redisClient.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing redis client")
			}
		}()
	}

	rankings := ranking.NewService(reader, store, cfg.Cache.TTL)

	deps := api.HandlerDeps{
		Rankings:     rankings,
		Store:        db,
		CacheBackend: string(store.Backend()),
		Breaker:      reader,
		Version:      version,
	}
	if pinger, ok := store.(api.Pinger); ok {
		deps.Cache = pinger
	}
	router := api.NewRouter(api.NewHandler(deps), api.ChiMiddlewareConfigFromSecurity(&cfg.Security))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       idleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	if sweeper, ok := store.(services.ExpiredSweeper); ok && cfg.Cache.CleanupInterval > 0 {
		tree.AddMaintenanceService(services.NewCacheJanitorService(sweeper, cfg.Cache.CleanupInterval))
		logging.Info().Dur("interval", cfg.Cache.CleanupInterval).Msg("Cache janitor added to supervisor tree")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	runErr := awaitShutdown(ctx, errCh)
	stop()

	if unstopped, err := tree.UnstoppedServiceReport(); err == nil && len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service did not stop within timeout")
		}
	}
	return runErr
}

// awaitShutdown blocks until ctx is canceled or the supervisor tree stops on
// its own. A stop without a shutdown signal is returned as an error.
func awaitShutdown(ctx context.Context, errCh <-chan error) error {
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for supervisor to finish")
		<-errCh
		return nil
	case err := <-errCh:
		if err == nil {
			err = errSupervisorStopped
		}
		logging.Error().Err(err).Msg("Supervisor tree stopped unexpectedly")
		return fmt.Errorf("supervisor tree: %w", err)
	}
}

// newResultCache builds the ranking result store for the configured backend.
// The redis client is returned so the caller can close it.
func newResultCache(cfg *config.CacheConfig) (cache.Store[[]models.ScoredVenture], *redis.Client, error) {
	opts := cache.Options{
		Backend:         cache.Backend(cfg.Backend),
		InitialCapacity: cfg.InitialCapacity,
		MaxCapacity:     cfg.MaxCapacity,
		TTL:             cfg.TTL,
		KeyPrefix:       cfg.Redis.KeyPrefix,
	}

	var client *redis.Client
	if opts.Backend == cache.BackendRedis {
		client = redis.NewClient(&redis.Options{
			Addr:        cfg.Redis.Addr,
			Password:    cfg.Redis.Password,
			DB:          cfg.Redis.DB,
			DialTimeout: cfg.Redis.DialTimeout,
		})

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.DialTimeout+time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			// Requests fall back to direct computation until redis recovers.
			logging.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis unreachable at startup")
		}
	}

	store, err := cache.NewStore[[]models.ScoredVenture](opts, client)
	if err != nil {
		if client != nil {
			_ = client.Close()
		}
		return nil, nil, fmt.Errorf("create result cache: %w", err)
	}
	return store, client, nil
}
