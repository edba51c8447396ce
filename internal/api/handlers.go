// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package api

import (
	"context"
	"time"

	"github.com/tomtom215/ventureboard/internal/cache"
	"github.com/tomtom215/ventureboard/internal/models"
)

// defaultTopLimit is used when the top endpoint gets no usable limit.
const defaultTopLimit = 10

// RankingService is the ranking surface the handlers call.
// *ranking.Service implements it.
type RankingService interface {
	GetRankings(ctx context.Context, industry, metric string) (*models.RankingsResponse, cache.Outcome, error)
	GetTopRankings(ctx context.Context, limit int, industry string) ([]models.TopRankingEntry, cache.Outcome, error)
	GetVentureScoreDetail(ctx context.Context, id int64) (*models.ScoreDetail, error)
	CacheStats() models.CacheStatsResponse
}

// Pinger reports dependency health for the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// BreakerReporter exposes a circuit breaker state name.
type BreakerReporter interface {
	State() string
}

// HandlerDeps collects the handler dependencies. Cache, Breaker and
// CacheBackend are optional.
type HandlerDeps struct {
	Rankings     RankingService
	Store        Pinger
	Cache        Pinger
	CacheBackend string
	Breaker      BreakerReporter
	Version      string
}

// Handler serves the ranking API.
type Handler struct {
	rankings     RankingService
	store        Pinger
	cache        Pinger
	cacheBackend string
	breaker      BreakerReporter
	version      string
	startTime    time.Time
}

// NewHandler creates a new API handler.
func NewHandler(deps HandlerDeps) *Handler {
	version := deps.Version
	if version == "" {
		version = "dev"
	}
	backend := deps.CacheBackend
	if backend == "" {
		backend = string(cache.BackendMemory)
	}
	return &Handler{
		rankings:     deps.Rankings,
		store:        deps.Store,
		cache:        deps.Cache,
		cacheBackend: backend,
		breaker:      deps.Breaker,
		version:      version,
		startTime:    time.Now(),
	}
}
