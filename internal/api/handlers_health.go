// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/ventureboard/internal/models"
)

// readinessTimeout bounds each dependency ping.
const readinessTimeout = 2 * time.Second

// HealthLive handles liveness probe requests.
// Returns 200 OK if the process is alive, regardless of dependencies.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	})
}

// HealthReady handles readiness probe requests.
// Returns 200 OK only when the venture store answers a ping and, if a shared
// cache tier is configured, the cache does too.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	storeHealthy := ping(r.Context(), h.store)

	cacheHealthy := true
	if h.cache != nil {
		cacheHealthy = ping(r.Context(), h.cache)
	}

	health := models.HealthStatus{
		Status:       "ready",
		Version:      h.version,
		StoreHealthy: storeHealthy,
		CacheBackend: h.cacheBackend,
		CacheHealthy: cacheHealthy,
		Uptime:       time.Since(h.startTime).Seconds(),
	}
	if h.breaker != nil {
		health.BreakerStatus = h.breaker.State()
	}

	statusCode := http.StatusOK
	if !storeHealthy || !cacheHealthy {
		statusCode = http.StatusServiceUnavailable
		health.Status = "not_ready"
	}

	respondJSON(w, statusCode, &models.APIResponse{
		Status: health.Status,
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now().UTC(),
		},
	})
}

func ping(ctx context.Context, p Pinger) bool {
	if p == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, readinessTimeout)
	defer cancel()
	return p.Ping(ctx) == nil
}
