// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package services

import (
	"context"
	"time"

	"github.com/tomtom215/ventureboard/internal/logging"
)

// ExpiredSweeper drops expired entries and reports how many it removed.
// *cache.MemoryStore satisfies it.
type ExpiredSweeper interface {
	CleanupExpired() int
}

// CacheJanitorService periodically sweeps expired ranking results out of
// the in-process cache. Lookups already ignore expired entries; sweeping
// returns their memory before LRU pressure would.
type CacheJanitorService struct {
	sweeper  ExpiredSweeper
	interval time.Duration
}

// NewCacheJanitorService creates a janitor that sweeps every interval,
// or every minute when interval is not positive.
func NewCacheJanitorService(sweeper ExpiredSweeper, interval time.Duration) *CacheJanitorService {
	if interval <= 0 {
		interval = time.Minute
	}
	return &CacheJanitorService{
		sweeper:  sweeper,
		interval: interval,
	}
}

// Serve implements suture.Service.
func (j *CacheJanitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if removed := j.sweeper.CleanupExpired(); removed > 0 {
				logging.Debug().Int("removed", removed).Msg("Swept expired ranking cache entries")
			}
		}
	}
}

// String names the service in supervisor events.
func (j *CacheJanitorService) String() string {
	return "cache-janitor"
}
