// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

/*
Package ranking orders approved ventures by composite or sub-score and
memoizes the results.

Rank is the pure orchestrator: status filter, industry filter, scoring via
package scoring, stable descending sort by Metric, then limit. Service puts a
cache.Store in front of it. The full ordered list for an (industry, metric)
pair is cached under CacheKey; top-N limits are sliced from that list so
every limit shares one entry.

# Staleness

Cached rankings are never invalidated when ventures change. A list may be up
to the cache TTL old (5 minutes by default).

# Usage

	store := cache.NewMemoryStore[[]models.ScoredVenture](0, 0, 0)
	svc := ranking.NewService(db, store, 5*time.Minute)

	resp, outcome, err := svc.GetRankings(ctx, "Fintech", "growth")
	top, _, err := svc.GetTopRankings(ctx, 10, "")
*/
package ranking
