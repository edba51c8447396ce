// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package ranking

import (
	"github.com/tomtom215/ventureboard/internal/cache"
)

// CacheNamespace is the cache namespace for full ranking lists.
const CacheNamespace = "rankings"

// CacheKey returns the cache key for the full ordered ranking of
// (industry, metric). Limits are applied after lookup and are not part of
// the key.
//
//	CacheKey("", MetricOverall)                 rankings::all
//	CacheKey(" Fintech", MetricOverall)         rankings::industry-fintech
//	CacheKey("", MetricGrowth)                  rankings::metric-growth
//	CacheKey("fintech", MetricGrowth)           rankings::industry-fintech|metric-growth
func CacheKey(industry string, metric Metric) cache.Key {
	norm := NormalizeIndustry(industry)

	var disc string
	switch {
	case norm == "" && metric == MetricOverall:
		disc = "all"
	case metric == MetricOverall:
		disc = "industry-" + norm
	case norm == "":
		disc = "metric-" + metric.String()
	default:
		disc = "industry-" + norm + "|metric-" + metric.String()
	}

	return cache.NewKey(CacheNamespace, disc)
}
