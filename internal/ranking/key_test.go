// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package ranking

import "testing"

func TestCacheKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		industry string
		metric   string
		want     string
	}{
		{"no filter", "", "", "rankings::all"},
		{"explicit overall", "", "overall", "rankings::all"},
		{"All sentinel", "All", "overall", "rankings::all"},
		{"bogus metric shares all", "", "popularity", "rankings::all"},
		{"industry only", "Fintech", "", "rankings::industry-fintech"},
		{"industry trailing space", "fintech ", "", "rankings::industry-fintech"},
		{"metric only", "", "growth", "rankings::metric-growth"},
		{"metric case", "", " Growth", "rankings::metric-growth"},
		{"both", "Health", "engagement", "rankings::industry-health|metric-engagement"},
		{"both with bogus metric", "Health", "nope", "rankings::industry-health"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CacheKey(tt.industry, ParseMetric(tt.metric)).String(); got != tt.want {
				t.Errorf("CacheKey(%q, %q) = %q, want %q", tt.industry, tt.metric, got, tt.want)
			}
		})
	}
}

func TestCacheKey_DistinctRequestsDoNotCollide(t *testing.T) {
	t.Parallel()

	seen := make(map[string]string)
	for _, industry := range []string{"", "fintech", "health", "metric-growth"} {
		for _, m := range AllMetrics() {
			key := CacheKey(industry, m).String()
			label := industry + "/" + m.String()
			if prev, ok := seen[key]; ok {
				t.Errorf("key %q shared by %s and %s", key, prev, label)
			}
			seen[key] = label
		}
	}
}
