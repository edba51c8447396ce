// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package ranking

import (
	"sort"
	"strings"

	"github.com/tomtom215/ventureboard/internal/cache"
	"github.com/tomtom215/ventureboard/internal/models"
	"github.com/tomtom215/ventureboard/internal/scoring"
)

// AllIndustries is the industry filter value that disables filtering.
const AllIndustries = "All"

// Request describes one ranking.
type Request struct {
	// Industry filters by case-insensitive exact match after trimming.
	// Blank or "All" (any case) means no filter.
	Industry string

	Metric Metric

	// Limit caps the result: nil returns everything, <= 0 returns nothing.
	Limit *int
}

// WithLimit returns a copy of r limited to n entries.
func (r Request) WithLimit(n int) Request {
	r.Limit = &n
	return r
}

// NormalizeIndustry returns the comparable form of an industry filter,
// or "" when the filter is blank or AllIndustries.
func NormalizeIndustry(industry string) string {
	norm := cache.NormalizeToken(industry)
	if norm == strings.ToLower(AllIndustries) {
		return ""
	}
	return norm
}

// Rank filters, scores and orders ventures for req.
//
// Only Approved ventures (case-insensitive) are kept. Ordering is descending
// by req.Metric and stable, so ties keep input order. The input slice is not
// modified.
func Rank(ventures []models.Venture, req Request) []models.ScoredVenture {
	industry := NormalizeIndustry(req.Industry)

	scored := make([]models.ScoredVenture, 0, len(ventures))
	for i := range ventures {
		v := &ventures[i]
		if !isApproved(v) {
			continue
		}
		if industry != "" && cache.NormalizeToken(v.Industry) != industry {
			continue
		}
		scored = append(scored, models.ScoredVenture{
			Venture: *v,
			Scores:  scoring.Compute(scoring.InputsFromVenture(v)),
		})
	}

	metric := req.Metric
	sort.SliceStable(scored, func(i, j int) bool {
		return metric.Value(&scored[i].Scores) > metric.Value(&scored[j].Scores)
	})

	return ApplyLimit(scored, req.Limit)
}

// ApplyLimit returns the first *limit entries of ranked. A nil limit returns
// ranked unchanged; a non-positive limit returns an empty slice. The result
// shares ranked's backing array.
func ApplyLimit(ranked []models.ScoredVenture, limit *int) []models.ScoredVenture {
	if limit == nil {
		return ranked
	}
	n := *limit
	if n <= 0 {
		return []models.ScoredVenture{}
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

func isApproved(v *models.Venture) bool {
	return strings.EqualFold(v.Status, models.StatusApproved)
}
