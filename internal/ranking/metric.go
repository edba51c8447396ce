// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package ranking

import (
	"strings"

	"github.com/tomtom215/ventureboard/internal/models"
)

// Metric selects the score a ranking is ordered by.
type Metric int

const (
	MetricOverall Metric = iota
	MetricGrowth
	MetricInvestment
	MetricEcosystem
	MetricEngagement
)

// metricNames is indexed by Metric.
var metricNames = [...]string{
	MetricOverall:    "overall",
	MetricGrowth:     "growth",
	MetricInvestment: "investment",
	MetricEcosystem:  "ecosystem",
	MetricEngagement: "engagement",
}

// metricValues maps each Metric to its sort key. Sub-scores are in [0,1],
// overall in [0,100]; only the order within one metric matters.
var metricValues = [...]func(s *models.Scores) float64{
	MetricOverall:    func(s *models.Scores) float64 { return s.Overall },
	MetricGrowth:     func(s *models.Scores) float64 { return s.Growth },
	MetricInvestment: func(s *models.Scores) float64 { return s.Investment },
	MetricEcosystem:  func(s *models.Scores) float64 { return s.Ecosystem },
	MetricEngagement: func(s *models.Scores) float64 { return s.Engagement },
}

var metricsByName = func() map[string]Metric {
	m := make(map[string]Metric, len(metricNames))
	for i, name := range metricNames {
		m[name] = Metric(i)
	}
	return m
}()

// ParseMetric trims and lower-cases s and returns the matching Metric.
// Unknown or blank input selects MetricOverall.
func ParseMetric(s string) Metric {
	if m, ok := metricsByName[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m
	}
	return MetricOverall
}

// AllMetrics returns every metric in declaration order.
func AllMetrics() []Metric {
	return []Metric{MetricOverall, MetricGrowth, MetricInvestment, MetricEcosystem, MetricEngagement}
}

// String returns the lower-case metric name used in URLs and cache keys.
func (m Metric) String() string {
	if !m.valid() {
		return metricNames[MetricOverall]
	}
	return metricNames[m]
}

// Value returns the sort key of scores for this metric.
func (m Metric) Value(s *models.Scores) float64 {
	if !m.valid() {
		return metricValues[MetricOverall](s)
	}
	return metricValues[m](s)
}

func (m Metric) valid() bool {
	return m >= 0 && int(m) < len(metricNames)
}
