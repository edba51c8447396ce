// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package ranking

import (
	"testing"

	"github.com/tomtom215/ventureboard/internal/models"
)

func TestParseMetric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Metric
	}{
		{"overall", MetricOverall},
		{"growth", MetricGrowth},
		{"investment", MetricInvestment},
		{"ecosystem", MetricEcosystem},
		{"engagement", MetricEngagement},
		{" Growth ", MetricGrowth},
		{"ENGAGEMENT", MetricEngagement},
		{"", MetricOverall},
		{"popularity", MetricOverall},
		{"growth-rate", MetricOverall},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := ParseMetric(tt.input); got != tt.want {
				t.Errorf("ParseMetric(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMetric_StringRoundTrip(t *testing.T) {
	t.Parallel()

	for _, m := range AllMetrics() {
		if got := ParseMetric(m.String()); got != m {
			t.Errorf("ParseMetric(%q) = %v, want %v", m.String(), got, m)
		}
	}
	if got := Metric(99).String(); got != "overall" {
		t.Errorf("Metric(99).String() = %q, want overall", got)
	}
}

func TestMetric_Value(t *testing.T) {
	t.Parallel()

	s := models.Scores{Growth: 0.1, Investment: 0.2, Ecosystem: 0.3, Engagement: 0.4, Overall: 55}

	tests := []struct {
		metric Metric
		want   float64
	}{
		{MetricOverall, 55},
		{MetricGrowth, 0.1},
		{MetricInvestment, 0.2},
		{MetricEcosystem, 0.3},
		{MetricEngagement, 0.4},
		{Metric(-1), 55},
	}

	for _, tt := range tests {
		if got := tt.metric.Value(&s); got != tt.want {
			t.Errorf("%v.Value() = %v, want %v", tt.metric, got, tt.want)
		}
	}
}
