// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package scoring

import (
	"fmt"
	"math"
)

// Benchmarks against which raw metrics are normalized.
const (
	RevenueBenchmark      = 500_000_000.0
	GrowthRateBenchmark   = 100.0
	SurvivalRateBenchmark = 100.0
	CapitalBenchmark      = 100_000_000.0
	FundingBenchmark      = 100_000_000.0
	FundingRoundBenchmark = 10.0
	GovGrantBenchmark     = 100_000_000.0
	MentorBenchmark       = 50.0
	PartnershipBenchmark  = 20.0
	SocialLinkBenchmark   = 5.0
	ViewsBenchmark        = 10_000.0
	LikesBenchmark        = 100.0
	BookmarksBenchmark    = 50.0
)

// Sub-score weights of the overall score.
const (
	GrowthWeight     = 0.3
	InvestmentWeight = 0.3
	EcosystemWeight  = 0.2
	EngagementWeight = 0.2
)

// MaxOverallScore is the upper bound of the overall score.
const MaxOverallScore = 100.0

// weightSumTolerance absorbs floating point error when checking weights sum to 1.
const weightSumTolerance = 1e-9

// Weights holds the sub-score weights of the overall score.
type Weights struct {
	Growth     float64 `json:"growth"`
	Investment float64 `json:"investment"`
	Ecosystem  float64 `json:"ecosystem"`
	Engagement float64 `json:"engagement"`
}

// DefaultWeights returns the fixed production weights.
func DefaultWeights() Weights {
	return Weights{
		Growth:     GrowthWeight,
		Investment: InvestmentWeight,
		Ecosystem:  EcosystemWeight,
		Engagement: EngagementWeight,
	}
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Growth + w.Investment + w.Ecosystem + w.Engagement
}

// Validate checks that every weight is non-negative and that they sum to 1.
func (w Weights) Validate() error {
	if w.Growth < 0 || w.Investment < 0 || w.Ecosystem < 0 || w.Engagement < 0 {
		return fmt.Errorf("weights must be non-negative: %+v", w)
	}
	if math.Abs(w.Sum()-1.0) > weightSumTolerance {
		return fmt.Errorf("weights must sum to 1.0, got %f", w.Sum())
	}
	return nil
}

// Combine returns the weighted overall score in [0, 100] for the given sub-scores.
func (w Weights) Combine(growth, investment, ecosystem, engagement float64) float64 {
	overall := MaxOverallScore * (w.Growth*growth + w.Investment*investment +
		w.Ecosystem*ecosystem + w.Engagement*engagement)
	return math.Min(math.Max(overall, 0), MaxOverallScore)
}
