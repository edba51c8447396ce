// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package scoring

import (
	"math"

	"github.com/tomtom215/ventureboard/internal/models"
)

// Compute returns all sub-scores and the overall score for in.
//
//nolint:gocritic // hugeParam: Inputs passed by value, scorers only read it
func Compute(in Inputs) models.Scores {
	growth := Growth(in)
	investment := Investment(in)
	ecosystem := Ecosystem(in)
	engagement := Engagement(in)

	return models.Scores{
		Growth:     growth,
		Investment: investment,
		Ecosystem:  ecosystem,
		Engagement: engagement,
		Overall:    DefaultWeights().Combine(growth, investment, ecosystem, engagement),
	}
}

// Overall returns the weighted overall score in [0, 100].
//
//nolint:gocritic // hugeParam: Inputs passed by value, scorers only read it
func Overall(in Inputs) float64 {
	return Compute(in).Overall
}

// Growth scores revenue, average growth rate and survival rate.
//
//nolint:gocritic // hugeParam: Inputs passed by value, scorers only read it
func Growth(in Inputs) float64 {
	return mean(
		ratio(in.AnnualRevenue, RevenueBenchmark),
		ratio(in.AverageGrowthRate, GrowthRateBenchmark),
		ratio(in.SurvivalRate, SurvivalRateBenchmark),
	)
}

// Investment scores capital, funding, funding rounds, foreign investment and
// government grants. Foreign investment counts fully once any exists.
//
//nolint:gocritic // hugeParam: Inputs passed by value, scorers only read it
func Investment(in Inputs) float64 {
	return mean(
		ratio(in.PaidUpCapital, CapitalBenchmark),
		ratio(in.TotalFunding, FundingBenchmark),
		ratio(float64(in.FundingRounds), FundingRoundBenchmark),
		binary(in.ForeignInvestmentCount),
		ratio(in.GovernmentGrants, GovGrantBenchmark),
	)
}

// Ecosystem scores incubation participation, mentors and partnerships.
//
//nolint:gocritic // hugeParam: Inputs passed by value, scorers only read it
func Ecosystem(in Inputs) float64 {
	return mean(
		binary(in.IncubationCount),
		ratio(float64(in.MentorCount), MentorBenchmark),
		ratio(float64(in.PartnershipCount), PartnershipBenchmark),
	)
}

// Engagement scores profile completeness, social presence and platform engagement.
//
//nolint:gocritic // hugeParam: Inputs passed by value, scorers only read it
func Engagement(in Inputs) float64 {
	return mean(
		ProfileCompleteness(in),
		SocialPresence(in),
		PlatformEngagement(in),
	)
}

// ProfileCompleteness is the filled fraction of ProfileChecklist.
//
//nolint:gocritic // hugeParam: Inputs passed by value, scorers only read it
func ProfileCompleteness(in Inputs) float64 {
	return ratio(float64(in.ProfileFilled), float64(len(ProfileChecklist)))
}

// SocialPresence scores the number of social links against SocialLinkBenchmark.
//
//nolint:gocritic // hugeParam: Inputs passed by value, scorers only read it
func SocialPresence(in Inputs) float64 {
	return ratio(float64(in.SocialLinks), SocialLinkBenchmark)
}

// PlatformEngagement scores views, likes and bookmarks.
//
//nolint:gocritic // hugeParam: Inputs passed by value, scorers only read it
func PlatformEngagement(in Inputs) float64 {
	return mean(
		ratio(float64(in.Views), ViewsBenchmark),
		ratio(float64(in.Likes), LikesBenchmark),
		ratio(float64(in.Bookmarks), BookmarksBenchmark),
	)
}

// Percent converts a [0,1] sub-score to rounded percentage points.
func Percent(score float64) int {
	return int(math.Round(score * 100))
}

// RoundScore rounds an overall score to the nearest integer.
func RoundScore(score float64) int {
	return int(math.Round(score))
}

// ratio normalizes value against benchmark and clamps the result to [0, 1].
func ratio(value, benchmark float64) float64 {
	if math.IsNaN(value) || value <= 0 || benchmark <= 0 {
		return 0
	}
	return math.Min(value/benchmark, 1)
}

func binary(count int64) float64 {
	if count > 0 {
		return 1
	}
	return 0
}

func mean(values ...float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
