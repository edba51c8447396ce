// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package models

// Scores holds the four sub-scores (each in [0,1]) and the weighted overall
// score (in [0,100]) for one venture.
type Scores struct {
	Growth     float64 `json:"growth"`
	Investment float64 `json:"investment"`
	Ecosystem  float64 `json:"ecosystem"`
	Engagement float64 `json:"engagement"`
	Overall    float64 `json:"overall"`
}

// ScoredVenture pairs a venture with its computed scores.
// Slices of ScoredVenture are the unit stored in the result cache and must be
// treated as read-only once cached.
type ScoredVenture struct {
	Venture Venture `json:"venture"`
	Scores  Scores  `json:"scores"`
}

// RankingEntry is one row of a ranking listing.
// Sub-scores are percentage points (score x 100, rounded); OverallScore is the
// overall score rounded to the nearest integer.
type RankingEntry struct {
	Rank            int    `json:"rank"`
	ID              int64  `json:"id"`
	CompanyName     string `json:"company_name"`
	Industry        string `json:"industry"`
	OverallScore    int    `json:"overall_score"`
	GrowthScore     int    `json:"growth_score"`
	InvestmentScore int    `json:"investment_score"`
	EcosystemScore  int    `json:"ecosystem_score"`
	EngagementScore int    `json:"engagement_score"`
}

// RankingsResponse is the payload of the rankings endpoint.
type RankingsResponse struct {
	TotalCount int            `json:"total_count"`
	Industry   string         `json:"industry,omitempty"`
	Metric     string         `json:"metric"`
	Rankings   []RankingEntry `json:"rankings"`
}

// TopRankingEntry is one row of the compact top-N listing.
// GrowthRate echoes the raw average growth rate and is null when unknown.
type TopRankingEntry struct {
	ID          int64    `json:"id"`
	CompanyName string   `json:"company_name"`
	Industry    string   `json:"industry"`
	Score       int      `json:"score"`
	GrowthRate  *float64 `json:"growth_rate"`
}

// RawMetrics echoes the stored metrics of a venture exactly as loaded.
type RawMetrics struct {
	AnnualRevenue          *float64 `json:"annual_revenue"`
	AverageGrowthRate      *float64 `json:"average_growth_rate"`
	SurvivalRate           *float64 `json:"survival_rate"`
	PaidUpCapital          *float64 `json:"paid_up_capital"`
	TotalFundingReceived   *float64 `json:"total_funding_received"`
	GovernmentGrants       *float64 `json:"government_grants"`
	FundingRounds          *int64   `json:"funding_rounds"`
	ForeignInvestmentCount *int64   `json:"foreign_investment_count"`
	IncubationCount        *int64   `json:"incubation_count"`
	MentorCount            *int64   `json:"mentor_count"`
	PartnershipCount       *int64   `json:"partnership_count"`
	ViewsCount             *int64   `json:"views_count"`
	LikesCount             int64    `json:"likes_count"`
	BookmarksCount         int64    `json:"bookmarks_count"`
}

// ScoreDetail is the score breakdown for a single venture.
// DefaultedMetrics lists raw metrics that were absent and scored as zero.
type ScoreDetail struct {
	ID               int64      `json:"id"`
	CompanyName      string     `json:"company_name"`
	Industry         string     `json:"industry"`
	Status           string     `json:"status"`
	OverallScore     int        `json:"overall_score"`
	GrowthScore      int        `json:"growth_score"`
	InvestmentScore  int        `json:"investment_score"`
	EcosystemScore   int        `json:"ecosystem_score"`
	EngagementScore  int        `json:"engagement_score"`
	Metrics          RawMetrics `json:"metrics"`
	DefaultedMetrics []string   `json:"defaulted_metrics,omitempty"`
}

// RawMetricsOf copies the stored metrics of v into a RawMetrics echo.
//
//nolint:gocritic // hugeParam: Venture is read-only here
func RawMetricsOf(v Venture) RawMetrics {
	return RawMetrics{
		AnnualRevenue:          v.AnnualRevenue,
		AverageGrowthRate:      v.AverageGrowthRate,
		SurvivalRate:           v.SurvivalRate,
		PaidUpCapital:          v.PaidUpCapital,
		TotalFundingReceived:   v.TotalFundingReceived,
		GovernmentGrants:       v.GovernmentGrants,
		FundingRounds:          v.FundingRounds,
		ForeignInvestmentCount: v.ForeignInvestmentCount,
		IncubationCount:        v.IncubationCount,
		MentorCount:            v.MentorCount,
		PartnershipCount:       v.PartnershipCount,
		ViewsCount:             v.ViewsCount,
		LikesCount:             v.LikesCount,
		BookmarksCount:         v.BookmarksCount,
	}
}

// CacheStatsResponse is the payload of the ranking cache statistics endpoint.
// HitRate is a percentage in [0,100].
type CacheStatsResponse struct {
	Backend     string  `json:"backend"`
	Hits        int64   `json:"hits"`
	Misses      int64   `json:"misses"`
	Bypasses    int64   `json:"bypasses"`
	Evictions   int64   `json:"evictions"`
	Expirations int64   `json:"expirations"`
	Errors      int64   `json:"errors"`
	Size        int     `json:"size"`
	Capacity    int     `json:"capacity"`
	HitRate     float64 `json:"hit_rate"`
	TTLSeconds  float64 `json:"ttl_seconds"`
}
