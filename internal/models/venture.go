// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package models

// StatusApproved is the only venture status eligible for ranking.
// Comparison against stored status values is case-insensitive.
const StatusApproved = "Approved"

// Venture represents a venture profile as loaded from the venture store.
//
// Raw metrics are pointers because the store may hold NULL for any of them.
// They are coerced to zero exactly once, when scoring inputs are built
// (see scoring.InputsFromVenture), and are echoed unmodified in score details.
//
// Profile text fields are plain strings; an empty or whitespace-only value
// counts as unfilled for profile completeness. HasPhoto reports whether a
// non-empty photo is stored, without loading the photo itself.
type Venture struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"company_name"`
	Status      string `json:"status"`
	Industry    string `json:"industry"`

	// Profile fields
	Description   string `json:"description,omitempty"`
	FoundingDate  string `json:"founding_date,omitempty"`
	FundingStage  string `json:"funding_stage,omitempty"`
	BusinessModel string `json:"business_model,omitempty"`
	FounderName   string `json:"founder_name,omitempty"`
	ContactEmail  string `json:"contact_email,omitempty"`
	ContactPhone  string `json:"contact_phone,omitempty"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	Region        string `json:"region,omitempty"`
	Country       string `json:"country,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	HasPhoto      bool   `json:"has_photo"`

	// Social links
	Website   string `json:"website,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`

	// Financial metrics
	AnnualRevenue        *float64 `json:"annual_revenue,omitempty"`
	AverageGrowthRate    *float64 `json:"average_growth_rate,omitempty"`
	SurvivalRate         *float64 `json:"survival_rate,omitempty"`
	PaidUpCapital        *float64 `json:"paid_up_capital,omitempty"`
	TotalFundingReceived *float64 `json:"total_funding_received,omitempty"`
	GovernmentGrants     *float64 `json:"government_grants,omitempty"`

	// Count metrics
	FundingRounds          *int64 `json:"funding_rounds,omitempty"`
	ForeignInvestmentCount *int64 `json:"foreign_investment_count,omitempty"`
	IncubationCount        *int64 `json:"incubation_count,omitempty"`
	MentorCount            *int64 `json:"mentor_count,omitempty"`
	PartnershipCount       *int64 `json:"partnership_count,omitempty"`

	// Platform engagement
	ViewsCount     *int64 `json:"views_count,omitempty"`
	LikesCount     int64  `json:"likes_count"`
	BookmarksCount int64  `json:"bookmarks_count"`
}
