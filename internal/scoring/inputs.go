// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package scoring

import (
	"strings"

	"github.com/tomtom215/ventureboard/internal/models"
)

// Inputs are the normalized, non-null scoring inputs of one venture.
type Inputs struct {
	AnnualRevenue     float64
	AverageGrowthRate float64
	SurvivalRate      float64
	PaidUpCapital     float64
	TotalFunding      float64
	GovernmentGrants  float64

	FundingRounds          int64
	ForeignInvestmentCount int64
	IncubationCount        int64
	MentorCount            int64
	PartnershipCount       int64

	Views     int64
	Likes     int64
	Bookmarks int64

	// ProfileFilled counts filled entries of ProfileChecklist.
	ProfileFilled int
	// SocialLinks counts non-blank social links.
	SocialLinks int

	// Defaulted names the raw metrics that were absent and coerced to zero.
	Defaulted []string
}

// ProfileField is one entry of the profile completeness checklist.
type ProfileField struct {
	Name   string
	Filled func(v *models.Venture) bool
}

// ProfileChecklist lists the venture profile fields counted by
// ProfileCompleteness. It must be kept in step with models.Venture.
var ProfileChecklist = []ProfileField{
	textField("company_name", func(v *models.Venture) string { return v.CompanyName }),
	textField("description", func(v *models.Venture) string { return v.Description }),
	textField("founding_date", func(v *models.Venture) string { return v.FoundingDate }),
	textField("industry", func(v *models.Venture) string { return v.Industry }),
	textField("funding_stage", func(v *models.Venture) string { return v.FundingStage }),
	textField("business_model", func(v *models.Venture) string { return v.BusinessModel }),
	textField("founder_name", func(v *models.Venture) string { return v.FounderName }),
	textField("contact_email", func(v *models.Venture) string { return v.ContactEmail }),
	textField("contact_phone", func(v *models.Venture) string { return v.ContactPhone }),
	textField("address", func(v *models.Venture) string { return v.Address }),
	textField("city", func(v *models.Venture) string { return v.City }),
	textField("region", func(v *models.Venture) string { return v.Region }),
	textField("country", func(v *models.Venture) string { return v.Country }),
	textField("postal_code", func(v *models.Venture) string { return v.PostalCode }),
	{Name: "photo", Filled: func(v *models.Venture) bool { return v.HasPhoto }},
}

func textField(name string, get func(v *models.Venture) string) ProfileField {
	return ProfileField{
		Name:   name,
		Filled: func(v *models.Venture) bool { return !isBlank(get(v)) },
	}
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// InputsFromVenture coerces the nullable raw metrics of v to their zero
// defaults and counts filled profile fields and social links.
func InputsFromVenture(v *models.Venture) Inputs {
	in := Inputs{
		Likes:     nonNegativeInt(v.LikesCount),
		Bookmarks: nonNegativeInt(v.BookmarksCount),
	}

	in.AnnualRevenue = floatOrZero(v.AnnualRevenue, "annual_revenue", &in.Defaulted)
	in.AverageGrowthRate = floatOrZero(v.AverageGrowthRate, "average_growth_rate", &in.Defaulted)
	in.SurvivalRate = floatOrZero(v.SurvivalRate, "survival_rate", &in.Defaulted)
	in.PaidUpCapital = floatOrZero(v.PaidUpCapital, "paid_up_capital", &in.Defaulted)
	in.TotalFunding = floatOrZero(v.TotalFundingReceived, "total_funding_received", &in.Defaulted)
	in.GovernmentGrants = floatOrZero(v.GovernmentGrants, "government_grants", &in.Defaulted)

	in.FundingRounds = intOrZero(v.FundingRounds, "funding_rounds", &in.Defaulted)
	in.ForeignInvestmentCount = intOrZero(v.ForeignInvestmentCount, "foreign_investment_count", &in.Defaulted)
	in.IncubationCount = intOrZero(v.IncubationCount, "incubation_count", &in.Defaulted)
	in.MentorCount = intOrZero(v.MentorCount, "mentor_count", &in.Defaulted)
	in.PartnershipCount = intOrZero(v.PartnershipCount, "partnership_count", &in.Defaulted)
	in.Views = intOrZero(v.ViewsCount, "views_count", &in.Defaulted)

	for _, field := range ProfileChecklist {
		if field.Filled(v) {
			in.ProfileFilled++
		}
	}

	for _, link := range []string{v.Website, v.LinkedIn, v.Twitter, v.Facebook, v.Instagram} {
		if !isBlank(link) {
			in.SocialLinks++
		}
	}

	return in
}

func floatOrZero(p *float64, name string, defaulted *[]string) float64 {
	if p == nil {
		*defaulted = append(*defaulted, name)
		return 0
	}
	if *p < 0 {
		return 0
	}
	return *p
}

func intOrZero(p *int64, name string, defaulted *[]string) int64 {
	if p == nil {
		*defaulted = append(*defaulted, name)
		return 0
	}
	return nonNegativeInt(*p)
}

func nonNegativeInt(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}
