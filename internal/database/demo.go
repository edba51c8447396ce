// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package database

import (
	"fmt"
	"strings"

	"github.com/tomtom215/ventureboard/internal/models"
)

// demoIndustries cycles through demo ventures.
var demoIndustries = []string{"Fintech", "Healthtech", "Agritech", "Edtech", "Clean Energy", "Logistics"}

// demoStatuses gives most demo ventures Approved status.
var demoStatuses = []string{"Approved", "Approved", "Approved", "Pending", "Approved", "Rejected", "Approved", "InReview"}

// demoPhoto is a PNG signature; only its presence is scored.
var demoPhoto = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// DemoVentures returns a deterministic demo data set of 48 ventures spread
// over six industries, with a mix of statuses, sparse metrics and partially
// filled profiles.
func DemoVentures() []SeedVenture {
	const n = 48
	out := make([]SeedVenture, 0, n)

	for i := 1; i <= n; i++ {
		industry := demoIndustries[i%len(demoIndustries)]
		name := fmt.Sprintf("%s Venture %02d", industry, i)
		slug := strings.ToLower(strings.ReplaceAll(name, " ", "-"))

		v := models.Venture{
			ID:          int64(i),
			CompanyName: name,
			Status:      demoStatuses[i%len(demoStatuses)],
			Industry:    industry,
			Description: fmt.Sprintf("Demo %s company number %d", strings.ToLower(industry), i),
			Country:     "PH",

			AnnualRevenue:        demoFloat(i, 7, float64(i%13)*37e6),
			AverageGrowthRate:    demoFloat(i, 5, float64((i*17)%120)),
			SurvivalRate:         demoFloat(i, 11, float64(40+(i*7)%61)),
			PaidUpCapital:        demoFloat(i, 9, float64(i%9)*12e6),
			TotalFundingReceived: demoFloat(i, 6, float64((i*5)%23)*5e6),
			GovernmentGrants:     demoFloat(i, 4, float64(i%5)*2e6),

			FundingRounds:          demoInt(i, 8, int64(i%12)),
			ForeignInvestmentCount: demoInt(i, 3, int64(i%3)),
			IncubationCount:        demoInt(i, 5, int64(i%2)),
			MentorCount:            demoInt(i, 7, int64((i*3)%60)),
			PartnershipCount:       demoInt(i, 10, int64((i*2)%25)),
			ViewsCount:             demoInt(i, 12, int64((i*431)%12000)),

			LikesCount:     int64((i * 7) % 40),
			BookmarksCount: int64((i * 3) % 20),
		}

		// Profile and social fields fill in progressively.
		if i%2 == 0 {
			v.FoundingDate = fmt.Sprintf("20%02d-%02d-01", 10+i%14, 1+i%12)
			v.FundingStage = []string{"Pre-seed", "Seed", "Series A", "Series B"}[i%4]
			v.Website = "https://" + slug + ".example.com"
		}
		if i%3 == 0 {
			v.BusinessModel = []string{"B2B", "B2C", "B2B2C"}[i%3]
			v.FounderName = fmt.Sprintf("Founder %d", i)
			v.LinkedIn = slug
		}
		if i%4 != 1 {
			v.ContactEmail = "hello@" + slug + ".example.com"
			v.City = "Manila"
			v.Region = "NCR"
		}
		if i%5 == 0 {
			v.ContactPhone = fmt.Sprintf("+63 2 555 %04d", i)
			v.Address = fmt.Sprintf("%d Ayala Avenue", i*10)
			v.PostalCode = "1226"
			v.Twitter = "@" + strings.ReplaceAll(slug, "-", "")
			v.Facebook = slug
			v.Instagram = slug
		}

		seed := SeedVenture{Venture: v}
		if i%3 != 2 {
			seed.Photo = demoPhoto
		}
		out = append(out, seed)
	}

	return out
}

// demoFloat leaves every nullEvery-th value NULL.
func demoFloat(i, nullEvery int, value float64) *float64 {
	if i%nullEvery == 0 {
		return nil
	}
	return &value
}

func demoInt(i, nullEvery int, value int64) *int64 {
	if i%nullEvery == 0 {
		return nil
	}
	return &value
}
