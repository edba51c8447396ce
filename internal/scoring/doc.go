// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

// Package scoring computes venture sub-scores and the weighted overall score.
//
// Every function in this package is pure: no I/O, no logging, no shared state.
// Raw metrics are normalized against fixed benchmarks with min(value/benchmark, 1),
// so each sub-score lies in [0, 1] and the overall score lies in [0, 100].
//
// Sub-scores:
//
//   - Growth: revenue, average growth rate, survival rate
//   - Investment: paid-up capital, funding received, funding rounds,
//     foreign investment (binary), government grants
//   - Ecosystem: incubation (binary), mentors, partnerships
//   - Engagement: profile completeness, social presence, platform engagement
//
// Overall = 100 x (0.3 Growth + 0.3 Investment + 0.2 Ecosystem + 0.2 Engagement).
//
// Absent metrics are coerced to zero once, in InputsFromVenture, which also
// records the names of the substituted metrics in Inputs.Defaulted.
//
// Example:
//
//	in := scoring.InputsFromVenture(&venture)
//	scores := scoring.Compute(in)
//	fmt.Println(scoring.RoundScore(scores.Overall), scoring.Percent(scores.Growth))
package scoring
