// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

// Package validation provides struct validation using go-playground/validator v10.
//
// The API handlers bind path and query parameters into small request structs
// and validate them here before calling the ranking service. Most ranking
// inputs are normalized rather than rejected (an unknown metric ranks by
// overall score), so validation only guards what cannot be normalized: a
// venture ID that is not a positive integer, or free-text parameters that are
// oversized or carry control characters.
//
// # Quick Start
//
//	type rankingsQuery struct {
//	    Industry string `query:"industry" validate:"max=100,nocontrol"`
//	    Metric   string `query:"metric" validate:"max=32,nocontrol"`
//	}
//
//	if verr := validation.ValidateStruct(&q); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, verr)
//	    return
//	}
//
// # Field Names
//
// Error messages use the `query`, `path` or `json` tag name, falling back to
// the Go field name, so "industry must be at most 100 characters" names the
// parameter the client actually sent.
//
// # Custom Tags
//
//   - nocontrol: string contains no Unicode control characters
//
// # Thread Safety
//
// The singleton validator is initialized once and safe for concurrent use.
package validation
