// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/ventureboard/internal/database"
	"github.com/tomtom215/ventureboard/internal/ranking"
)

// API error codes.
const (
	codeValidation         = "VALIDATION_ERROR"
	codeVentureNotFound    = "VENTURE_NOT_FOUND"
	codeRateLimited        = "RATE_LIMIT_EXCEEDED"
	codeServiceUnavailable = "SERVICE_UNAVAILABLE"
	codeInternal           = "INTERNAL_ERROR"
)

// apiErrorFor maps a service error to an HTTP status, error code and client
// message. Internal details never reach the client.
func apiErrorFor(err error) (status int, code, message string) {
	switch {
	case errors.Is(err, ranking.ErrVentureNotFound):
		return http.StatusNotFound, codeVentureNotFound, "Venture not found"
	case database.IsUnavailable(err):
		return http.StatusServiceUnavailable, codeServiceUnavailable, "Venture store temporarily unavailable"
	default:
		return http.StatusInternalServerError, codeInternal, "Failed to compute ranking"
	}
}
