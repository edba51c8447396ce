// Ventureboard - Venture Scoring and Ranking Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ventureboard

/*
Package models defines data structures for the Ventureboard application.

This package contains the venture record as loaded from the venture store, the
scored ranking rows produced by the ranking package, and the API
request/response structures. It serves as the single source of truth for data
structure definitions shared across packages.

Model Categories:

1. Store Models:
  - Venture: venture profile and raw metrics, nullable metrics as pointers

2. Ranking Models:
  - ScoredVenture: a venture paired with its computed scores
  - RankingEntry, RankingsResponse: full ranking listing
  - TopRankingEntry: compact top-N listing row
  - ScoreDetail, RawMetrics: single venture score breakdown

3. API Models:
  - APIResponse: standard response wrapper
  - APIError: error details
  - Metadata: response metadata (timestamp, query time, cache flag)

JSON Serialization:

All models use snake_case JSON tags and are serialized with goccy/go-json.
Optional values use pointer types with omitempty where absence is meaningful.
*/
package models
