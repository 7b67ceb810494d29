// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

// Package metrics registers the Prometheus collectors exported on /metrics.
//
// Collectors are package-level promauto variables; callers use the Record*
// helpers so label values stay consistent:
//
//	metrics.RecordRecommendation("ok", true, time.Since(start))
//	metrics.RecordCacheLookup("metadata", hit)
package metrics
