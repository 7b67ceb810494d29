// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

// Package middleware provides the HTTP middleware shared by the API router:
// request id propagation into the logging context and Prometheus request
// instrumentation.
package middleware
