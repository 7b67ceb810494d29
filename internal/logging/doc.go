// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

// Package logging provides the zerolog-based structured logger used by every
// NextBinge binary.
//
// The server logs JSON; the CLI switches to console output when stderr is a
// terminal. Components derive child loggers with WithComponent, HTTP handlers
// use Ctx so that request and correlation ids travel with each line.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//	logging.Info().Int("items", n).Msg("Catalog loaded")
//	logging.Ctx(ctx).Warn().Str("title", title).Msg("Title not in catalog")
//
// # Environment
//
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include file:line (default: false)
//
// # Suture
//
// NewSlogLogger bridges log/slog onto the global zerolog logger so the
// supervisor tree (sutureslog) writes through the same sink.
package logging
