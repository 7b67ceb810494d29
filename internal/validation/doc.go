// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

// Package validation wraps go-playground/validator v10 for API request
// structs.
//
// Field names in error messages come from the `query` struct tag, so a
// failure on
//
//	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
//
// reads "limit must be at most 100", matching what the client sent.
//
// Custom tags:
//   - movietitle: printable text without control characters
//   - genretag: a single whitespace-free genre token
package validation
