// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

// Package similarity builds the item-item similarity matrix offline.
//
// The score between two movies is a weighted blend of genre and release
// year agreement:
//
//	sim(a, b) = w_genre * cosine(tags_a, tags_b) + w_year * year(a, b)
//	year(a, b) = max(0, 1 - |year_a - year_b| / MaxYearDifference)
//
// Genre tags are a binary bag of words (case-folded), so cosine reduces to
// |A ∩ B| / sqrt(|A| * |B|). When either year is unknown the year term is
// a neutral 0.5, so undated items rank below same-year matches with equal
// genres. The diagonal is 1.
//
// Rows are computed in parallel; only the upper triangle is evaluated and
// mirrored, so the result is exactly symmetric.
package similarity
