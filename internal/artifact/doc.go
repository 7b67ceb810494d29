// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

// Package artifact reads and writes the persisted recommender artifact.
//
// The artifact is a single zstd-compressed Parquet file with one row per
// movie. Besides the catalog columns each row carries its full similarity
// row, so the file is self-describing and N rows hold the N×N matrix:
//
//	row          int32     position, 0..N-1 in file order
//	title        string
//	movie_id     string
//	genres       string    whitespace-separated tags
//	release_year int32     optional
//	similarity   []float   N scores
//
// Load verifies the schema before reading any data and returns errors that
// match catalog.ErrStructural, which the server treats as fatal.
//
// ReadCatalogCSV imports the plain metadata table the builder starts from.
package artifact
