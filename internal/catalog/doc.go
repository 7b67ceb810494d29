// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

// Package catalog holds the movie catalog and its pairwise similarity matrix.
//
// A Catalog is built once with New, which validates the structural invariants
// (non-empty, square matrix sized to the catalog, finite and symmetric
// scores). After construction nothing in the package mutates it, so a
// *Catalog may be shared by any number of goroutines without locking.
//
// Titles are not unique. Index resolves a title to its first occurrence;
// DuplicateTitles reports the titles that appear more than once.
//
// Structural errors all match errors.Is(err, ErrStructural).
package catalog
