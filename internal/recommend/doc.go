// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

// Package recommend implements the similarity recommender: given a title,
// return the movies whose precomputed similarity to it is highest.
//
// # Algorithm
//
//  1. Resolve the title to the first catalog row carrying it (exact match).
//  2. Pair every other row with its score from the similarity matrix.
//  3. Drop candidates that fail the eligibility predicate.
//  4. Drop the source row itself (by index, never by score).
//  5. Sort by score descending; equal scores keep ascending row order.
//  6. Keep the first Limit.
//
// # Outcomes
//
// Recommend never fails. A title missing from the catalog yields
// StatusNotFound; a predicate that rejects every candidate yields
// StatusNoEligibleCandidates. Both return an empty item list.
//
// # Profiles
//
// The kids experience is the same call with a genre predicate:
//
//	res := r.Recommend("Toy Story", recommend.Options{
//	    RestrictTo: recommend.ProfileKids.Predicate("Animation"),
//	    Limit:      10,
//	})
//
// # Thread Safety
//
// A Recommender only reads its immutable catalog and keeps no per-call
// state, so it may be shared freely across goroutines.
package recommend
