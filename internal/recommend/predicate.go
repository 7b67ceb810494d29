// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package recommend

import "github.com/tomtom215/nextbinge/internal/catalog"

// HasGenre admits items tagged with genre (case-insensitive).
func HasGenre(genre string) Predicate {
	key := catalog.FoldGenre(genre)
	return func(it catalog.Item) bool { return it.HasFoldedGenre(key) }
}

// ReleasedBetween admits items whose release year lies in [from, to].
// Items without a year are rejected.
func ReleasedBetween(from, to int) Predicate {
	return func(it catalog.Item) bool {
		y, ok := it.Year()
		return ok && y >= from && y <= to
	}
}

// All admits an item only if every non-nil predicate does. With no
// predicates it returns nil (no restriction).
func All(preds ...Predicate) Predicate {
	active := make([]Predicate, 0, len(preds))
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}
	switch len(active) {
	case 0:
		return nil
	case 1:
		return active[0]
	}
	return func(it catalog.Item) bool {
		for _, p := range active {
			if !p(it) {
				return false
			}
		}
		return true
	}
}
