// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// Item is one movie row. Index is its row in the similarity matrix.
type Item struct {
	Index       int      `json:"index"`
	Title       string   `json:"title"`
	MovieID     string   `json:"movie_id"`
	Genres      []string `json:"genres"`
	RawGenres   string   `json:"-"`
	ReleaseYear *int     `json:"release_year,omitempty"`

	// folded holds Genres case-folded, index for index.
	folded []string
}

// NewItem builds an item from raw artifact columns. genres is the
// whitespace-separated tag string stored alongside the matrix.
func NewItem(title, movieID, genres string, releaseYear *int) Item {
	parsed := ParseGenres(genres)
	return Item{
		Title:       title,
		MovieID:     movieID,
		Genres:      parsed,
		RawGenres:   genres,
		ReleaseYear: releaseYear,
		folded:      foldGenres(parsed),
	}
}

// ParseGenres splits a tag string on whitespace, dropping duplicates while
// keeping first-seen order.
func ParseGenres(raw string) []string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(fields))
	out := fields[:0]
	for _, f := range fields {
		key := FoldGenre(f)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, f)
	}
	return out
}

// HasGenre reports whether the item carries tag, ignoring case.
func (it Item) HasGenre(tag string) bool {
	return it.HasFoldedGenre(FoldGenre(tag))
}

// HasFoldedGenre is HasGenre for a tag already passed through FoldGenre.
// Predicates applied to every row fold their tag once and call this.
func (it Item) HasFoldedGenre(key string) bool {
	if key == "" {
		return false
	}
	folded := it.folded
	if len(folded) != len(it.Genres) {
		// Built as a literal rather than through NewItem or New.
		folded = foldGenres(it.Genres)
	}
	for _, g := range folded {
		if g == key {
			return true
		}
	}
	return false
}

// Year returns the release year and whether it is known.
func (it Item) Year() (int, bool) {
	if it.ReleaseYear == nil {
		return 0, false
	}
	return *it.ReleaseYear, true
}

// FoldGenre normalizes a genre tag for comparison. cases.Caser is
// stateful, so each call gets its own.
func FoldGenre(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

func foldGenres(genres []string) []string {
	if len(genres) == 0 {
		return nil
	}
	fold := cases.Fold()
	out := make([]string, len(genres))
	for i, g := range genres {
		out[i] = fold.String(strings.TrimSpace(g))
	}
	return out
}

// Year is a helper for building items with a known release year.
func Year(y int) *int {
	return &y
}
