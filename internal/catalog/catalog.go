// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package catalog

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
)

// Catalog is the immutable pairing of items with their similarity matrix.
type Catalog struct {
	items      []Item
	matrix     *Matrix
	byTitle    map[string]int
	byMovieID  map[string]int
	duplicates []string
	dupSet     map[string]struct{}
	dupIDs     []string
	dupIDSet   map[string]struct{}
	genres     []string
	years      []int
}

// New validates items against matrix and builds the lookup indexes.
// Item.Index is overwritten with the row position.
func New(items []Item, matrix *Matrix) (*Catalog, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}
	if matrix.Size() != len(items) {
		return nil, fmt.Errorf("%w: %d items, %d×%d matrix", ErrDimensionMismatch, len(items), matrix.Size(), matrix.Size())
	}
	if err := matrix.validate(); err != nil {
		return nil, err
	}

	c := &Catalog{
		items:     make([]Item, len(items)),
		matrix:    matrix,
		byTitle:   make(map[string]int, len(items)),
		byMovieID: make(map[string]int, len(items)),
	}

	c.dupSet = make(map[string]struct{})
	c.dupIDSet = make(map[string]struct{})
	genreSet := make(map[string]string)
	yearSet := make(map[int]struct{})

	for i, it := range items {
		if strings.TrimSpace(it.Title) == "" {
			return nil, fmt.Errorf("%w: row %d has an empty title", ErrInvalidItem, i)
		}
		if strings.TrimSpace(it.MovieID) == "" {
			return nil, fmt.Errorf("%w: row %d (%q) has an empty movie id", ErrInvalidItem, i, it.Title)
		}

		it.Index = i
		it.Genres = append([]string(nil), it.Genres...)
		it.folded = foldGenres(it.Genres)
		if it.ReleaseYear != nil {
			y := *it.ReleaseYear
			it.ReleaseYear = &y
			yearSet[y] = struct{}{}
		}
		c.items[i] = it

		if _, ok := c.byTitle[it.Title]; ok {
			if _, noted := c.dupSet[it.Title]; !noted {
				c.dupSet[it.Title] = struct{}{}
				c.duplicates = append(c.duplicates, it.Title)
			}
		} else {
			c.byTitle[it.Title] = i
		}
		if _, ok := c.byMovieID[it.MovieID]; ok {
			if _, noted := c.dupIDSet[it.MovieID]; !noted {
				c.dupIDSet[it.MovieID] = struct{}{}
				c.dupIDs = append(c.dupIDs, it.MovieID)
			}
		} else {
			c.byMovieID[it.MovieID] = i
		}

		for k, g := range it.Genres {
			key := it.folded[k]
			if _, ok := genreSet[key]; !ok {
				genreSet[key] = g
			}
		}
	}

	c.genres = make([]string, 0, len(genreSet))
	for _, g := range genreSet {
		c.genres = append(c.genres, g)
	}
	sort.Strings(c.genres)

	c.years = make([]int, 0, len(yearSet))
	for y := range yearSet {
		c.years = append(c.years, y)
	}
	sort.Ints(c.years)

	return c, nil
}

// Len returns the number of items.
func (c *Catalog) Len() int { return len(c.items) }

// Item returns the item at row i. Its Genres slice is shared and read-only.
func (c *Catalog) Item(i int) Item { return c.items[i] }

// Items returns a deep copy of the ordered items.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	for i, it := range c.items {
		it.Genres = append([]string(nil), it.Genres...)
		out[i] = it
	}
	return out
}

// Matrix returns the similarity matrix. Callers must treat it as read-only.
func (c *Catalog) Matrix() *Matrix { return c.matrix }

// Index resolves title to the first row carrying it (exact, case-sensitive).
func (c *Catalog) Index(title string) (int, bool) {
	i, ok := c.byTitle[title]
	return i, ok
}

// IndexByMovieID resolves a movie id to its first row.
func (c *Catalog) IndexByMovieID(id string) (int, bool) {
	i, ok := c.byMovieID[id]
	return i, ok
}

// IsDuplicateTitle reports whether title occurs on more than one row.
func (c *Catalog) IsDuplicateTitle(title string) bool {
	_, ok := c.dupSet[title]
	return ok
}

// DuplicateTitles lists titles occurring more than once, in first-seen order.
func (c *Catalog) DuplicateTitles() []string {
	return append([]string(nil), c.duplicates...)
}

// IsDuplicateMovieID reports whether id occurs on more than one row.
func (c *Catalog) IsDuplicateMovieID(id string) bool {
	_, ok := c.dupIDSet[id]
	return ok
}

// DuplicateMovieIDs lists movie ids occurring more than once, in first-seen
// order.
func (c *Catalog) DuplicateMovieIDs() []string {
	return append([]string(nil), c.dupIDs...)
}

// Genres returns the sorted distinct genre tags.
func (c *Catalog) Genres() []string {
	return append([]string(nil), c.genres...)
}

// Years returns the sorted distinct release years.
func (c *Catalog) Years() []int {
	return append([]int(nil), c.years...)
}

// YearRange returns the earliest and latest release year. ok is false when
// no item has a year.
func (c *Catalog) YearRange() (minYear, maxYear int, ok bool) {
	if len(c.years) == 0 {
		return 0, 0, false
	}
	return c.years[0], c.years[len(c.years)-1], true
}

// Query selects items for listing.
type Query struct {
	// Genre keeps items carrying the tag (case-insensitive). Empty keeps all.
	Genre string
	// YearFrom and YearTo bound the release year inclusively; 0 is unbounded.
	// Items without a year are dropped when either bound is set.
	YearFrom int
	YearTo   int
	// Predicate is an extra eligibility test, e.g. a content profile.
	Predicate func(Item) bool
	// NewestFirst orders by release year descending, then row.
	NewestFirst bool
	// Limit caps the result; 0 means no cap.
	Limit int
}

// Filter returns the items matching q, in row order unless NewestFirst.
func (c *Catalog) Filter(q Query) []Item {
	out := make([]Item, 0)
	genreKey := FoldGenre(q.Genre)
	for _, it := range c.items {
		if q.matches(it, genreKey) {
			out = append(out, it)
		}
	}
	if q.NewestFirst {
		sort.SliceStable(out, func(a, b int) bool {
			ya, oka := out[a].Year()
			yb, okb := out[b].Year()
			if oka != okb {
				return oka
			}
			return ya > yb
		})
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}

// genreKey is q.Genre after FoldGenre.
func (q Query) matches(it Item, genreKey string) bool {
	if q.Genre != "" && !it.HasFoldedGenre(genreKey) {
		return false
	}
	if q.YearFrom != 0 || q.YearTo != 0 {
		y, ok := it.Year()
		if !ok {
			return false
		}
		if q.YearFrom != 0 && y < q.YearFrom {
			return false
		}
		if q.YearTo != 0 && y > q.YearTo {
			return false
		}
	}
	if q.Predicate != nil && !q.Predicate(it) {
		return false
	}
	return true
}

// Random picks a uniformly random item satisfying predicate (nil accepts all).
func (c *Catalog) Random(rng *rand.Rand, predicate func(Item) bool) (Item, bool) {
	eligible := c.Filter(Query{Predicate: predicate})
	if len(eligible) == 0 {
		return Item{}, false
	}
	if rng == nil {
		return eligible[rand.IntN(len(eligible))], true
	}
	return eligible[rng.IntN(len(eligible))], true
}
