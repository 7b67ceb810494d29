// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package catalog

import (
	"errors"
	"math"
	"math/rand/v2"
	"reflect"
	"testing"
)

func mustMatrix(t *testing.T, rows [][]float32) *Matrix {
	t.Helper()
	m, err := MatrixFromRows(rows)
	if err != nil {
		t.Fatalf("MatrixFromRows: %v", err)
	}
	return m
}

func identity(n int) *Matrix {
	m := NewMatrix(n)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}

func sampleItems() []Item {
	return []Item{
		NewItem("Toy Story", "862", "Animation Comedy Family", Year(1995)),
		NewItem("Heat", "949", "Action Crime Drama", Year(1995)),
		NewItem("Up", "14160", "animation Adventure", Year(2009)),
		NewItem("Heat", "11", "Drama", nil),
	}
}

func TestNew_StructuralErrors(t *testing.T) {
	t.Parallel()

	nan := float32(math.NaN())

	tests := []struct {
		name   string
		items  []Item
		matrix *Matrix
		want   error
	}{
		{"empty", nil, NewMatrix(0), ErrEmptyCatalog},
		{"nil matrix", sampleItems(), nil, ErrDimensionMismatch},
		{"too small", sampleItems(), identity(3), ErrDimensionMismatch},
		{"too large", sampleItems()[:2], identity(3), ErrDimensionMismatch},
		{"nan", sampleItems()[:2], mustMatrix(t, [][]float32{{1, nan}, {nan, 1}}), ErrNonFinite},
		{"asymmetric", sampleItems()[:2], mustMatrix(t, [][]float32{{1, 0.9}, {0.1, 1}}), ErrAsymmetric},
		{"empty title", []Item{NewItem(" ", "1", "Drama", nil)}, identity(1), ErrInvalidItem},
		{"empty id", []Item{NewItem("X", "", "Drama", nil)}, identity(1), ErrInvalidItem},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New(tt.items, tt.matrix)
			if !errors.Is(err, tt.want) {
				t.Fatalf("New() error = %v, want %v", err, tt.want)
			}
			if !errors.Is(err, ErrStructural) {
				t.Errorf("error %v should match ErrStructural", err)
			}
		})
	}
}

func TestMatrixFromRows_Ragged(t *testing.T) {
	t.Parallel()

	_, err := MatrixFromRows([][]float32{{1, 0}, {0}})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestNew_ToleratesFloatNoise(t *testing.T) {
	t.Parallel()

	m := mustMatrix(t, [][]float32{{1, 0.50001}, {0.5, 1}})
	if _, err := New(sampleItems()[:2], m); err != nil {
		t.Fatalf("New() unexpected error: %v", err)
	}
}

func TestCatalog_IndexFirstOccurrence(t *testing.T) {
	t.Parallel()

	c, err := New(sampleItems(), identity(4))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	i, ok := c.Index("Heat")
	if !ok || i != 1 {
		t.Errorf("Index(Heat) = %d, %v; want 1, true", i, ok)
	}
	if _, ok := c.Index("heat"); ok {
		t.Error("Index should be case-sensitive")
	}
	if !c.IsDuplicateTitle("Heat") || c.IsDuplicateTitle("Up") {
		t.Error("IsDuplicateTitle mismatch")
	}
	if got := c.DuplicateTitles(); !reflect.DeepEqual(got, []string{"Heat"}) {
		t.Errorf("DuplicateTitles = %v", got)
	}
	if i, ok := c.IndexByMovieID("14160"); !ok || i != 2 {
		t.Errorf("IndexByMovieID = %d, %v", i, ok)
	}
	if c.Item(3).Index != 3 {
		t.Errorf("Item(3).Index = %d", c.Item(3).Index)
	}
}

func TestCatalog_GenresAndYears(t *testing.T) {
	t.Parallel()

	c, err := New(sampleItems(), identity(4))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	want := []string{"Action", "Adventure", "Animation", "Comedy", "Crime", "Drama", "Family"}
	if got := c.Genres(); !reflect.DeepEqual(got, want) {
		t.Errorf("Genres() = %v, want %v", got, want)
	}

	lo, hi, ok := c.YearRange()
	if !ok || lo != 1995 || hi != 2009 {
		t.Errorf("YearRange() = %d, %d, %v", lo, hi, ok)
	}
	if got := c.Years(); !reflect.DeepEqual(got, []int{1995, 2009}) {
		t.Errorf("Years() = %v", got)
	}
}

func TestCatalog_YearRangeUnknown(t *testing.T) {
	t.Parallel()

	c, err := New([]Item{NewItem("X", "1", "Drama", nil)}, identity(1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, _, ok := c.YearRange(); ok {
		t.Error("YearRange should report unknown")
	}
}

func TestCatalog_Filter(t *testing.T) {
	t.Parallel()

	c, err := New(sampleItems(), identity(4))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	titles := func(items []Item) []string {
		out := make([]string, 0, len(items))
		for _, it := range items {
			out = append(out, it.Title)
		}
		return out
	}

	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{"all", Query{}, []string{"Toy Story", "Heat", "Up", "Heat"}},
		{"genre case-insensitive", Query{Genre: "ANIMATION"}, []string{"Toy Story", "Up"}},
		{"year range drops unknown", Query{YearFrom: 1990, YearTo: 2000}, []string{"Toy Story", "Heat"}},
		{"newest first", Query{NewestFirst: true}, []string{"Up", "Toy Story", "Heat", "Heat"}},
		{"limit", Query{NewestFirst: true, Limit: 1}, []string{"Up"}},
		{"predicate", Query{Predicate: func(it Item) bool { return it.MovieID == "11" }}, []string{"Heat"}},
		{"no match", Query{Genre: "Western"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := titles(c.Filter(tt.query)); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCatalog_Random(t *testing.T) {
	t.Parallel()

	c, err := New(sampleItems(), identity(4))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rng := rand.New(rand.NewPCG(1, 2))

	for i := 0; i < 20; i++ {
		it, ok := c.Random(rng, func(it Item) bool { return it.HasGenre("Animation") })
		if !ok || !it.HasGenre("animation") {
			t.Fatalf("Random returned %+v, %v", it, ok)
		}
	}
	if _, ok := c.Random(rng, func(Item) bool { return false }); ok {
		t.Error("Random with no eligible items should report false")
	}
}

func TestCatalog_ItemsAreCopies(t *testing.T) {
	t.Parallel()

	c, err := New(sampleItems(), identity(4))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	items := c.Items()
	items[0].Title = "changed"
	items[0].Genres[0] = "changed"
	if c.Item(0).Title != "Toy Story" {
		t.Error("Items() must not alias catalog storage")
	}
}

func TestParseGenres(t *testing.T) {
	t.Parallel()

	got := ParseGenres("  Animation  Comedy animation\tFamily ")
	want := []string{"Animation", "Comedy", "Family"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseGenres = %v, want %v", got, want)
	}
	if ParseGenres("") != nil {
		t.Error("empty string should parse to nil")
	}
}

func TestCatalog_DuplicateMovieIDs(t *testing.T) {
	t.Parallel()

	items := []Item{
		NewItem("Toy Story", "862", "Animation", nil),
		NewItem("Toy Story (re-release)", "862", "Animation", nil),
		NewItem("Heat", "949", "Crime", nil),
		NewItem("Toy Story (4K)", "862", "Animation", nil),
	}
	c, err := New(items, identity(4))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if i, ok := c.IndexByMovieID("862"); !ok || i != 0 {
		t.Errorf("IndexByMovieID(862) = %d, %v; want 0, true", i, ok)
	}
	tests := []struct {
		id   string
		want bool
	}{
		{"862", true},
		{"949", false},
		{"1", false},
	}
	for _, tt := range tests {
		if got := c.IsDuplicateMovieID(tt.id); got != tt.want {
			t.Errorf("IsDuplicateMovieID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
	if got := c.DuplicateMovieIDs(); !reflect.DeepEqual(got, []string{"862"}) {
		t.Errorf("DuplicateMovieIDs = %v, want [862]", got)
	}

	got := c.DuplicateMovieIDs()
	got[0] = "mutated"
	if !c.IsDuplicateMovieID("862") || c.DuplicateMovieIDs()[0] != "862" {
		t.Error("DuplicateMovieIDs should return a copy")
	}
}

func TestItem_HasGenre(t *testing.T) {
	t.Parallel()

	built := NewItem("Toy Story", "862", "Animation Comedy", nil)
	literal := Item{Genres: []string{"ANIMATION", "Family"}}

	tests := []struct {
		name string
		item Item
		tag  string
		want bool
	}{
		{"exact", built, "Animation", true},
		{"lower", built, "comedy", true},
		{"padded", built, "  COMEDY ", true},
		{"absent", built, "Drama", false},
		{"empty", built, "", false},
		{"literal item", literal, "animation", true},
		{"literal absent", literal, "Comedy", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.item.HasGenre(tt.tag); got != tt.want {
				t.Errorf("HasGenre(%q) = %v, want %v", tt.tag, got, tt.want)
			}
			if got := tt.item.HasFoldedGenre(FoldGenre(tt.tag)); got != tt.want {
				t.Errorf("HasFoldedGenre(%q) = %v, want %v", tt.tag, got, tt.want)
			}
		})
	}
}

func TestItem_HasFoldedGenreDoesNotAllocate(t *testing.T) {
	c, err := New(sampleItems(), identity(4))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	it := c.Item(0)
	key := FoldGenre("comedy")

	allocs := testing.AllocsPerRun(100, func() {
		if !it.HasFoldedGenre(key) {
			t.Fatal("expected comedy match")
		}
	})
	if allocs != 0 {
		t.Errorf("HasFoldedGenre allocated %.0f times per call, want 0", allocs)
	}
}
