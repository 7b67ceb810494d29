// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package metadata

import (
	"testing"
	"time"
)

func newTestCache(t *testing.T, path string, ttl time.Duration) *Cache {
	t.Helper()
	c, err := OpenCache(path, ttl)
	if err != nil {
		t.Fatalf("OpenCache() error = %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCache_MovieRoundTrip(t *testing.T) {
	c := newTestCache(t, "", time.Hour)

	if _, ok := c.GetMovie(862); ok {
		t.Fatal("empty cache should miss")
	}
	in := &Movie{ID: 862, Title: "Toy Story", Cast: []string{"Tom Hanks"}}
	if err := c.SetMovie(862, in); err != nil {
		t.Fatalf("SetMovie() error = %v", err)
	}
	got, ok := c.GetMovie(862)
	if !ok {
		t.Fatal("expected a hit after SetMovie")
	}
	if got.Title != "Toy Story" || len(got.Cast) != 1 {
		t.Errorf("GetMovie() = %+v", got)
	}
}

func TestCache_CastNames(t *testing.T) {
	c := newTestCache(t, "", time.Hour)

	if _, ok := c.GetCastNames(862); ok {
		t.Fatal("empty cache should miss")
	}
	if err := c.SetCastNames(862, []string{"Tom Hanks", "Tim Allen"}); err != nil {
		t.Fatalf("SetCastNames() error = %v", err)
	}
	if err := c.SetCastNames(8587, nil); err != nil {
		t.Fatalf("SetCastNames(nil) error = %v", err)
	}

	if got, ok := c.GetCastNames(862); !ok || len(got) != 2 || got[0] != "Tom Hanks" {
		t.Errorf("GetCastNames(862) = %v, %v", got, ok)
	}
	if got, ok := c.GetCastNames(8587); !ok || len(got) != 0 {
		t.Errorf("an empty cast should still be a hit, got %v, %v", got, ok)
	}
	if _, ok := c.GetMovie(862); ok {
		t.Error("cast entries must not collide with movie entries")
	}
}

func TestCache_EntriesExpire(t *testing.T) {
	c := newTestCache(t, "", time.Second)

	if err := c.SetMovie(1, &Movie{ID: 1}); err != nil {
		t.Fatalf("SetMovie() error = %v", err)
	}
	// Badger TTLs have one second resolution.
	time.Sleep(2100 * time.Millisecond)
	if _, ok := c.GetMovie(1); ok {
		t.Error("entry should have expired")
	}
}

func TestCache_Trending(t *testing.T) {
	c := newTestCache(t, "", 0)
	if c.ttl != DefaultCacheTTL {
		t.Errorf("ttl = %v, want default", c.ttl)
	}
	if err := c.SetTrending([]TrendingMovie{{ID: 7, Title: "Seven"}}); err != nil {
		t.Fatalf("SetTrending() error = %v", err)
	}
	list, ok := c.GetTrending()
	if !ok || len(list) != 1 || list[0].ID != 7 {
		t.Errorf("GetTrending() = %v, %v", list, ok)
	}
}

func TestCache_OnDiskAndGC(t *testing.T) {
	dir := t.TempDir()
	c := newTestCache(t, dir, time.Hour)

	if err := c.SetMovie(2, &Movie{ID: 2, Title: "Two"}); err != nil {
		t.Fatalf("SetMovie() error = %v", err)
	}
	if err := c.RunGC(); err != nil {
		t.Errorf("RunGC() error = %v", err)
	}
	if _, ok := c.GetMovie(2); !ok {
		t.Error("entry should survive GC")
	}
}

func TestCache_InMemoryGCIsNoop(t *testing.T) {
	c := newTestCache(t, "", time.Hour)
	if err := c.RunGC(); err != nil {
		t.Errorf("RunGC() in memory = %v", err)
	}
}
