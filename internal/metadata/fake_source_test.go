// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package metadata

import (
	"context"
	"errors"
	"sync"
)

// fakeSource is an in-memory Source that counts calls per endpoint.
type fakeSource struct {
	mu       sync.Mutex
	counts   map[string]int
	details  map[int]*Details
	cast     map[int][]string
	failIDs  map[int]bool
	failRest bool
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		counts: make(map[string]int),
		details: map[int]*Details{
			862:  {ID: 862, Title: "Toy Story", VoteAverage: 7.9, PosterPath: "/toy.jpg", IMDbID: "tt0114709", Genres: []Genre{{Name: "Animation"}}},
			8587: {ID: 8587, Title: "The Lion King", VoteAverage: 8.2},
		},
		failIDs: make(map[int]bool),
	}
}

func (f *fakeSource) hit(endpoint string) {
	f.mu.Lock()
	f.counts[endpoint]++
	f.mu.Unlock()
}

func (f *fakeSource) calls(endpoint string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.counts[endpoint]
}

func (f *fakeSource) MovieDetails(_ context.Context, id int) (*Details, error) {
	f.hit("details")
	if f.failIDs[id] {
		return nil, errors.New("upstream unavailable")
	}
	d, ok := f.details[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *d
	return &cp, nil
}

func (f *fakeSource) MovieCredits(_ context.Context, id int) (*Credits, error) {
	f.hit("credits")
	if f.failRest || f.failIDs[id] {
		return nil, errors.New("credits down")
	}
	if names, ok := f.cast[id]; ok {
		credits := &Credits{}
		for i, n := range names {
			credits.Cast = append(credits.Cast, CastMember{Name: n, Order: i})
		}
		return credits, nil
	}
	if _, ok := f.details[id]; !ok && len(f.cast) > 0 {
		return nil, ErrNotFound
	}
	return &Credits{Cast: []CastMember{{Name: "Lead"}, {Name: "Second"}, {Name: "Third"}, {Name: "Fourth"}}}, nil
}

func (f *fakeSource) MovieVideos(_ context.Context, id int) ([]Video, error) {
	f.hit("videos")
	if f.failRest {
		return nil, errors.New("videos down")
	}
	return []Video{{Key: "k1", Site: "YouTube", Type: "Trailer"}}, nil
}

func (f *fakeSource) TrendingMovies(_ context.Context) ([]TrendingMovie, error) {
	f.hit("trending")
	return []TrendingMovie{{ID: 1, Title: "Hot"}}, nil
}

func (f *fakeSource) PosterURL(path string) string {
	if path == "" {
		return ""
	}
	return "https://img.test" + path
}
