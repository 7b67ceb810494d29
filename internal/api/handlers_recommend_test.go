// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package api

import (
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"testing"

	"github.com/tomtom215/nextbinge/internal/catalog"
	"github.com/tomtom215/nextbinge/internal/config"
	"github.com/tomtom215/nextbinge/internal/metadata"
	"github.com/tomtom215/nextbinge/internal/recommend"
)

type sourcePayload struct {
	Index   int    `json:"index"`
	Title   string `json:"title"`
	MovieID string `json:"movie_id"`
}

// recommendationsPayload decodes RecommendationsResponse with a plain status.
type recommendationsPayload struct {
	Query           RecommendationsQuery `json:"query"`
	Status          string               `json:"status"`
	Source          *sourcePayload       `json:"source"`
	Ambiguous       bool                 `json:"ambiguous"`
	Recommendations []RecommendationView `json:"recommendations"`
	Count           int                  `json:"count"`
	Eligible        int                  `json:"eligible"`
	Message         string               `json:"message"`
	Warning         string               `json:"warning"`
}

func recTitles(p recommendationsPayload) []string {
	out := make([]string, len(p.Recommendations))
	for i, r := range p.Recommendations {
		out[i] = r.Title
	}
	return out
}

func getRecommendations(t *testing.T, h http.Handler, query url.Values) (int, testResponse, recommendationsPayload) {
	t.Helper()
	rec, resp := doGet(t, h, "/api/v1/recommendations?"+query.Encode())
	var p recommendationsPayload
	if rec.Code == http.StatusOK {
		decodeData(t, resp, &p)
	}
	return rec.Code, resp, p
}

func TestRecommendations_RankedByScore(t *testing.T) {
	h := newTestRouter(t, NewHandler(newTestRecommender(t), nil, testCatalogConfig()))

	code, resp, p := getRecommendations(t, h, url.Values{"title": {"Toy Story"}, "limit": {"2"}})
	if code != http.StatusOK || resp.Status != "success" {
		t.Fatalf("status = %d %q", code, resp.Status)
	}
	if p.Status != "ok" {
		t.Errorf("data.status = %q, want ok", p.Status)
	}
	if want := []string{"The Lion King", "Heat"}; !reflect.DeepEqual(recTitles(p), want) {
		t.Errorf("titles = %v, want %v", recTitles(p), want)
	}
	if p.Recommendations[0].Rank != 1 || p.Recommendations[0].Score < 0.89 {
		t.Errorf("first = %+v", p.Recommendations[0])
	}
	if p.Recommendations[1].MovieID != "949" {
		t.Errorf("second movie_id = %q, want 949 (lower row wins)", p.Recommendations[1].MovieID)
	}
	if p.Source == nil || p.Source.Index != 0 {
		t.Errorf("source = %+v", p.Source)
	}
	if p.Warning != "" {
		t.Errorf("full result should carry no warning, got %q", p.Warning)
	}
	if resp.Metadata.RequestID == "" {
		t.Error("metadata.request_id should be set")
	}
}

func TestRecommendations_DefaultLimitAndShortfall(t *testing.T) {
	h := newTestRouter(t, NewHandler(newTestRecommender(t), nil, testCatalogConfig()))

	_, _, p := getRecommendations(t, h, url.Values{"title": {"Toy Story"}})
	if p.Query.Limit != 10 {
		t.Errorf("effective limit = %d, want 10", p.Query.Limit)
	}
	if p.Count != 3 {
		t.Errorf("count = %d, want 3", p.Count)
	}
	if p.Warning != "Only 3 movies available" {
		t.Errorf("warning = %q", p.Warning)
	}
}

func TestRecommendations_KidsProfile(t *testing.T) {
	h := newTestRouter(t, NewHandler(newTestRecommender(t), nil, testCatalogConfig()))

	_, _, p := getRecommendations(t, h, url.Values{"title": {"Heat"}, "profile": {"kids"}})
	if want := []string{"The Lion King", "Toy Story"}; !reflect.DeepEqual(recTitles(p), want) {
		t.Errorf("titles = %v, want %v", recTitles(p), want)
	}
	if p.Warning != "Only 2 Animation movies available" {
		t.Errorf("warning = %q", p.Warning)
	}
	for _, r := range p.Recommendations {
		found := false
		for _, g := range r.Genres {
			if g == "Animation" {
				found = true
			}
		}
		if !found {
			t.Errorf("%s is not Animation: %v", r.Title, r.Genres)
		}
	}
}

func TestRecommendations_NotFoundIsNotAnError(t *testing.T) {
	h := newTestRouter(t, NewHandler(newTestRecommender(t), nil, testCatalogConfig()))

	code, resp, p := getRecommendations(t, h, url.Values{"title": {"toy story"}})
	if code != http.StatusOK || resp.Status != "success" {
		t.Fatalf("status = %d %q", code, resp.Status)
	}
	if p.Status != "not_found" || len(p.Recommendations) != 0 || p.Source != nil {
		t.Errorf("payload = %+v", p)
	}
	if !strings.Contains(p.Message, "toy story") {
		t.Errorf("message = %q", p.Message)
	}
}

func TestRecommendations_NoEligibleCandidates(t *testing.T) {
	cfg := testCatalogConfig()
	cfg.KidsGenre = "Documentary"
	h := newTestRouter(t, NewHandler(newTestRecommender(t), nil, cfg))

	code, _, p := getRecommendations(t, h, url.Values{"title": {"Toy Story"}, "profile": {"kids"}})
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if p.Status != "no_eligible_candidates" || p.Count != 0 {
		t.Errorf("payload = %+v", p)
	}
	if p.Message != "No Documentary movies available to recommend" {
		t.Errorf("message = %q", p.Message)
	}
}

func TestRecommendations_DuplicateTitleIsAmbiguous(t *testing.T) {
	h := newTestRouter(t, NewHandler(newTestRecommender(t), nil, testCatalogConfig()))

	_, _, p := getRecommendations(t, h, url.Values{"title": {"Heat"}, "limit": {"1"}})
	if !p.Ambiguous || p.Source == nil || p.Source.MovieID != "949" {
		t.Errorf("payload = %+v", p)
	}
	if p.Message == "" {
		t.Error("ambiguous lookups should explain which row was used")
	}
	// Row 3 is also "Heat" but a different movie; it may be recommended.
	if recTitles(p)[0] != "Heat" {
		t.Errorf("titles = %v", recTitles(p))
	}
}

func TestRecommendations_ByMovieIDAndIncludeSelf(t *testing.T) {
	h := newTestRouter(t, NewHandler(newTestRecommender(t), nil, testCatalogConfig()))

	_, _, p := getRecommendations(t, h, url.Values{"movie_id": {"999"}, "include_self": {"true"}, "limit": {"2"}})
	if p.Source == nil || p.Source.Index != 3 {
		t.Fatalf("source = %+v", p.Source)
	}
	if p.Recommendations[0].MovieID != "999" || p.Recommendations[1].MovieID != "949" {
		t.Errorf("recommendations = %+v", p.Recommendations)
	}
	if p.Ambiguous {
		t.Error("a unique movie id should not be ambiguous")
	}
}

func TestRecommendations_DuplicateMovieIDIsAmbiguous(t *testing.T) {
	items := []catalog.Item{
		catalog.NewItem("Toy Story", "862", "Animation Comedy", catalog.Year(1995)),
		catalog.NewItem("Heat", "949", "Action Crime", catalog.Year(1995)),
		catalog.NewItem("Toy Story (Special Edition)", "862", "Animation Comedy", catalog.Year(1995)),
	}
	m, err := catalog.MatrixFromRows([][]float32{
		{1.0, 0.2, 1.0},
		{0.2, 1.0, 0.2},
		{1.0, 0.2, 1.0},
	})
	if err != nil {
		t.Fatalf("MatrixFromRows: %v", err)
	}
	c, err := catalog.New(items, m)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	h := newTestRouter(t, NewHandler(recommend.New(c), nil, testCatalogConfig()))

	_, _, p := getRecommendations(t, h, url.Values{"movie_id": {"862"}, "limit": {"1"}})
	if !p.Ambiguous || p.Source == nil || p.Source.Index != 0 {
		t.Fatalf("payload = %+v", p)
	}
	if !strings.Contains(p.Message, "share this id") {
		t.Errorf("message = %q", p.Message)
	}
	if got := p.Recommendations[0].Title; got != "Toy Story (Special Edition)" {
		t.Errorf("top recommendation = %q", got)
	}
}

func TestRecommendations_Validation(t *testing.T) {
	h := newTestRouter(t, NewHandler(newTestRecommender(t), nil, testCatalogConfig()))

	tests := []struct {
		name  string
		query url.Values
	}{
		{"neither title nor id", url.Values{}},
		{"both title and id", url.Values{"title": {"Heat"}, "movie_id": {"949"}}},
		{"non-numeric limit", url.Values{"title": {"Heat"}, "limit": {"ten"}}},
		{"negative limit", url.Values{"title": {"Heat"}, "limit": {"-1"}}},
		{"above max limit", url.Values{"title": {"Heat"}, "limit": {"51"}}},
		{"unknown profile", url.Values{"title": {"Heat"}, "profile": {"teen"}}},
		{"bad bool", url.Values{"title": {"Heat"}, "enrich": {"maybe"}}},
		{"control chars", url.Values{"title": {"He\x00at"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp, _ := getRecommendations(t, h, tt.query)
			if code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", code)
			}
			if resp.Error == nil || resp.Error.Code != ErrCodeValidation {
				t.Errorf("error = %+v", resp.Error)
			}
		})
	}
}

func TestRecommendations_Enrich(t *testing.T) {
	srv := newTMDBServer(t)
	meta := newTestMetadata(t, srv.URL, metadata.DefaultBreakerSettings())
	h := newTestRouter(t, NewHandler(newTestRecommender(t), meta, testCatalogConfig()))

	_, _, p := getRecommendations(t, h, url.Values{"title": {"The Lion King"}, "limit": {"2"}, "enrich": {"true"}})
	if len(p.Recommendations) != 2 {
		t.Fatalf("recommendations = %+v", p.Recommendations)
	}
	toy := p.Recommendations[0]
	if toy.Title != "Toy Story" || toy.Details == nil {
		t.Fatalf("first = %+v", toy)
	}
	if toy.Details.TrailerURL != "https://www.youtube.com/watch?v=abc" || len(toy.Details.Cast) != 2 {
		t.Errorf("details = %+v", toy.Details)
	}
	// 999 has no fixture: it degrades to no details.
	if p.Recommendations[1].Details != nil {
		t.Errorf("unexpected details for %s", p.Recommendations[1].MovieID)
	}
}

func TestRecommendations_EnrichIgnoredWhenDisabled(t *testing.T) {
	h := newTestRouter(t, NewHandler(newTestRecommender(t), nil, config.CatalogConfig{}))

	_, _, p := getRecommendations(t, h, url.Values{"title": {"Toy Story"}, "enrich": {"true"}})
	if p.Status != "ok" || len(p.Recommendations) == 0 {
		t.Fatalf("payload = %+v", p)
	}
	for _, r := range p.Recommendations {
		if r.Details != nil {
			t.Errorf("details should be absent without metadata: %+v", r)
		}
	}
}
