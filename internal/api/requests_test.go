// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package api

import (
	"net/http/httptest"
	"testing"

	"github.com/tomtom215/nextbinge/internal/validation"
)

func fieldTags(verr *validation.RequestValidationError) map[string]string {
	out := make(map[string]string)
	if verr == nil {
		return out
	}
	for _, f := range verr.Fields {
		out[f.Field] = f.Tag
	}
	return out
}

func TestParseRecommendationsRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		query     string
		wantField string
		wantTag   string
	}{
		{name: "title only", query: "title=Toy+Story"},
		{name: "movie id only", query: "movie_id=862"},
		{name: "kids upper case", query: "title=Heat&profile=KIDS"},
		{name: "kids mixed case", query: "title=Heat&profile=kIdS"},
		{name: "adult mixed case padded", query: "title=Heat&profile=+aDuLt+"},
		{name: "explicit zero limit means default", query: "title=Heat&limit=0"},
		{name: "neither title nor id", query: "limit=5", wantField: "title", wantTag: "required_without"},
		{name: "both title and id", query: "title=Heat&movie_id=949", wantField: "title", wantTag: "excluded_with"},
		{name: "control characters", query: "title=He%0Aat", wantField: "title", wantTag: "movietitle"},
		{name: "unknown profile", query: "title=Heat&profile=teen", wantField: "profile", wantTag: "oneof"},
		{name: "limit not a number", query: "title=Heat&limit=ten", wantField: "limit", wantTag: "int"},
		{name: "limit above ceiling", query: "title=Heat&limit=5000", wantField: "limit", wantTag: "max"},
		{name: "bad bool", query: "title=Heat&include_self=maybe", wantField: "include_self", wantTag: "bool"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest("GET", "/api/v1/recommendations?"+tt.query, nil)
			_, verr := parseRecommendationsRequest(r)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("unexpected validation error: %v", verr)
				}
				return
			}
			if got := fieldTags(verr)[tt.wantField]; got != tt.wantTag {
				t.Errorf("field %s: tag = %q, want %q (errors: %v)", tt.wantField, got, tt.wantTag, verr)
			}
		})
	}
}

func TestParseRecommendationsRequest_KeepsTitleVerbatim(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/api/v1/recommendations?title=%20Heat%20&include_self=true&enrich=1", nil)
	req, verr := parseRecommendationsRequest(r)
	if verr != nil {
		t.Fatalf("unexpected error: %v", verr)
	}
	if req.Title != " Heat " {
		t.Errorf("Title = %q; lookups are exact so whitespace must survive", req.Title)
	}
	if !req.IncludeSelf || !req.Enrich {
		t.Errorf("bool flags not parsed: %+v", req)
	}
}

func TestParseCatalogMoviesRequest(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/api/v1/catalog/movies?genre=Drama&year_from=1990&year_to=1995&limit=3", nil)
	req, verr := parseCatalogMoviesRequest(r)
	if verr != nil {
		t.Fatalf("unexpected error: %v", verr)
	}
	if req.Genre != "Drama" || req.YearFrom != 1990 || req.YearTo != 1995 || req.Limit != 3 {
		t.Errorf("parsed = %+v", req)
	}

	invalid := map[string]string{
		"year_to=1990&year_from=1995": "year_to",
		"genre=Action+Crime":          "genre",
		"year_from=1200":              "year_from",
	}
	for query, field := range invalid {
		r := httptest.NewRequest("GET", "/api/v1/catalog/movies?"+query, nil)
		if _, verr := parseCatalogMoviesRequest(r); fieldTags(verr)[field] == "" {
			t.Errorf("%s: want an error on %s, got %v", query, field, verr)
		}
	}
}

func TestParseRequests_ProfileIsLowerCased(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		parse func(q string) (string, *validation.RequestValidationError)
	}{
		{"recommendations", func(q string) (string, *validation.RequestValidationError) {
			req, verr := parseRecommendationsRequest(httptest.NewRequest("GET", "/api/v1/recommendations?title=Heat&"+q, nil))
			return req.Profile, verr
		}},
		{"catalog movies", func(q string) (string, *validation.RequestValidationError) {
			req, verr := parseCatalogMoviesRequest(httptest.NewRequest("GET", "/api/v1/catalog/movies?"+q, nil))
			return req.Profile, verr
		}},
		{"random", func(q string) (string, *validation.RequestValidationError) {
			req, verr := parseRandomRequest(httptest.NewRequest("GET", "/api/v1/catalog/random?"+q, nil))
			return req.Profile, verr
		}},
		{"cast", func(q string) (string, *validation.RequestValidationError) {
			req, verr := parseCastSearchRequest(httptest.NewRequest("GET", "/api/v1/catalog/cast?name=Hanks&"+q, nil))
			return req.Profile, verr
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for query, want := range map[string]string{"profile=kIdS": "kids", "profile=ADULT": "adult"} {
				got, verr := tt.parse(query)
				if verr != nil {
					t.Fatalf("%s: unexpected error: %v", query, verr)
				}
				if got != want {
					t.Errorf("%s: Profile = %q, want %q", query, got, want)
				}
			}
			if _, verr := tt.parse("profile=Teens"); fieldTags(verr)["profile"] != "oneof" {
				t.Errorf("unknown profile should fail oneof, got %v", verr)
			}
		})
	}
}

func TestParseCastSearchRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		query     string
		wantField string
		wantTag   string
	}{
		{name: "name only", query: "name=Tom+Hanks"},
		{name: "with profile and limit", query: "name=hanks&profile=Kids&limit=5"},
		{name: "missing name", query: "profile=kids", wantField: "name", wantTag: "required"},
		{name: "blank name", query: "name=+++", wantField: "name", wantTag: "required"},
		{name: "control characters", query: "name=Tom%0AHanks", wantField: "name", wantTag: "movietitle"},
		{name: "limit not a number", query: "name=Hanks&limit=many", wantField: "limit", wantTag: "int"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := httptest.NewRequest("GET", "/api/v1/catalog/cast?"+tt.query, nil)
			_, verr := parseCastSearchRequest(r)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("unexpected validation error: %v", verr)
				}
				return
			}
			if got := fieldTags(verr)[tt.wantField]; got != tt.wantTag {
				t.Errorf("field %s: tag = %q, want %q (errors: %v)", tt.wantField, got, tt.wantTag, verr)
			}
		})
	}
}

func TestCheckLimit(t *testing.T) {
	t.Parallel()

	if verr := checkLimit(50, 50); verr != nil {
		t.Errorf("limit at max should pass: %v", verr)
	}
	verr := checkLimit(51, 50)
	if verr == nil || verr.Fields[0].Param != "50" {
		t.Fatalf("checkLimit(51, 50) = %v", verr)
	}
	if verr := checkLimit(999, 0); verr != nil {
		t.Errorf("unset max should fall back to the ceiling: %v", verr)
	}
	if verr := checkLimit(1001, 5000); verr == nil {
		t.Error("configured max above the ceiling should be clamped")
	}
}
