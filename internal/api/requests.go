// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

// Request structs carry go-playground/validator tags; the query tag names
// the parameter so validation messages use the client's spelling.

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/nextbinge/internal/validation"
)

// maxLimitCeiling bounds limit before the configured MaxLimit is applied.
const maxLimitCeiling = 1000

// RecommendationsRequest holds the query of GET /recommendations.
// Exactly one of Title and MovieID must be set.
type RecommendationsRequest struct {
	Title       string `query:"title" validate:"required_without=MovieID,excluded_with=MovieID,omitempty,max=300,movietitle"`
	MovieID     string `query:"movie_id" validate:"omitempty,max=32"`
	Limit       int    `query:"limit" validate:"omitempty,min=1,max=1000"`
	Profile     string `query:"profile" validate:"omitempty,oneof=adult kids"`
	IncludeSelf bool   `query:"include_self"`
	Enrich      bool   `query:"enrich"`
}

// CatalogMoviesRequest holds the query of GET /catalog/movies.
type CatalogMoviesRequest struct {
	Genre    string `query:"genre" validate:"omitempty,max=64,genretag"`
	YearFrom int    `query:"year_from" validate:"omitempty,gte=1870,lte=2100"`
	YearTo   int    `query:"year_to" validate:"omitempty,gte=1870,lte=2100,gtefield=YearFrom"`
	Profile  string `query:"profile" validate:"omitempty,oneof=adult kids"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=1000"`
}

// RandomRequest holds the query of GET /catalog/random.
type RandomRequest struct {
	Profile string `query:"profile" validate:"omitempty,oneof=adult kids"`
}

// CastSearchRequest holds the query of GET /catalog/cast.
type CastSearchRequest struct {
	Name    string `query:"name" validate:"required,max=100,movietitle"`
	Profile string `query:"profile" validate:"omitempty,oneof=adult kids"`
	Limit   int    `query:"limit" validate:"omitempty,min=1,max=1000"`
}

// queryParser reads typed parameters and remembers the malformed ones.
type queryParser struct {
	r      *http.Request
	errors []validation.FieldError
}

func newQueryParser(r *http.Request) *queryParser {
	return &queryParser{r: r}
}

func (p *queryParser) str(key string) string {
	return strings.TrimSpace(p.r.URL.Query().Get(key))
}

// lower is str folded to lower case, for enumerated values.
func (p *queryParser) lower(key string) string {
	return strings.ToLower(p.str(key))
}

func (p *queryParser) int(key string) int {
	raw := p.str(key)
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.errors = append(p.errors, validation.FieldError{
			Field:   key,
			Tag:     "int",
			Message: fmt.Sprintf("%s must be an integer", key),
		})
		return 0
	}
	return v
}

func (p *queryParser) bool(key string) bool {
	raw := p.str(key)
	if raw == "" {
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.errors = append(p.errors, validation.FieldError{
			Field:   key,
			Tag:     "bool",
			Message: fmt.Sprintf("%s must be true or false", key),
		})
		return false
	}
	return v
}

// validate runs the struct rules after the parse errors, returning every
// failure at once.
func (p *queryParser) validate(req interface{}) *validation.RequestValidationError {
	fields := append([]validation.FieldError(nil), p.errors...)
	if verr := validation.ValidateStruct(req); verr != nil {
		fields = append(fields, verr.Fields...)
	}
	if len(fields) == 0 {
		return nil
	}
	return &validation.RequestValidationError{Fields: fields}
}

// checkLimit enforces the configured ceiling, which struct tags cannot know.
func checkLimit(limit, maxLimit int) *validation.RequestValidationError {
	if maxLimit <= 0 || maxLimit > maxLimitCeiling {
		maxLimit = maxLimitCeiling
	}
	if limit <= maxLimit {
		return nil
	}
	return &validation.RequestValidationError{Fields: []validation.FieldError{{
		Field:   "limit",
		Tag:     "max",
		Param:   strconv.Itoa(maxLimit),
		Message: fmt.Sprintf("limit must be at most %d", maxLimit),
	}}}
}

func parseRecommendationsRequest(r *http.Request) (RecommendationsRequest, *validation.RequestValidationError) {
	p := newQueryParser(r)
	req := RecommendationsRequest{
		Title:       r.URL.Query().Get("title"),
		MovieID:     p.str("movie_id"),
		Limit:       p.int("limit"),
		Profile:     p.lower("profile"),
		IncludeSelf: p.bool("include_self"),
		Enrich:      p.bool("enrich"),
	}
	return req, p.validate(&req)
}

func parseCatalogMoviesRequest(r *http.Request) (CatalogMoviesRequest, *validation.RequestValidationError) {
	p := newQueryParser(r)
	req := CatalogMoviesRequest{
		Genre:    p.str("genre"),
		YearFrom: p.int("year_from"),
		YearTo:   p.int("year_to"),
		Profile:  p.lower("profile"),
		Limit:    p.int("limit"),
	}
	return req, p.validate(&req)
}

func parseRandomRequest(r *http.Request) (RandomRequest, *validation.RequestValidationError) {
	p := newQueryParser(r)
	req := RandomRequest{Profile: p.lower("profile")}
	return req, p.validate(&req)
}

func parseCastSearchRequest(r *http.Request) (CastSearchRequest, *validation.RequestValidationError) {
	p := newQueryParser(r)
	req := CastSearchRequest{
		Name:    p.str("name"),
		Profile: p.lower("profile"),
		Limit:   p.int("limit"),
	}
	return req, p.validate(&req)
}
