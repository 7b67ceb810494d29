// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package recommend

import (
	"fmt"
	"strings"

	"github.com/tomtom215/nextbinge/internal/catalog"
)

// DefaultLimit is the number of recommendations returned when the caller
// does not choose one.
const DefaultLimit = 10

// DefaultKidsGenre is the child-safe genre tag.
const DefaultKidsGenre = "Animation"

// Status classifies the outcome of a lookup.
type Status int

const (
	// StatusOK means the title resolved and at least one candidate was eligible
	// (or the limit was zero).
	StatusOK Status = iota
	// StatusNotFound means no catalog row carries the title.
	StatusNotFound
	// StatusNoEligibleCandidates means the title resolved but the predicate
	// and self-exclusion removed every candidate.
	StatusNoEligibleCandidates
)

// String returns the wire name of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFound:
		return "not_found"
	case StatusNoEligibleCandidates:
		return "no_eligible_candidates"
	default:
		return "unknown"
	}
}

// MarshalText lets Status appear as a string in JSON.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Predicate decides whether a candidate may be recommended.
type Predicate func(catalog.Item) bool

// Options controls a single lookup.
type Options struct {
	// RestrictTo filters candidates. Nil admits every candidate.
	RestrictTo Predicate

	// Limit is the maximum number of results. Zero or negative returns none.
	Limit int

	// IncludeSelf keeps the source row among the candidates. The zero value
	// excludes it.
	IncludeSelf bool
}

// DefaultOptions returns Limit=DefaultLimit, no restriction, self excluded.
func DefaultOptions() Options {
	return Options{Limit: DefaultLimit}
}

// Scored is one recommendation.
type Scored struct {
	// Item is the recommended movie.
	Item catalog.Item `json:"item"`

	// Score is the similarity to the source movie.
	Score float64 `json:"score"`

	// Rank is the 1-based position in the result.
	Rank int `json:"rank"`
}

// Result is the outcome of a lookup.
type Result struct {
	// Items are in rank order; len(Items) <= Options.Limit.
	Items []Scored `json:"items"`

	// Status distinguishes a miss from an exhausted filter.
	Status Status `json:"status"`

	// SourceIndex is the resolved row, or -1 when not found.
	SourceIndex int `json:"source_index"`

	// Ambiguous is set when the title or movie id occurs on several rows; the
	// first was used.
	Ambiguous bool `json:"ambiguous,omitempty"`

	// Eligible counts candidates that passed the predicate and self-exclusion
	// before the limit was applied.
	Eligible int `json:"eligible"`
}

// Shortfall reports whether fewer items than limit were returned.
func (r Result) Shortfall(limit int) bool {
	return limit > 0 && len(r.Items) < limit
}

// Profile selects a content policy.
type Profile string

const (
	// ProfileAdult applies no restriction.
	ProfileAdult Profile = "adult"
	// ProfileKids restricts candidates to the child-safe genre.
	ProfileKids Profile = "kids"
)

// ParseProfile accepts "adult", "kids" (any case) and "" (adult).
func ParseProfile(s string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ProfileAdult):
		return ProfileAdult, nil
	case string(ProfileKids):
		return ProfileKids, nil
	default:
		return "", fmt.Errorf("unknown profile %q", s)
	}
}

// Predicate returns the eligibility rule for the profile. kidsGenre is the
// child-safe tag; empty means DefaultKidsGenre.
func (p Profile) Predicate(kidsGenre string) Predicate {
	if p != ProfileKids {
		return nil
	}
	if kidsGenre == "" {
		kidsGenre = DefaultKidsGenre
	}
	return HasGenre(kidsGenre)
}
