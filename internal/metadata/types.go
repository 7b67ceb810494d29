// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package metadata

import "errors"

var (
	// ErrNotConfigured is returned when enrichment is disabled or has no API key.
	ErrNotConfigured = errors.New("metadata: enrichment not configured")

	// ErrNotFound is returned when TMDB has no record for the id.
	ErrNotFound = errors.New("metadata: movie not found")

	// ErrInvalidID is returned for ids that are not positive integers.
	ErrInvalidID = errors.New("metadata: invalid movie id")
)

// Genre is a TMDB genre entry.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Details is the subset of /movie/{id} the UI shows.
type Details struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
	Runtime     int     `json:"runtime"`
	Genres      []Genre `json:"genres"`
	IMDbID      string  `json:"imdb_id"`
	PosterPath  string  `json:"poster_path"`
}

// CastMember is one billed actor.
type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

// Credits holds the cast list of /movie/{id}/credits.
type Credits struct {
	Cast []CastMember `json:"cast"`
}

// Video is one entry of /movie/{id}/videos.
type Video struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
	Name string `json:"name"`
}

// TrendingMovie is one entry of /trending/movie/week.
type TrendingMovie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	PosterPath  string  `json:"poster_path"`
	PosterURL   string  `json:"poster_url,omitempty"`
}

// Movie is the enriched view of one movie: details, top cast and trailer.
type Movie struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Overview    string   `json:"overview"`
	ReleaseDate string   `json:"release_date,omitempty"`
	Rating      float64  `json:"rating"`
	VoteCount   int      `json:"vote_count"`
	Runtime     int      `json:"runtime,omitempty"`
	Genres      []string `json:"genres,omitempty"`
	PosterURL   string   `json:"poster_url,omitempty"`
	IMDbURL     string   `json:"imdb_url,omitempty"`
	Cast        []string `json:"cast,omitempty"`
	TrailerURL  string   `json:"trailer_url,omitempty"`
}

// topCastSize is how many billed actors a Movie carries.
const topCastSize = 3

// TopCast returns up to n names in billing order.
func (c *Credits) TopCast(n int) []string {
	if c == nil || n <= 0 {
		return nil
	}
	names := make([]string, 0, n)
	for _, member := range c.Cast {
		if len(names) == n {
			break
		}
		if member.Name != "" {
			names = append(names, member.Name)
		}
	}
	return names
}

// TrailerURL picks the first YouTube trailer, or "" when there is none.
func TrailerURL(videos []Video) string {
	for _, v := range videos {
		if v.Site == "YouTube" && v.Type == "Trailer" && v.Key != "" {
			return "https://www.youtube.com/watch?v=" + v.Key
		}
	}
	return ""
}

// IMDbURL returns the IMDb title page, or "" without an id.
func (d *Details) IMDbURL() string {
	if d.IMDbID == "" {
		return ""
	}
	return "https://www.imdb.com/title/" + d.IMDbID + "/"
}
