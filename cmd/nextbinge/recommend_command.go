// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/nextbinge/internal/artifact"
	"github.com/tomtom215/nextbinge/internal/catalog"
	"github.com/tomtom215/nextbinge/internal/recommend"
)

type recommendFlags struct {
	artifactPath string
	limit        int
	profile      string
	kidsGenre    string
	includeSelf  bool
	byID         bool
	jsonOutput   bool
}

// recommendOutput is the --json document.
type recommendOutput struct {
	Query           string             `json:"query"`
	Profile         recommend.Profile  `json:"profile"`
	Status          recommend.Status   `json:"status"`
	Ambiguous       bool               `json:"ambiguous,omitempty"`
	Eligible        int                `json:"eligible"`
	Recommendations []recommend.Scored `json:"recommendations"`
}

func newRecommendCommand() *cobra.Command {
	var flags recommendFlags

	cmd := &cobra.Command{
		Use:   "recommend <title>",
		Short: "Show the movies most similar to a title",
		Long: `Recommend looks the title up exactly (case-sensitive) and prints the
most similar movies. A title that is not in the catalog is reported on
stderr and is not an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := recommend.ParseProfile(flags.profile)
			if err != nil {
				return err
			}
			cat, err := artifact.Load(flags.artifactPath)
			if err != nil {
				return err
			}
			rec := recommend.New(cat)

			opts := recommend.Options{
				RestrictTo:  profile.Predicate(flags.kidsGenre),
				Limit:       flags.limit,
				IncludeSelf: flags.includeSelf,
			}
			var res recommend.Result
			if flags.byID {
				res = rec.RecommendByMovieID(args[0], opts)
			} else {
				res = rec.Recommend(args[0], opts)
			}

			if flags.jsonOutput {
				return writeJSON(cmd, recommendOutput{
					Query:           args[0],
					Profile:         profile,
					Status:          res.Status,
					Ambiguous:       res.Ambiguous,
					Eligible:        res.Eligible,
					Recommendations: nonNil(res.Items),
				})
			}
			printRecommendations(cmd, args[0], profile, flags, res)
			return nil
		},
	}

	addArtifactFlag(cmd, &flags.artifactPath)
	cmd.Flags().IntVarP(&flags.limit, "limit", "n", recommend.DefaultLimit, "Maximum number of recommendations")
	cmd.Flags().StringVarP(&flags.profile, "profile", "p", string(recommend.ProfileAdult), "Viewer profile (adult or kids)")
	cmd.Flags().StringVar(&flags.kidsGenre, "kids-genre", recommend.DefaultKidsGenre, "Genre allowed for the kids profile")
	cmd.Flags().BoolVar(&flags.includeSelf, "include-self", false, "Allow the queried movie in the results")
	cmd.Flags().BoolVar(&flags.byID, "by-id", false, "Treat the argument as a movie id")
	cmd.Flags().BoolVar(&flags.jsonOutput, "json", false, "Print JSON")
	return cmd
}

func printRecommendations(cmd *cobra.Command, query string, profile recommend.Profile, flags recommendFlags, res recommend.Result) {
	stderr := cmd.ErrOrStderr()
	subject := "movies"
	if profile == recommend.ProfileKids {
		subject = flags.kidsGenre + " movies"
	}

	switch res.Status {
	case recommend.StatusNotFound:
		if flags.byID {
			fmt.Fprintf(stderr, "Movie id %q not found in catalog\n", query)
		} else {
			fmt.Fprintf(stderr, "Movie %q not found in catalog\n", query)
		}
		return
	case recommend.StatusNoEligibleCandidates:
		fmt.Fprintf(stderr, "No %s available to recommend\n", subject)
		return
	}

	if res.Ambiguous {
		if flags.byID {
			fmt.Fprintln(stderr, "Several movies share this id; using the first one in the catalog")
		} else {
			fmt.Fprintln(stderr, "Several movies share this title; using the first one in the catalog")
		}
	}
	if len(res.Items) == 0 {
		return
	}

	rows := make([][]string, 0, len(res.Items))
	for _, s := range res.Items {
		rows = append(rows, []string{
			strconv.Itoa(s.Rank),
			s.Item.Title,
			yearString(s.Item),
			strings.Join(s.Item.Genres, ", "),
			strconv.FormatFloat(s.Score, 'f', 3, 64),
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"#", "Title", "Year", "Genres", "Score"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignRight},
	))

	if res.Shortfall(flags.limit) {
		fmt.Fprintf(stderr, "Only %d %s available\n", len(res.Items), subject)
	}
}

func yearString(it catalog.Item) string {
	if y, ok := it.Year(); ok {
		return strconv.Itoa(y)
	}
	return "-"
}

func nonNil(items []recommend.Scored) []recommend.Scored {
	if items == nil {
		return []recommend.Scored{}
	}
	return items
}
