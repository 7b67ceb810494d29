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
)

func newGenresCommand() *cobra.Command {
	var artifactPath string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "genres",
		Short: "List the genre tags in an artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := artifact.Load(artifactPath)
			if err != nil {
				return err
			}
			genres := cat.Genres()
			if jsonOutput {
				return writeJSON(cmd, genres)
			}
			for _, g := range genres {
				fmt.Fprintln(cmd.OutOrStdout(), g)
			}
			return nil
		},
	}

	addArtifactFlag(cmd, &artifactPath)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print JSON")
	return cmd
}

func newInspectCommand() *cobra.Command {
	var artifactPath string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Summarize an artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := artifact.Load(artifactPath)
			if err != nil {
				return err
			}
			summary := artifact.Summarize(cat)
			if jsonOutput {
				return writeJSON(cmd, summary)
			}

			years := "unknown"
			if summary.HasYears {
				years = fmt.Sprintf("%d-%d", summary.MinYear, summary.MaxYear)
			}
			dups := "none"
			if len(summary.DuplicateTitles) > 0 {
				dups = strings.Join(summary.DuplicateTitles, ", ")
			}
			rows := [][]string{
				{"Artifact", artifactPath},
				{"Movies", strconv.Itoa(summary.Items)},
				{"Genres", strconv.Itoa(len(summary.Genres))},
				{"Release years", years},
				{"Duplicate titles", dups},
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Field", "Value"}, rows, nil))
			return nil
		},
	}

	addArtifactFlag(cmd, &artifactPath)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print JSON")
	return cmd
}
