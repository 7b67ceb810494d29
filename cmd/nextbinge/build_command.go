// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/nextbinge/internal/artifact"
	"github.com/tomtom215/nextbinge/internal/catalog"
	"github.com/tomtom215/nextbinge/internal/logging"
	"github.com/tomtom215/nextbinge/internal/recommend/similarity"
)

func newBuildCommand() *cobra.Command {
	var catalogPath, outPath string
	cfg := similarity.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a recommender artifact from a catalog CSV",
		Long: `Build reads a CSV with title, movie_id, genres and release_year columns,
scores every pair of movies and writes the parquet artifact the server loads.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()

			f, err := os.Open(catalogPath)
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			items, err := artifact.ReadCatalogCSV(f)
			_ = f.Close()
			if err != nil {
				return fmt.Errorf("read catalog %s: %w", catalogPath, err)
			}

			matrix, err := similarity.Build(cmd.Context(), items, cfg)
			if err != nil {
				return fmt.Errorf("build similarity matrix: %w", err)
			}
			cat, err := catalog.New(items, matrix)
			if err != nil {
				return err
			}
			if err := artifact.WriteFile(outPath, cat); err != nil {
				return err
			}

			logging.Info().
				Str("out", outPath).
				Int("items", cat.Len()).
				Dur("took", time.Since(start)).
				Msg("Artifact written")
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d movies to %s\n", cat.Len(), outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog CSV to read")
	cmd.Flags().StringVarP(&outPath, "out", "o", defaultArtifactPath, "Artifact path to write")
	cmd.Flags().Float64Var(&cfg.GenreWeight, "genre-weight", cfg.GenreWeight, "Weight of genre overlap")
	cmd.Flags().Float64Var(&cfg.YearWeight, "year-weight", cfg.YearWeight, "Weight of release year proximity")
	cmd.Flags().IntVar(&cfg.MaxYearDifference, "max-year-diff", cfg.MaxYearDifference, "Year gap at which proximity reaches zero")
	cmd.Flags().IntVar(&cfg.Workers, "workers", 0, "Parallel scoring workers (0 = all CPUs)")
	_ = cmd.MarkFlagRequired("catalog")
	return cmd
}
