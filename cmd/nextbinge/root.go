// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/tomtom215/nextbinge/internal/logging"
)

const defaultArtifactPath = "movie_data.parquet"

type globalFlags struct {
	logLevel  string
	logFormat string
}

func newRootCommand() *cobra.Command {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:           "nextbinge",
		Short:         "Content-based movie recommendations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configureLogging(cmd.ErrOrStderr(), flags)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", "", "Log format (json or console); default depends on the terminal")

	rootCmd.AddCommand(newBuildCommand())
	rootCmd.AddCommand(newRecommendCommand())
	rootCmd.AddCommand(newGenresCommand())
	rootCmd.AddCommand(newInspectCommand())

	return rootCmd
}

// configureLogging sends logs to w: console output on a terminal, JSON
// otherwise, unless --log-format says which.
func configureLogging(w io.Writer, flags globalFlags) {
	format := flags.logFormat
	if format == "" {
		format = "json"
		if isTerminal(w) {
			format = "console"
		}
	}
	logging.Init(logging.Config{
		Level:     flags.logLevel,
		Format:    format,
		Timestamp: true,
		Output:    w,
	})
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// addArtifactFlag registers --artifact, defaulting to ARTIFACT_PATH.
func addArtifactFlag(cmd *cobra.Command, target *string) {
	def := os.Getenv("ARTIFACT_PATH")
	if def == "" {
		def = defaultArtifactPath
	}
	cmd.Flags().StringVarP(target, "artifact", "a", def, "Path to the recommender artifact")
}
