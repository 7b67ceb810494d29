// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

// Command nextbinge builds and queries recommender artifacts offline.
//
//	nextbinge build --catalog movies.csv --out movie_data.parquet
//	nextbinge recommend "Toy Story" --profile kids
//	nextbinge genres
//	nextbinge inspect
//
// Commands that read an artifact default to ARTIFACT_PATH, or
// movie_data.parquet when it is unset.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	cmd := newRootCommand()
	err := cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
