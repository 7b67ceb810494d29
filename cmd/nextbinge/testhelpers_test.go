// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/tomtom215/nextbinge/internal/artifact"
	"github.com/tomtom215/nextbinge/internal/catalog"
)

// writeTestArtifact stores four movies with hand-picked scores. "Heat" is
// duplicated so lookups resolve to row 1.
func writeTestArtifact(t *testing.T) string {
	t.Helper()
	m, err := catalog.MatrixFromRows([][]float32{
		{1.0, 0.2, 0.9, 0.1},
		{0.2, 1.0, 0.3, 0.6},
		{0.9, 0.3, 1.0, 0.4},
		{0.1, 0.6, 0.4, 1.0},
	})
	if err != nil {
		t.Fatalf("MatrixFromRows: %v", err)
	}
	cat, err := catalog.New([]catalog.Item{
		catalog.NewItem("Toy Story", "862", "Animation Comedy", catalog.Year(1995)),
		catalog.NewItem("Heat", "949", "Action Crime", catalog.Year(1995)),
		catalog.NewItem("The Lion King", "8587", "Animation Drama", catalog.Year(1994)),
		catalog.NewItem("Heat", "999", "Drama", catalog.Year(1986)),
	}, m)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	path := filepath.Join(t.TempDir(), "movie_data.parquet")
	if err := artifact.WriteFile(path, cat); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
