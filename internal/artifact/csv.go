// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package artifact

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tomtom215/nextbinge/internal/catalog"
)

// CSVColumns are the header names ReadCatalogCSV requires, in any order.
// Extra columns are ignored.
var CSVColumns = []string{"title", "movie_id", "genres", "release_year"}

// ReadCatalogCSV reads catalog metadata (no scores) from a headed CSV file.
// An empty release_year cell means the year is unknown.
func ReadCatalogCSV(r io.Reader) ([]catalog.Item, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, catalog.ErrEmptyCatalog
		}
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))] = i
	}
	var missing []string
	for _, col := range CSVColumns {
		if _, ok := pos[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	var items []catalog.Item
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read csv line %d: %w", line, err)
		}

		field := func(name string) string {
			if i := pos[name]; i < len(rec) {
				return strings.TrimSpace(rec[i])
			}
			return ""
		}

		var year *int
		if raw := field("release_year"); raw != "" {
			// Exporters often write integer columns with gaps as floats ("1995.0").
			y, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("csv line %d: bad release_year %q: %w", line, raw, err)
			}
			year = catalog.Year(int(y))
		}
		items = append(items, catalog.NewItem(field("title"), field("movie_id"), field("genres"), year))
	}

	if len(items) == 0 {
		return nil, catalog.ErrEmptyCatalog
	}
	return items, nil
}
