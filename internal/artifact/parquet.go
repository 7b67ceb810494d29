// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package artifact

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/parquet-go/parquet-go"

	"github.com/tomtom215/nextbinge/internal/catalog"
	"github.com/tomtom215/nextbinge/internal/logging"
)

// Record is one Parquet row.
type Record struct {
	Row         int32     `parquet:"row"`
	Title       string    `parquet:"title"`
	MovieID     string    `parquet:"movie_id"`
	Genres      string    `parquet:"genres"`
	ReleaseYear *int32    `parquet:"release_year,optional"`
	Similarity  []float32 `parquet:"similarity"`
}

// RequiredColumns are the top-level columns Load insists on.
var RequiredColumns = []string{"row", "title", "movie_id", "genres", "release_year", "similarity"}

var (
	// ErrMissingColumns means the file lacks one or more RequiredColumns.
	ErrMissingColumns = fmt.Errorf("%w: artifact is missing required columns", catalog.ErrStructural)
	// ErrRowOrder means the row column is not 0..N-1 in file order.
	ErrRowOrder = fmt.Errorf("%w: artifact rows are out of order", catalog.ErrStructural)
)

// Load opens path, checks its schema and builds the catalog.
func Load(path string) (*catalog.Catalog, error) {
	start := time.Now()

	f, err := os.Open(path) //nolint:gosec // operator-supplied artifact path
	if err != nil {
		return nil, fmt.Errorf("open artifact: %w", err)
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat artifact: %w", err)
	}

	cat, err := Read(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	logging.Info().
		Str("path", path).
		Int("items", cat.Len()).
		Int64("bytes", stat.Size()).
		Dur("elapsed", time.Since(start)).
		Msg("Artifact loaded")
	return cat, nil
}

// Read decodes an artifact of the given size from r.
func Read(r io.ReaderAt, size int64) (*catalog.Catalog, error) {
	pf, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: not a parquet file: %v", catalog.ErrStructural, err)
	}
	if missing := missingColumns(pf.Schema()); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	records, err := readRecords(parquet.NewGenericReader[Record](pf))
	if err != nil {
		return nil, err
	}
	return toCatalog(records)
}

func missingColumns(schema *parquet.Schema) []string {
	present := make(map[string]struct{})
	for _, f := range schema.Fields() {
		present[f.Name()] = struct{}{}
	}
	var missing []string
	for _, name := range RequiredColumns {
		if _, ok := present[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

func readRecords(pr *parquet.GenericReader[Record]) ([]Record, error) {
	defer func() { _ = pr.Close() }()

	records := make([]Record, pr.NumRows())
	read := 0
	for read < len(records) {
		n, err := pr.Read(records[read:])
		read += n
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read artifact rows: %w", err)
		}
		if n == 0 {
			break
		}
	}
	return records[:read], nil
}

func toCatalog(records []Record) (*catalog.Catalog, error) {
	items := make([]catalog.Item, len(records))
	rows := make([][]float32, len(records))
	for i, rec := range records {
		if int(rec.Row) != i {
			return nil, fmt.Errorf("%w: position %d holds row %d", ErrRowOrder, i, rec.Row)
		}
		var year *int
		if rec.ReleaseYear != nil {
			year = catalog.Year(int(*rec.ReleaseYear))
		}
		items[i] = catalog.NewItem(rec.Title, rec.MovieID, rec.Genres, year)
		rows[i] = rec.Similarity
	}

	m, err := catalog.MatrixFromRows(rows)
	if err != nil {
		return nil, err
	}
	return catalog.New(items, m)
}

// Write encodes cat as an artifact.
func Write(w io.Writer, cat *catalog.Catalog) error {
	pw := parquet.NewGenericWriter[Record](w, parquet.Compression(&parquet.Zstd))

	m := cat.Matrix()
	batch := make([]Record, 1)
	for i := 0; i < cat.Len(); i++ {
		it := cat.Item(i)
		rec := Record{
			Row:        int32(i), //nolint:gosec // catalog size is far below MaxInt32
			Title:      it.Title,
			MovieID:    it.MovieID,
			Genres:     genreString(it),
			Similarity: m.Row(i),
		}
		if y, ok := it.Year(); ok {
			y32 := int32(y) //nolint:gosec // release years fit in int32
			rec.ReleaseYear = &y32
		}
		batch[0] = rec
		if _, err := pw.Write(batch); err != nil {
			_ = pw.Close()
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("finalize artifact: %w", err)
	}
	return nil
}

// WriteFile writes cat to path atomically. A sibling .lock file serializes
// concurrent builders targeting the same path.
func WriteFile(path string, cat *catalog.Catalog) (err error) {
	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire artifact lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("artifact %s is being written by another process", path)
	}
	defer func() { _ = lock.Unlock() }()

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp artifact: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Write(tmp, cat); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync artifact: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close artifact: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename artifact: %w", err)
	}
	return nil
}

// Stored genres keep the original tag string when there is one.
func genreString(it catalog.Item) string {
	if it.RawGenres != "" {
		return it.RawGenres
	}
	return strings.Join(it.Genres, " ")
}

// Summary describes an artifact for the inspect command.
type Summary struct {
	Items           int      `json:"items"`
	Genres          []string `json:"genres"`
	MinYear         int      `json:"min_year,omitempty"`
	MaxYear         int      `json:"max_year,omitempty"`
	HasYears        bool     `json:"has_years"`
	DuplicateTitles []string `json:"duplicate_titles"`
}

// Summarize collects the facts printed by `nextbinge inspect`.
func Summarize(cat *catalog.Catalog) Summary {
	lo, hi, ok := cat.YearRange()
	dups := cat.DuplicateTitles()
	sort.Strings(dups)
	return Summary{
		Items:           cat.Len(),
		Genres:          cat.Genres(),
		MinYear:         lo,
		MaxYear:         hi,
		HasYears:        ok,
		DuplicateTitles: dups,
	}
}
