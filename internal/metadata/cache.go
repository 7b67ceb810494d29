// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package metadata

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/nextbinge/internal/logging"
	"github.com/tomtom215/nextbinge/internal/metrics"
)

// Key prefixes for badger storage
const (
	movieKeyPrefix   = "movie:"
	creditsKeyPrefix = "credits:"
	trendingKey      = "trending:week"
)

// DefaultCacheTTL keeps an entry for a day.
const DefaultCacheTTL = 24 * time.Hour

// trendingTTL caps how long the weekly list is served from cache.
const trendingTTL = time.Hour

// gcDiscardRatio is the value log rewrite threshold.
const gcDiscardRatio = 0.5

// Cache stores enriched movies keyed by TMDB id. Entries expire through
// badger's per-entry TTL; there is no separate eviction.
type Cache struct {
	db       *badger.DB
	ttl      time.Duration
	inMemory bool
}

// OpenCache opens a badger cache at path, or an in-memory one when path is
// empty.
func OpenCache(path string, ttl time.Duration) (*Cache, error) {
	var opts badger.Options
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(path)
	}
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for metadata cache: %w", err)
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	logging.Info().
		Str("path", path).
		Bool("in_memory", path == "").
		Dur("ttl", ttl).
		Msg("Metadata cache opened")

	return &Cache{db: db, ttl: ttl, inMemory: path == ""}, nil
}

// GetMovie returns the cached movie for id.
func (c *Cache) GetMovie(id int) (*Movie, bool) {
	var m Movie
	ok := c.get(movieKey(id), &m)
	metrics.RecordCacheLookup("metadata", ok)
	if !ok {
		return nil, false
	}
	return &m, true
}

// SetMovie stores m under id with the cache TTL.
func (c *Cache) SetMovie(id int, m *Movie) error {
	return c.set(movieKey(id), m, c.ttl)
}

// GetCastNames returns the cached full cast list for id.
func (c *Cache) GetCastNames(id int) ([]string, bool) {
	var names []string
	ok := c.get(creditsKey(id), &names)
	metrics.RecordCacheLookup("credits", ok)
	return names, ok
}

// SetCastNames stores the full cast list of id with the cache TTL.
func (c *Cache) SetCastNames(id int, names []string) error {
	if names == nil {
		names = []string{}
	}
	return c.set(creditsKey(id), names, c.ttl)
}

// GetTrending returns the cached trending list.
func (c *Cache) GetTrending() ([]TrendingMovie, bool) {
	var list []TrendingMovie
	ok := c.get([]byte(trendingKey), &list)
	metrics.RecordCacheLookup("trending", ok)
	return list, ok
}

// SetTrending stores the trending list for at most an hour.
func (c *Cache) SetTrending(list []TrendingMovie) error {
	ttl := c.ttl
	if ttl > trendingTTL {
		ttl = trendingTTL
	}
	return c.set([]byte(trendingKey), list, ttl)
}

// RunGC rewrites value log files until nothing is left to reclaim.
func (c *Cache) RunGC() error {
	if c.inMemory {
		return nil
	}
	for {
		err := c.db.RunValueLogGC(gcDiscardRatio)
		if errors.Is(err, badger.ErrNoRewrite) || errors.Is(err, badger.ErrGCInMemoryMode) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("badger value log gc: %w", err)
		}
	}
}

// Close releases the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) get(key []byte, out any) bool {
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, out)
		})
	})
	if err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
		logging.Warn().Err(err).Str("key", string(key)).Msg("Metadata cache read failed")
	}
	return err == nil
}

func (c *Cache) set(key []byte, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry(key, data).WithTTL(ttl))
	})
}

func movieKey(id int) []byte {
	return []byte(fmt.Sprintf("%s%d", movieKeyPrefix, id))
}

func creditsKey(id int) []byte {
	return []byte(fmt.Sprintf("%s%d", creditsKeyPrefix, id))
}
