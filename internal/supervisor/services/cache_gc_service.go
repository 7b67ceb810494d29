// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

package services

import (
	"context"
	"time"

	"github.com/tomtom215/nextbinge/internal/logging"
)

// DefaultGCInterval is how often the cache value log is compacted.
const DefaultGCInterval = 10 * time.Minute

// GarbageCollector is satisfied by *metadata.Cache.
type GarbageCollector interface {
	RunGC() error
}

// CacheGCService runs badger value log GC on a ticker. Expired metadata
// entries only free disk space once their value log file is rewritten.
type CacheGCService struct {
	gc       GarbageCollector
	interval time.Duration
	name     string
}

// NewCacheGCService creates the GC job. A non-positive interval uses
// DefaultGCInterval.
func NewCacheGCService(gc GarbageCollector, interval time.Duration) *CacheGCService {
	if interval <= 0 {
		interval = DefaultGCInterval
	}
	return &CacheGCService{
		gc:       gc,
		interval: interval,
		name:     "metadata-cache-gc",
	}
}

// Serve implements suture.Service. GC errors are logged and the loop keeps
// going; only context cancellation ends it.
func (s *CacheGCService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log := logging.WithComponent(s.name)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			start := time.Now()
			if err := s.gc.RunGC(); err != nil {
				log.Warn().Err(err).Msg("Value log GC failed")
				continue
			}
			log.Debug().Dur("took", time.Since(start)).Msg("Value log GC complete")
		}
	}
}

// String implements fmt.Stringer for supervisor logs.
func (s *CacheGCService) String() string {
	return s.name
}
