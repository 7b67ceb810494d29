// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

/*
Package services adapts server components to suture.Service.

Each wrapper turns a component's own lifecycle into a context-aware Serve
method that blocks until the context ends, returns an error to request a
restart, and names itself through fmt.Stringer for supervisor logs.

  - HTTPServerService: ListenAndServe plus graceful Shutdown
  - CacheGCService: periodic badger value log GC for the metadata cache
*/
package services
