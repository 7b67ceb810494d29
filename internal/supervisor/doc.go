// NextBinge - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nextbinge

/*
Package supervisor runs the server's long-lived services under a suture v4
supervisor tree.

# Overview

	RootSupervisor ("nextbinge")
	├── DataSupervisor ("data-layer")
	│   └── CacheGCService (when metadata uses an on-disk cache)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

The catalog is loaded before the tree starts, so every service sees a fully
built, read-only catalog. A crashing GC job restarts inside the data layer
without touching the HTTP listener.

Restarts back off after FailureThreshold failures; failures decay at
FailureDecay per second. Supervisor events are logged through sutureslog
into the zerolog-backed slog handler.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))
	tree.AddDataService(services.NewCacheGCService(cache, cfg.Metadata.GCInterval))
	err = tree.Serve(ctx)
*/
package supervisor
