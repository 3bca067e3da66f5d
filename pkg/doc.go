// Package pkg provides the core libraries for Pulsemap fleet layout.
//
// # Overview
//
// Pulsemap turns a fleet topology — servers and the projects deployed on
// them — into canvas positions for the control panel's map screen. The pkg
// directory is organized into three main areas:
//
//  1. [topology] - Serialization types and the validated graph model
//  2. [layout] - The force-directed simulation engine
//  3. [pipeline] - Orchestration (fetch → layout) used by CLI and API
//
// # Architecture
//
// The typical data flow through Pulsemap:
//
//	Pulse control plane (or topology.json)
//	         ↓
//	    [source/pulse] package (fetch, retry, auth)
//	         ↓
//	    [topology] package (validate, deduplicate, index)
//	         ↓
//	    [layout] package (seed, simulate, clamp)
//	         ↓
//	    layout.json snapshot
//
// # Quick Start
//
// Fetch a topology and compute a layout:
//
//	import (
//	    "context"
//	    "github.com/den3110/pulsemap/pkg/pipeline"
//	    "github.com/den3110/pulsemap/pkg/source/pulse"
//	)
//
//	source, _ := pulse.New(pulse.Config{BaseURL: "https://pulse.example.com"})
//	runner := pipeline.NewRunner(nil, nil, source, nil)
//	result, _ := runner.Execute(context.Background(), pipeline.Options{
//	    BaseURL: "https://pulse.example.com",
//	})
//	for _, n := range result.Layout.Nodes {
//	    fmt.Printf("%s at (%.0f, %.0f)\n", n.ID, n.X, n.Y)
//	}
//
// # Main Packages
//
// [topology] - The wire format ({nodes, edges} JSON), the validated Model
// (duplicate ids collapsed, dangling edges dropped, servers partitioned),
// and the positioned Layout snapshot.
//
// [layout] - The simulation engine: circular server seeding, anchored
// project jitter, pairwise repulsion, spring attraction along edges, and
// per-iteration bounds clamping. Deterministic for a fixed seed.
//
// [pipeline] - The fetch → layout flow shared by CLI and API. Topology
// documents are cached; layouts are recomputed on every run.
//
// [source/pulse] - HTTP client for the Pulse control plane with bearer
// auth and retry on transient failures.
//
// [cache] - Cache interface with file, Redis, and null backends plus
// SHA-256 key derivation.
//
// [httputil] - Retry helper with exponential backoff and a retryable
// error marker.
//
// [errors] - Structured errors with codes, input validation helpers, and
// HTTP status mapping for the API.
//
// [observability] - Hook interfaces for pipeline, cache, and HTTP
// instrumentation with no-op defaults.
//
// [buildinfo] - Version metadata injected at build time via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/layout/...     # Specific package
//	go test -run Example         # Examples only
//
// [topology]: https://pkg.go.dev/github.com/den3110/pulsemap/pkg/topology
// [layout]: https://pkg.go.dev/github.com/den3110/pulsemap/pkg/layout
// [pipeline]: https://pkg.go.dev/github.com/den3110/pulsemap/pkg/pipeline
// [source/pulse]: https://pkg.go.dev/github.com/den3110/pulsemap/pkg/source/pulse
// [cache]: https://pkg.go.dev/github.com/den3110/pulsemap/pkg/cache
// [httputil]: https://pkg.go.dev/github.com/den3110/pulsemap/pkg/httputil
// [errors]: https://pkg.go.dev/github.com/den3110/pulsemap/pkg/errors
// [observability]: https://pkg.go.dev/github.com/den3110/pulsemap/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/den3110/pulsemap/pkg/buildinfo
package pkg
