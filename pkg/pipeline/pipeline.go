// Package pipeline provides the core fetch → layout pipeline for pulsemap.
//
// This package implements the flow shared by the CLI and the serve mode:
// fetch a raw topology (from the control plane or a file), validate and
// index it, and compute canvas positions. Centralizing the flow keeps
// behavior identical across entry points.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Fetch: obtain the raw `{nodes, edges}` topology document
//  2. Layout: validate/index the graph and run the force simulation
//
// Fetched topology documents are cached (they are network round-trips);
// layouts are not — every refresh recomputes positions from scratch,
// which keeps the engine stateless across requests.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, source, logger)
//	opts := pipeline.Options{Width: 1080, Height: 1920}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	positions := result.Layout.Nodes
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/den3110/pulsemap/pkg/cache"
	pkgerrors "github.com/den3110/pulsemap/pkg/errors"
	"github.com/den3110/pulsemap/pkg/layout"
	"github.com/den3110/pulsemap/pkg/topology"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Fetch options
	BaseURL string `json:"base_url,omitempty"`
	Refresh bool   `json:"refresh,omitempty"` // bypass the topology cache

	// Canvas options
	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
	Margin float64 `json:"margin,omitempty"`

	// Simulation options
	Iterations      int     `json:"iterations,omitempty"`
	Damping         float64 `json:"damping,omitempty"`
	Repulsion       float64 `json:"repulsion,omitempty"`
	Attraction      float64 `json:"attraction,omitempty"`
	IdealEdgeLength float64 `json:"ideal_edge_length,omitempty"`
	ServerRadius    float64 `json:"server_radius,omitempty"`
	JitterRange     float64 `json:"jitter_range,omitempty"`
	Seed            uint64  `json:"seed,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Topology is the raw fetched graph.
	Topology topology.Topology

	// TopologyHash is the content hash of the fetched document.
	TopologyHash string

	// Layout is the positioned output snapshot.
	Layout topology.Layout

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount    int
	EdgeCount    int
	DroppedEdges int
	FetchTime    time.Duration
	LayoutTime   time.Duration
}

// CacheInfo tracks cache hits. Only the fetch stage is cacheable; layout
// is recomputed on every run.
type CacheInfo struct {
	FetchHit bool
}

// =============================================================================
// Options Methods
// =============================================================================

// SetLayoutDefaults fills unset canvas and simulation fields with the
// engine defaults.
func (o *Options) SetLayoutDefaults() {
	if o.Width == 0 {
		o.Width = layout.DefaultWidth
	}
	if o.Height == 0 {
		o.Height = layout.DefaultHeight
	}
	if o.Margin == 0 {
		o.Margin = layout.DefaultMargin
	}
	if o.Iterations == 0 {
		o.Iterations = layout.DefaultIterations
	}
	if o.Damping == 0 {
		o.Damping = layout.DefaultDamping
	}
	if o.Repulsion == 0 {
		o.Repulsion = layout.DefaultRepulsion
	}
	if o.Attraction == 0 {
		o.Attraction = layout.DefaultAttraction
	}
	if o.IdealEdgeLength == 0 {
		o.IdealEdgeLength = layout.DefaultIdealEdgeLength
	}
	if o.ServerRadius == 0 {
		o.ServerRadius = layout.DefaultServerRadius
	}
	if o.JitterRange == 0 {
		o.JitterRange = layout.DefaultJitterRange
	}
	if o.Seed == 0 {
		o.Seed = layout.DefaultSeed
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	return pkgerrors.ValidateCanvas(o.Width, o.Height, o.Margin)
}

// ValidateForFetch checks required fields for a control-plane fetch.
func (o *Options) ValidateForFetch() error {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return pkgerrors.ValidateBaseURL(o.BaseURL)
}

// ValidateAndSetDefaults checks required fields and applies defaults for
// the full pipeline. This method is idempotent - calling it multiple
// times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForFetch(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// LayoutConfig converts the options into an engine configuration.
func (o *Options) LayoutConfig() layout.Config {
	return layout.Config{
		Iterations:      o.Iterations,
		Damping:         o.Damping,
		Repulsion:       o.Repulsion,
		Attraction:      o.Attraction,
		IdealEdgeLength: o.IdealEdgeLength,
		Width:           o.Width,
		Height:          o.Height,
		Margin:          o.Margin,
		ServerRadius:    o.ServerRadius,
		JitterRange:     o.JitterRange,
		Seed:            o.Seed,
	}
}

// TopologyKeyOpts returns cache key options for the fetch stage.
func (o *Options) TopologyKeyOpts() cache.TopologyKeyOpts {
	return cache.TopologyKeyOpts{BaseURL: o.BaseURL}
}
