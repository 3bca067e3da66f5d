package pipeline

// =============================================================================
// Runner - Cached Pipeline Execution
// =============================================================================

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/den3110/pulsemap/pkg/cache"
	"github.com/den3110/pulsemap/pkg/observability"
	"github.com/den3110/pulsemap/pkg/topology"
)

// TopologySource fetches a raw topology document from the control plane.
type TopologySource interface {
	FetchTopology(ctx context.Context) (topology.Topology, error)
}

// Runner executes the pipeline with caching support.
//
// Only the fetch stage consults the cache: topology documents are
// expensive network round-trips and change slowly, while layouts are
// cheap to recompute and always built fresh so that canvas or force
// parameter changes take effect immediately.
type Runner struct {
	cache  cache.Cache
	keyer  cache.Keyer
	source TopologySource
	logger *log.Logger
}

// NewRunner creates a pipeline runner. A nil cache disables caching, a
// nil keyer falls back to the default key scheme.
func NewRunner(c cache.Cache, keyer cache.Keyer, source TopologySource, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		cache:  c,
		keyer:  keyer,
		source: source,
		logger: logger,
	}
}

// Execute runs the full pipeline: fetch the topology (through the cache)
// and compute a fresh layout.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	t, info, fetchTime, err := r.fetchWithCache(ctx, opts)
	if err != nil {
		return nil, err
	}

	snapshot, stats, err := GenerateLayout(ctx, t, opts)
	if err != nil {
		return nil, err
	}
	stats.FetchTime = fetchTime

	data, err := topology.MarshalTopology(t)
	if err != nil {
		return nil, err
	}

	return &Result{
		Topology:     t,
		TopologyHash: cache.Hash(data),
		Layout:       snapshot,
		Stats:        stats,
		CacheInfo:    info,
	}, nil
}

// Fetch runs only the fetch stage, through the cache.
func (r *Runner) Fetch(ctx context.Context, opts Options) (topology.Topology, CacheInfo, error) {
	if err := opts.ValidateForFetch(); err != nil {
		return topology.Topology{}, CacheInfo{}, err
	}
	t, info, _, err := r.fetchWithCache(ctx, opts)
	return t, info, err
}

// Close releases the runner's cache resources.
func (r *Runner) Close() error {
	return r.cache.Close()
}

// fetchWithCache returns the topology for opts, consulting the cache
// unless Refresh is set. Fetched documents are stored with TTLTopology.
func (r *Runner) fetchWithCache(ctx context.Context, opts Options) (topology.Topology, CacheInfo, time.Duration, error) {
	key := r.keyer.TopologyKey(opts.TopologyKeyOpts())

	if !opts.Refresh {
		data, hit, err := r.cache.Get(ctx, key)
		if err != nil {
			r.logger.Warn("topology cache read failed", "error", err)
		}
		if hit {
			t, err := topology.UnmarshalTopology(data)
			if err == nil {
				observability.Cache().OnCacheHit(ctx, "topology")
				r.logger.Debug("topology cache hit", "key", key)
				return t, CacheInfo{FetchHit: true}, 0, nil
			}
			r.logger.Warn("discarding corrupt cached topology", "key", key, "error", err)
		} else {
			observability.Cache().OnCacheMiss(ctx, "topology")
		}
	}

	observability.Pipeline().OnFetchStart(ctx, opts.BaseURL)
	start := time.Now()
	t, err := r.source.FetchTopology(ctx)
	elapsed := time.Since(start)
	observability.Pipeline().OnFetchComplete(ctx, opts.BaseURL, len(t.Nodes), elapsed, err)
	if err != nil {
		return topology.Topology{}, CacheInfo{}, elapsed, err
	}

	if data, err := topology.MarshalTopology(t); err == nil {
		if err := r.cache.Set(ctx, key, data, cache.TTLTopology); err != nil {
			r.logger.Warn("topology cache write failed", "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "topology", len(data))
		}
	}

	r.logger.Debug("topology fetched", "nodes", len(t.Nodes), "edges", len(t.Edges), "duration", elapsed)
	return t, CacheInfo{}, elapsed, nil
}
