package pipeline

// =============================================================================
// Layout Stage - Graph Validation and Force Simulation
// =============================================================================

import (
	"context"
	"time"

	"github.com/den3110/pulsemap/pkg/layout"
	"github.com/den3110/pulsemap/pkg/observability"
	"github.com/den3110/pulsemap/pkg/topology"
)

// GenerateLayout validates and indexes the topology, runs the force
// simulation, and assembles the positioned snapshot. The layout stage is
// deterministic: the same topology and options always produce the same
// snapshot.
//
// Malformed input is repaired rather than rejected - duplicate node ids
// collapse to the last occurrence and edges referencing unknown nodes are
// dropped. The returned stats record how many edges were removed.
func GenerateLayout(ctx context.Context, t topology.Topology, opts Options) (topology.Layout, Stats, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return topology.Layout{}, Stats{}, err
	}

	model := topology.BuildModel(t)
	dropped := topology.DroppedEdges(t, model)

	observability.Pipeline().OnLayoutStart(ctx, model.NodeCount(), model.EdgeCount())
	start := time.Now()

	positions := layout.Build(model, opts.LayoutConfig())

	elapsed := time.Since(start)
	observability.Pipeline().OnLayoutComplete(ctx, model.NodeCount(), elapsed, nil)

	placed := make([]topology.PlacedNode, 0, model.NodeCount())
	for _, n := range model.Nodes() {
		p := positions[n.ID]
		placed = append(placed, topology.PlacedNode{Node: n, X: p.X, Y: p.Y})
	}

	snapshot := topology.Layout{
		Width:  opts.Width,
		Height: opts.Height,
		Margin: opts.Margin,
		Seed:   opts.Seed,
		Nodes:  placed,
		Edges:  model.Edges(),
	}

	stats := Stats{
		NodeCount:    model.NodeCount(),
		EdgeCount:    model.EdgeCount(),
		DroppedEdges: dropped,
		LayoutTime:   elapsed,
	}

	opts.Logger.Debug("layout computed",
		"nodes", stats.NodeCount,
		"edges", stats.EdgeCount,
		"dropped_edges", stats.DroppedEdges,
		"duration", elapsed)

	return snapshot, stats, nil
}
