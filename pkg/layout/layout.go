package layout

import (
	"math/rand/v2"

	"github.com/den3110/pulsemap/pkg/topology"
)

// Point is a 2-D coordinate on the canvas. The same struct doubles as a
// velocity vector inside the simulation; velocities never leave the engine.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Build computes final positions for every node in the model.
//
// The random source for seeding jitter is derived from cfg.Seed, so two
// calls with the same model, config, and seed return bit-identical maps.
// An empty model short-circuits to an empty map without simulating.
//
// A nil model is a programmer error and panics; malformed topology content
// never reaches the engine (BuildModel drops it), so Build has no error
// return.
func Build(m *topology.Model, cfg Config) map[string]Point {
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0xdeadbeef))
	return BuildWithRand(m, cfg, rng)
}

// BuildWithRand is Build with an explicit random source for the seeding
// phase. The simulation itself is deterministic; rng only influences the
// initial jitter of anchored nodes.
func BuildWithRand(m *topology.Model, cfg Config, rng *rand.Rand) map[string]Point {
	if m.NodeCount() == 0 {
		return map[string]Point{}
	}

	pts, vel := seed(m, cfg, rng)
	for range max(cfg.Iterations, 0) {
		step(m, cfg, pts, vel)
	}

	out := make(map[string]Point, len(pts))
	for i, n := range m.Nodes() {
		out[n.ID] = pts[i]
	}
	return out
}
