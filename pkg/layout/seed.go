package layout

import (
	"math"
	"math/rand/v2"

	"github.com/den3110/pulsemap/pkg/topology"
)

// seed assigns starting coordinates and zero velocities.
//
// Servers are spread evenly on a circle of cfg.ServerRadius around the
// canvas center. Every other node lands on its anchor — the target of its
// first surviving outgoing edge, usually the server it is deployed on —
// plus a uniform jitter in [-JitterRange, JitterRange] per axis; nodes
// with no anchor jitter around the center instead.
//
// Servers are placed before anchored nodes, so an anchor that is itself a
// server is already in position when read. An anchor pointing at a
// not-yet-seeded node contributes its current (zero) position; the
// jittered point is clamped into bounds like everything else.
func seed(m *topology.Model, cfg Config, rng *rand.Rand) (pts, vel []Point) {
	n := m.NodeCount()
	pts = make([]Point, n)
	vel = make([]Point, n)

	cx := cfg.Width / 2
	cy := cfg.Height / 2

	servers := m.Servers()
	for i, idx := range servers {
		theta := 2 * math.Pi * float64(i) / float64(max(len(servers), 1))
		pts[idx] = Point{
			X: cx + cfg.ServerRadius*math.Cos(theta),
			Y: cy + cfg.ServerRadius*math.Sin(theta),
		}
	}

	for i := range pts {
		if m.Node(i).IsServer() {
			continue
		}
		anchor := Point{X: cx, Y: cy}
		if a, ok := m.Anchor(i); ok {
			anchor = pts[a]
		}
		pts[i] = Point{
			X: anchor.X + jitter(rng, cfg.JitterRange),
			Y: anchor.Y + jitter(rng, cfg.JitterRange),
		}
	}

	// Clamp immediately so the bounds invariant holds even at zero
	// iterations.
	for i := range pts {
		pts[i] = Clamp(pts[i], cfg.Width, cfg.Height, cfg.Margin)
	}
	return pts, vel
}

// jitter draws a uniform value from [-r, r].
func jitter(rng *rand.Rand, r float64) float64 {
	if r <= 0 {
		return 0
	}
	return (rng.Float64()*2 - 1) * r
}
