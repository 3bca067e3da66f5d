package layout

import (
	"math"

	"github.com/den3110/pulsemap/pkg/topology"
)

// step advances the simulation by one iteration: pairwise repulsion,
// spring attraction along edges, damped Euler integration, then clamping.
func step(m *topology.Model, cfg Config, pts, vel []Point) {
	applyRepulsion(cfg, pts, vel)
	applyAttraction(m, cfg, pts, vel)
	integrate(cfg, pts, vel)
}

// applyRepulsion pushes every unordered node pair apart with an
// inverse-square force. A single pass covers both nodes of each pair
// (Newton's third law). There is no distance cutoff: distant pairs still
// exert a tiny force on each other, which can drift disconnected
// components apart.
func applyRepulsion(cfg Config, pts, vel []Point) {
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			dx, dy, d := separation(pts[i], pts[j])
			f := cfg.Repulsion / (d * d)
			ux, uy := dx/d, dy/d
			vel[i].X -= f * ux
			vel[i].Y -= f * uy
			vel[j].X += f * ux
			vel[j].Y += f * uy
		}
	}
}

// applyAttraction pulls each surviving edge toward its ideal rest length.
// The force is signed: positive deviation pulls the endpoints together,
// negative pushes them apart.
func applyAttraction(m *topology.Model, cfg Config, pts, vel []Point) {
	for _, l := range m.Links() {
		dx, dy, d := separation(pts[l.From], pts[l.To])
		f := cfg.Attraction * (d - cfg.IdealEdgeLength)
		ux, uy := dx/d, dy/d
		vel[l.From].X += f * ux
		vel[l.From].Y += f * uy
		vel[l.To].X -= f * ux
		vel[l.To].Y -= f * uy
	}
}

// integrate applies damping, advances positions, and clamps into bounds.
func integrate(cfg Config, pts, vel []Point) {
	for i := range pts {
		vel[i].X *= cfg.Damping
		vel[i].Y *= cfg.Damping
		pts[i].X += vel[i].X
		pts[i].Y += vel[i].Y
		pts[i] = Clamp(pts[i], cfg.Width, cfg.Height, cfg.Margin)
	}
}

// separation returns the displacement from a to b and its length, floored
// at minDistance so coincident nodes never divide by zero or explode the
// force magnitude.
func separation(a, b Point) (dx, dy, d float64) {
	dx = b.X - a.X
	dy = b.Y - a.Y
	d = math.Max(math.Sqrt(dx*dx+dy*dy), minDistance)
	return dx, dy, d
}
