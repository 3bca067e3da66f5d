package layout

import "math"

// Clamp returns p constrained to the drawable canvas: margin ≤ x ≤
// width−margin and margin ≤ y ≤ height−margin. The engine applies it
// after seeding and after every iteration, so forces always act on
// in-bounds coordinates; renderers may reuse it when the canvas resizes.
func Clamp(p Point, width, height, margin float64) Point {
	return Point{
		X: clamp(p.X, margin, width-margin),
		Y: clamp(p.Y, margin, height-margin),
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
