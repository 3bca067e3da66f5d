// Package layout computes canvas positions for fleet topology graphs.
//
// The engine is a force-directed simulation: every node pair repels with
// an inverse-square force, every edge pulls its endpoints toward an ideal
// rest length, and velocities decay each step so the system settles. The
// simulation runs a fixed number of iterations with no convergence check,
// bounding cost at O(n²·iterations) — an intentional simplification for
// fleets of a few dozen to a few hundred nodes.
//
// # Usage
//
//	m := topology.BuildModel(t)
//	positions := layout.Build(m, layout.DefaultConfig())
//	// positions["srv-1"] → layout.Point{X, Y}
//
// [Build] derives its random source from Config.Seed; identical input,
// config, and seed produce bit-identical positions. Pass an explicit
// generator to [BuildWithRand] to control seeding jitter directly.
//
// # Guarantees
//
// Every returned coordinate is finite and lies within
// [Margin, Width−Margin] × [Margin, Height−Margin]. Inter-node distances
// are clamped to a minimum of 1 before any force computation, so coincident
// nodes never produce NaN or infinite forces. An empty model returns an
// empty map without running the simulation.
//
// The engine is synchronous and allocates all state per call: nothing is
// shared across invocations and nothing is retained after Build returns.
// Callers on latency-sensitive threads should run Build on a worker and
// consume the snapshot; mid-flight state is not observable.
package layout
