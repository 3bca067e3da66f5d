package layout

// =============================================================================
// Defaults - Single Source of Truth for CLI, API, and Pipeline
// =============================================================================

const (
	// DefaultIterations is the fixed simulation step count.
	DefaultIterations = 200

	// DefaultDamping is the per-step velocity decay factor.
	DefaultDamping = 0.85

	// DefaultRepulsion scales the inverse-square force between node pairs.
	DefaultRepulsion = 2000.0

	// DefaultAttraction scales the spring force along edges.
	DefaultAttraction = 0.01

	// DefaultIdealEdgeLength is the rest distance edges pull toward.
	DefaultIdealEdgeLength = 150.0

	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 800.0

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 600.0

	// DefaultMargin is the inset every position is clamped into.
	DefaultMargin = 50.0

	// DefaultServerRadius is the radius of the server placement circle.
	DefaultServerRadius = 150.0

	// DefaultJitterRange bounds the uniform offset applied to anchored nodes.
	DefaultJitterRange = 60.0

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)
)

// minDistance is the floor applied to inter-node distances before any
// force computation. It is the single guard that keeps coincident nodes
// from producing division by zero or unbounded force magnitudes.
const minDistance = 1.0

// =============================================================================
// Config
// =============================================================================

// Config holds all tunables for one layout computation.
//
// Build uses the Config exactly as given — a zero Iterations means zero
// simulation steps, which is valid (the output is the clamped seeded
// placement). Use [DefaultConfig] as the starting point and override
// fields as needed; pipeline and CLI layers are responsible for filling
// unset values before calling the engine.
type Config struct {
	Iterations      int     `json:"iterations"`
	Damping         float64 `json:"damping"`
	Repulsion       float64 `json:"repulsion"`
	Attraction      float64 `json:"attraction"`
	IdealEdgeLength float64 `json:"ideal_edge_length"`

	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Margin float64 `json:"margin"`

	ServerRadius float64 `json:"server_radius"`
	JitterRange  float64 `json:"jitter_range"`
	Seed         uint64  `json:"seed"`
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() Config {
	return Config{
		Iterations:      DefaultIterations,
		Damping:         DefaultDamping,
		Repulsion:       DefaultRepulsion,
		Attraction:      DefaultAttraction,
		IdealEdgeLength: DefaultIdealEdgeLength,
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		Margin:          DefaultMargin,
		ServerRadius:    DefaultServerRadius,
		JitterRange:     DefaultJitterRange,
		Seed:            DefaultSeed,
	}
}
