package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-fleet isolation.
// Useful when one cache backend serves several fleets or environments
// that must not read each other's topology snapshots.
//
// Example usage:
//
//	// Fleet-specific keys
//	fleetKeyer := NewScopedKeyer(NewDefaultKeyer(), "fleet:eu-west:")
//
//	// Shared keys
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// HTTPKey generates a prefixed key for HTTP response caching.
func (k *ScopedKeyer) HTTPKey(namespace, key string) string {
	return k.prefix + k.inner.HTTPKey(namespace, key)
}

// TopologyKey generates a prefixed key for topology document caching.
func (k *ScopedKeyer) TopologyKey(opts TopologyKeyOpts) string {
	return k.prefix + k.inner.TopologyKey(opts)
}
