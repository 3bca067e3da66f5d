package cache

// TopologyKeyOpts are the options that distinguish topology cache entries.
// Two fetches against different control planes must never share an entry.
type TopologyKeyOpts struct {
	BaseURL string `json:"base_url"`
}

// Keyer generates cache keys. Implementations must be deterministic:
// identical inputs always produce identical keys.
type Keyer interface {
	// HTTPKey generates a key for raw HTTP response caching.
	HTTPKey(namespace, key string) string

	// TopologyKey generates a key for a fetched topology document.
	TopologyKey(opts TopologyKeyOpts) string
}

// DefaultKeyer is the standard key generator. Keys embed a SHA-256 hash
// of the options so arbitrary URLs and tokens never leak into key names.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// HTTPKey generates a key for HTTP response caching.
func (k *DefaultKeyer) HTTPKey(namespace, key string) string {
	return hashKey("http", namespace, key)
}

// TopologyKey generates a key for topology document caching.
func (k *DefaultKeyer) TopologyKey(opts TopologyKeyOpts) string {
	return hashKey("topology", opts)
}
