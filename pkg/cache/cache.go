// Package cache provides pluggable caching for fetched topology documents.
//
// The fleet map recomputes its layout on every refresh, so layouts are
// never cached — only the topology documents fetched from the control
// plane, which are expensive network round-trips on mobile links. Three
// backends implement the same interface:
//
//   - [FileCache]: file-based, for CLI usage (~/.cache/pulsemap/)
//   - [RedisCache]: Redis-backed, for the serve mode behind multiple instances
//   - [NullCache]: no-op, for tests and --no-cache
//
// Keys are generated by a [Keyer] so every entry point hashes options the
// same way. Use [NewScopedKeyer] to namespace keys per fleet.
package cache

import (
	"context"
	"time"
)

// TTLs for cached data. Topology documents carry live status fields, so
// they go stale quickly compared to typical HTTP caching.
const (
	// TTLTopology is how long a fetched topology document stays fresh.
	TTLTopology = 5 * time.Minute

	// TTLHTTP is the default TTL for raw HTTP response caching.
	TTLHTTP = 15 * time.Minute
)

// Cache is the interface all cache backends implement.
//
// Get returns (data, true, nil) on a hit and (nil, false, nil) on a miss;
// errors are reserved for backend failures. A ttl of 0 in Set means the
// entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
