// Package cache provides the short-lived key/value store used to memoize
// upstream lookups. Values are stored as JSON blobs so every backend returns
// copies and cached state can never be mutated through a caller.
package cache

import (
	"context"
	"time"
)

// Store is the contract every cache backend must satisfy. Entries expire
// after their TTL; expired keys behave exactly like absent keys. Backends
// must be safe for concurrent use with last-write-wins semantics per key.
type Store interface {
	// Exists reports whether an unexpired entry is present for key.
	Exists(ctx context.Context, key string) (bool, error)
	// Get returns the stored value and whether an unexpired entry was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key, replacing any previous entry, for ttl.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// DefaultTTL is how long cached lookups stay fresh unless configured
// otherwise.
const DefaultTTL = 30 * time.Minute
