// Package cache stores rendered zonegen artifacts between runs.
//
// # Backends
//
//   - [FileCache]: JSON entries under a directory, sharded by key hash. Used by
//     the CLI (default location ~/.cache/zonegen).
//   - [RedisCache]: a shared cache for several server instances.
//   - [NullCache]: never stores anything (--no-cache).
//
// # Keys
//
// Keys are built by a [Keyer] from content hashes, so a changed layout
// document or output format always misses. [ScopedKeyer] adds a namespace
// prefix, which the HTTP server uses to keep API entries apart from CLI
// entries in a shared Redis instance.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts stay cached.
const TTLArtifact = 24 * time.Hour

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	// Get returns the stored value and true, or false on a miss. Expired
	// entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero keeps the entry until it is
	// deleted.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
