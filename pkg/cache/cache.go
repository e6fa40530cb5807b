// Package cache stores computed layouts and rendered wireframes.
//
// All backends implement [Cache], a byte-oriented key/value store with
// per-entry expiry. The CLI uses [FileCache] under the user cache directory,
// the server uses [MemoryCache], [RedisCache] or [MongoCache], and tests or
// --no-cache runs use [NullCache].
//
// Keys come from a [Keyer] so the CLI and the server agree on the layout of
// the keyspace. [ScopedKeyer] prefixes every key for tenant isolation.
package cache

import (
	"context"
	"time"
)

// Default time-to-live values per entry kind.
const (
	// TTLLayout applies to computed layout frames. Layouts are pure functions
	// of their form, so they can live long.
	TTLLayout = 7 * 24 * time.Hour

	// TTLArtifact applies to rendered SVG, PNG, JSON and text output.
	TTLArtifact = 7 * 24 * time.Hour

	// TTLFrame applies to frames stored by the server under a request ID.
	TTLFrame = 24 * time.Hour
)

// Cache is a key/value store for serialized layout data.
//
// Get reports a miss with ok == false and a nil error; errors are reserved
// for backend failures. A ttl of zero stores the entry without expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
