// Package cache stores rendered cards.
//
// All backends implement [Cache]: [NullCache] disables caching, [FileCache]
// keeps entries on local disk for the CLI and single-node servers, and
// [RedisCache] shares entries between server replicas. Keys come from a
// [Keyer], which hashes the username together with the normalized render
// options.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the value for key and whether it was found. Expired
	// entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}
