package cache

import (
	"context"
	"time"
)

// Provider defines the key/value cache contract. Both backends (memory
// for development, Redis for shared deployments) satisfy it identically,
// so the catalog service never knows which one it is talking to.
type Provider interface {
	// Get retrieves a value by key. Returns ErrCacheMiss if the key is
	// absent or its TTL has elapsed; an expired entry behaves exactly
	// like a missing one.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL, overwriting unconditionally.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key, reporting whether an entry was actually removed.
	Delete(ctx context.Context, key string) (bool, error)

	// Has checks whether a live entry exists for the key.
	Has(ctx context.Context, key string) (bool, error)

	// Clear removes every key with the given prefix. An empty prefix
	// wipes the whole namespace. Clearing an empty prefix is a no-op.
	Clear(ctx context.Context, prefix string) error

	// Close releases backend resources.
	Close() error
}

// Common cache errors
type CacheError string

func (e CacheError) Error() string { return string(e) }

const (
	// ErrCacheMiss indicates the key was not found in cache.
	ErrCacheMiss CacheError = "cache miss"
)
