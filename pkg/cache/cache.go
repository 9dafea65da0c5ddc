// Package cache provides response caching for API clients. Two backends
// are available: an in-memory store for short-lived processes and a
// SQLite store that survives restarts.
package cache

import "time"

// Store is the cache backend used by the API client. Implementations
// must be safe for concurrent use.
type Store interface {
	// Get returns the cached payload for key. The second return value
	// reports whether a fresh entry was found.
	Get(key string) ([]byte, bool, error)
	// Set stores a payload under key for the given TTL.
	Set(key string, data []byte, ttl time.Duration) error
	// Close releases any resources held by the store.
	Close() error
}
