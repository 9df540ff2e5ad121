// Package provider defines the byte store abstraction behind pool.ProviderPool.
//
// Implementations MUST be byte-for-byte transparent: Get must return exactly the
// same []byte that was previously passed to Set for a key (no prepended/appended
// metadata, no re-encoding, no mutation).
//
// Important: the keyspace "item:<ns>:" is owned by the pool. External code MUST
// NOT write values under this prefix. Foreign writes fail wire validation and
// are deleted on read.
package provider

import (
	"context"
	"time"
)

// Provider is a minimal byte store with TTLs.
// Must be safe for concurrent use.
type Provider interface {
	// Get returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// If an IO/remote error happens, return (nil, false, err).
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value with the given TTL (ttl<=0 => no expiry). May ignore
	// cost or ttl if unsupported.
	// Returns ok=false when the store rejected the write under pressure.
	Set(ctx context.Context, key string, value []byte, cost int64, ttl time.Duration) (ok bool, err error)

	// Del removes a key. Removing an absent key is a success.
	// Returns ok=false when the store refused the removal.
	Del(ctx context.Context, key string) (ok bool, err error)

	// Close releases resources.
	Close(ctx context.Context) error
}
