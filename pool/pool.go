// Package pool is the item-level cache store a health check runs against.
//
// A Pool hands out Item handles by key. Handles are plain values: Set and
// ExpiresAfter only change the handle, Save persists it. Ordinary refusals
// are reported as ok=false; backend failures come back as errors that
// satisfy Failure.
package pool

import (
	"context"
	"time"
)

type Pool interface {
	// GetItem returns a handle for key. The handle is a miss when nothing
	// live is stored under key.
	GetItem(ctx context.Context, key string) (*Item, error)
	// Save persists the handle's value and expiry.
	Save(ctx context.Context, item *Item) (bool, error)
	// DeleteItem removes key. Removing an absent key succeeds.
	DeleteItem(ctx context.Context, key string) (bool, error)
}

// Item is a handle on one cache entry.
type Item struct {
	key   string
	value string
	hit   bool
	ttl   time.Duration
}

// NewItem builds a handle; Pool implementations use it to report lookups.
func NewItem(key, value string, hit bool) *Item {
	return &Item{key: key, value: value, hit: hit}
}

func (i *Item) Key() string { return i.key }

// Get returns the value read from the store, or the value last Set.
func (i *Item) Get() string { return i.value }

func (i *Item) IsHit() bool { return i.hit }

func (i *Item) Set(v string) *Item {
	i.value = v
	return i
}

// ExpiresAfter sets the lifetime applied on Save; d <= 0 means no expiry.
func (i *Item) ExpiresAfter(d time.Duration) *Item {
	if d < 0 {
		d = 0
	}
	i.ttl = d
	return i
}

func (i *Item) TTL() time.Duration { return i.ttl }
