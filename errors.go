package cachecheck

import "errors"

var (
	ErrNilPool = errors.New("cachecheck: pool is required")
	// ErrKeyGeneration wraps generator failures returned from Check.
	// They are never turned into a Result.
	ErrKeyGeneration = errors.New("cachecheck: generate probe key")
)
