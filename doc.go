// Package cachecheck implements a health check that proves a cache backend
// works by writing, reading back and deleting one probe entry.
//
// Components:
//   - pool.Pool: item-level cache store (get/set/delete by key, hit check).
//     pool.ProviderPool adapts any provider.Provider (memory, BigCache,
//     Ristretto, Redis) with a pluggable codec.Codec[string].
//   - KeyGenerator: fresh probe key per check; UUIDKeyGenerator by default.
//   - CacheChecker: runs the cycle and reports a Result.
//
// Cycle:
//
//	key := gen.Generate()              // key doubles as the stored value
//	item := pool.GetItem(key); item.Set(key); item.ExpiresAfter(30s)
//	pool.Save(item)                    // "Writing item <key> failed"
//	pool.GetItem(key).IsHit()          // "Missed hit on item <key>"
//	pool.GetItem(key).Get() == key     // "Mismatched value on item <key>"
//	pool.DeleteItem(key)               // "Removing item <key> failed"
//
// Errors satisfying pool.Failure become a failed Result carrying the error
// message. Any other error is returned from Check as is.
package cachecheck
