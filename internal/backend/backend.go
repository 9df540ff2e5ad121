// Package backend turns CLI config into a pool.Pool over a real provider.
package backend

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/cachecheck/codec"
	"github.com/unkn0wn-root/cachecheck/internal/config"
	"github.com/unkn0wn-root/cachecheck/pool"
	pr "github.com/unkn0wn-root/cachecheck/provider"
	"github.com/unkn0wn-root/cachecheck/provider/bigcache"
	"github.com/unkn0wn-root/cachecheck/provider/memory"
	"github.com/unkn0wn-root/cachecheck/provider/redis"
	"github.com/unkn0wn-root/cachecheck/provider/ristretto"
)

// Backend owns the provider behind Pool; Close releases it.
type Backend struct {
	Pool     *pool.ProviderPool
	provider pr.Provider
}

func (b *Backend) Close(ctx context.Context) error { return b.provider.Close(ctx) }

// Open builds the provider named by cfg.Backend. For redis the server is
// pinged first; an unreachable server is a setup error, not a check result.
func Open(ctx context.Context, cfg config.Config, onSelfHeal func(storageKey, reason string)) (*Backend, error) {
	c, err := Codec(cfg.Codec, cfg.MaxDecode)
	if err != nil {
		return nil, err
	}
	p, err := Provider(ctx, cfg)
	if err != nil {
		return nil, err
	}
	pl, err := pool.New(pool.Options{
		Provider:   p,
		Codec:      c,
		Namespace:  cfg.Namespace,
		OnSelfHeal: onSelfHeal,
	})
	if err != nil {
		_ = p.Close(ctx)
		return nil, err
	}
	return &Backend{Pool: pl, provider: p}, nil
}

func Provider(ctx context.Context, cfg config.Config) (pr.Provider, error) {
	switch cfg.Backend {
	case "memory":
		return memory.New(), nil
	case "bigcache":
		return bigcache.New(bigcache.Config{HardMaxCacheSizeMB: 8})
	case "ristretto":
		return ristretto.New(ristretto.Config{
			NumCounters: 1e4,
			MaxCost:     1 << 20,
			BufferItems: 64,
		})
	case "redis":
		rdb := goredis.NewUniversalClient(&goredis.UniversalOptions{
			Addrs:    cfg.RedisAddrs,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		p, err := redis.New(redis.Config{Client: rdb, CloseClient: true})
		if err != nil {
			_ = rdb.Close()
			return nil, err
		}
		if err := p.Ping(ctx); err != nil {
			_ = p.Close(ctx)
			return nil, fmt.Errorf("backend: redis %v: %w", cfg.RedisAddrs, err)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("backend: unknown backend %q", cfg.Backend)
	}
}

// Codec resolves a codec name; maxDecode > 0 caps decoded payloads.
func Codec(name string, maxDecode int) (codec.Codec[string], error) {
	var c codec.Codec[string]
	switch name {
	case "", "string":
		c = codec.String{}
	case "json":
		c = codec.JSON[string]{}
	case "cbor":
		cb, err := codec.NewCBOR[string](true)
		if err != nil {
			return nil, err
		}
		c = cb
	case "msgpack":
		c = codec.Msgpack[string]{}
	case "protobuf":
		c = codec.ProtoString{}
	default:
		return nil, fmt.Errorf("backend: unknown codec %q", name)
	}
	if maxDecode > 0 {
		c = codec.Limit[string]{Inner: c, MaxDecode: maxDecode}
	}
	return c, nil
}
