package pool

import (
	"context"
	"errors"
	"time"

	"github.com/unkn0wn-root/cachecheck/codec"
	"github.com/unkn0wn-root/cachecheck/internal/util"
	"github.com/unkn0wn-root/cachecheck/internal/wire"
	pr "github.com/unkn0wn-root/cachecheck/provider"
)

const DefaultNamespace = "healthcheck"

// Self-heal reasons passed to Options.OnSelfHeal.
const (
	ReasonCorrupt     = "corrupt"
	ReasonExpired     = "expired"
	ReasonValueDecode = "value_decode"
)

// Options configure a ProviderPool. Only Provider is required.
type Options struct {
	Provider  pr.Provider
	Codec     codec.Codec[string] // nil => codec.String
	Namespace string              // "" => DefaultNamespace

	// OnSelfHeal is told about entries dropped on read. Must be cheap.
	OnSelfHeal func(storageKey, reason string)

	now func() time.Time
}

// ProviderPool serves Items from a byte Provider. Each entry is framed with
// its absolute expiry, so hits honor ExpiresAfter even when the provider
// ignores per-entry TTLs.
type ProviderPool struct {
	provider   pr.Provider
	codec      codec.Codec[string]
	ns         string
	onSelfHeal func(string, string)
	now        func() time.Time
}

var _ Pool = (*ProviderPool)(nil)

var errNilProvider = errors.New("pool: provider is required")

func New(opts Options) (*ProviderPool, error) {
	if opts.Provider == nil {
		return nil, errNilProvider
	}
	p := &ProviderPool{
		provider:   opts.Provider,
		codec:      opts.Codec,
		ns:         opts.Namespace,
		onSelfHeal: opts.OnSelfHeal,
		now:        opts.now,
	}
	if p.codec == nil {
		p.codec = codec.String{}
	}
	if p.ns == "" {
		p.ns = DefaultNamespace
	}
	if p.onSelfHeal == nil {
		p.onSelfHeal = func(string, string) {}
	}
	if p.now == nil {
		p.now = time.Now
	}
	return p, nil
}

func (p *ProviderPool) GetItem(ctx context.Context, key string) (*Item, error) {
	if err := checkKey("get", key); err != nil {
		return nil, err
	}
	k := util.ItemKey(p.ns, key)
	raw, ok, err := p.provider.Get(ctx, k)
	if err != nil {
		return nil, &Error{Op: "get", Key: key, Err: err}
	}
	if !ok {
		return NewItem(key, "", false), nil
	}

	exp, payload, err := wire.DecodeItem(raw)
	if err != nil {
		p.selfHeal(ctx, k, ReasonCorrupt)
		return NewItem(key, "", false), nil
	}
	if wire.Expired(exp, p.now()) {
		p.selfHeal(ctx, k, ReasonExpired)
		return NewItem(key, "", false), nil
	}
	v, err := p.codec.Decode(payload)
	if err != nil {
		p.selfHeal(ctx, k, ReasonValueDecode)
		return NewItem(key, "", false), nil
	}
	return NewItem(key, v, true), nil
}

func (p *ProviderPool) Save(ctx context.Context, item *Item) (bool, error) {
	if item == nil {
		return false, &Error{Op: "save", Err: errors.New("nil item")}
	}
	if err := checkKey("save", item.Key()); err != nil {
		return false, err
	}
	payload, err := p.codec.Encode(item.Get())
	if err != nil {
		return false, &Error{Op: "save", Key: item.Key(), Err: err}
	}

	ttl := item.TTL()
	var exp time.Time
	if ttl > 0 {
		exp = p.now().Add(ttl)
	}
	b := wire.EncodeItem(exp, payload)

	ok, err := p.provider.Set(ctx, util.ItemKey(p.ns, item.Key()), b, int64(len(b)), ttl)
	if err != nil {
		return false, &Error{Op: "save", Key: item.Key(), Err: err}
	}
	return ok, nil
}

func (p *ProviderPool) DeleteItem(ctx context.Context, key string) (bool, error) {
	if err := checkKey("delete", key); err != nil {
		return false, err
	}
	ok, err := p.provider.Del(ctx, util.ItemKey(p.ns, key))
	if err != nil {
		return false, &Error{Op: "delete", Key: key, Err: err}
	}
	return ok, nil
}

// selfHeal drops an unreadable entry, best effort.
func (p *ProviderPool) selfHeal(ctx context.Context, storageKey, reason string) {
	_, _ = p.provider.Del(ctx, storageKey)
	p.onSelfHeal(storageKey, reason)
}
