package cachecheck

import (
	"context"
	"fmt"
	"time"

	"github.com/unkn0wn-root/cachecheck/pool"
)

const (
	// Identifier keys this check among others in an aggregator.
	Identifier = "cache"
	// ItemTTL bounds the probe entry's life in case it is never deleted.
	ItemTTL = 30 * time.Second
)

// Checker is what a health-check aggregator consumes.
type Checker interface {
	Identifier() string
	// Check runs one verification. A non-nil error means the check itself
	// broke, not the component it watches.
	Check(ctx context.Context) (Result, error)
}

// Options tune a CacheChecker. Only Pool is required.
type Options struct {
	Pool         pool.Pool
	KeyGenerator KeyGenerator // nil => NewUUIDKeyGenerator("")
	Logger       Logger       // nil => NopLogger
	Hooks        Hooks        // nil => NopHooks
}

// CacheChecker verifies a cache by writing, reading back and deleting one
// probe entry per Check. It holds no per-check state; concurrent Checks
// are safe as long as Pool and KeyGenerator are.
type CacheChecker struct {
	pool  pool.Pool
	keys  KeyGenerator
	log   Logger
	hooks Hooks
}

var _ Checker = (*CacheChecker)(nil)

func New(opts Options) (*CacheChecker, error) {
	if opts.Pool == nil {
		return nil, ErrNilPool
	}
	c := &CacheChecker{
		pool:  opts.Pool,
		keys:  opts.KeyGenerator,
		log:   coalesce[Logger](opts.Logger, NopLogger{}),
		hooks: coalesce[Hooks](opts.Hooks, NopHooks{}),
	}
	if c.keys == nil {
		c.keys = NewUUIDKeyGenerator("")
	}
	return c, nil
}

func (c *CacheChecker) Identifier() string { return Identifier }

// Check never imposes its own deadline; ctx reaches every pool call.
// Errors satisfying pool.Failure are folded into a failed Result. Every
// other error is returned with a zero Result.
func (c *CacheChecker) Check(ctx context.Context) (Result, error) {
	start := time.Now()
	key, step, res, err := c.run(ctx)
	if err != nil {
		f, ok := pool.AsFailure(err)
		if !ok {
			c.log.Error("cache check errored", Fields{"key": key, "step": step.String(), "err": err})
			c.hooks.UnexpectedError(key, step, err)
			return Result{}, err
		}
		res = failed(f.Error())
	}

	elapsed := time.Since(start)
	if res.Success {
		c.log.Debug("cache check passed", Fields{"key": key, "elapsed": elapsed})
	} else {
		c.log.Warn("cache check failed", Fields{"key": key, "step": step.String(), "msg": res.Message})
	}
	c.hooks.CheckCompleted(key, step, res, elapsed)
	return res, nil
}

// run walks the cycle and stops at the first failing step.
func (c *CacheChecker) run(ctx context.Context) (string, Step, Result, error) {
	key, err := c.keys.Generate()
	if err != nil {
		return "", StepGenerate, Result{}, fmt.Errorf("%w: %w", ErrKeyGeneration, err)
	}

	item, err := c.pool.GetItem(ctx, key)
	if err != nil {
		return key, StepWrite, Result{}, err
	}
	item.Set(key)
	item.ExpiresAfter(ItemTTL)

	ok, err := c.pool.Save(ctx, item)
	if err != nil {
		return key, StepWrite, Result{}, err
	}
	if !ok {
		return key, StepWrite, failed(fmt.Sprintf("Writing item %s failed", key)), nil
	}

	item, err = c.pool.GetItem(ctx, key)
	if err != nil {
		return key, StepVerifyHit, Result{}, err
	}
	if !item.IsHit() {
		return key, StepVerifyHit, failed(fmt.Sprintf("Missed hit on item %s", key)), nil
	}
	if item.Get() != key {
		return key, StepVerifyValue, failed(fmt.Sprintf("Mismatched value on item %s", key)), nil
	}

	ok, err = c.pool.DeleteItem(ctx, key)
	if err != nil {
		return key, StepDelete, Result{}, err
	}
	if !ok {
		return key, StepDelete, failed(fmt.Sprintf("Removing item %s failed", key)), nil
	}

	return key, StepDone, succeeded(fmt.Sprintf("Success on writing, reading and deleting cache item %s", key)), nil
}
