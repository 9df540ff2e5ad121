// Package asynchook moves check hooks off the Check path.
//
// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{SuccessEvery: 10})
//	hooks := asynchook.New(raw, 1, 256) // 1 worker; queue 256 events
//	defer hooks.Close()
//
//	checker, _ := cachecheck.New(cachecheck.Options{Pool: p, Hooks: hooks})
package asynchook

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/unkn0wn-root/cachecheck"
)

// Hooks queues events for inner. When the queue is full the event is
// dropped and counted; Check never waits on a slow hook.
type Hooks struct {
	inner   cachecheck.Hooks
	q       chan func()
	wg      sync.WaitGroup
	once    sync.Once
	mu      sync.RWMutex
	closed  bool
	dropped atomic.Uint64
}

var _ cachecheck.Hooks = (*Hooks)(nil)

func New(inner cachecheck.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains queued events and stops the workers. Events sent after
// Close are dropped.
func (h *Hooks) Close() {
	h.once.Do(func() {
		h.mu.Lock()
		h.closed = true
		close(h.q)
		h.mu.Unlock()
		h.wg.Wait()
	})
}

// Dropped counts events lost to a full queue or a closed Hooks.
func (h *Hooks) Dropped() uint64 { return h.dropped.Load() }

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		h.dropped.Add(1)
		return
	}
	select {
	case h.q <- f:
	default: // drop
		h.dropped.Add(1)
	}
}

func (h *Hooks) CheckCompleted(key string, step cachecheck.Step, r cachecheck.Result, d time.Duration) {
	h.try(func() { h.inner.CheckCompleted(key, step, r, d) })
}

func (h *Hooks) UnexpectedError(key string, step cachecheck.Step, err error) {
	h.try(func() { h.inner.UnexpectedError(key, step, err) })
}
