package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	pr "github.com/unkn0wn-root/cachecheck/provider"
)

var ErrClosed = errors.New("memory provider: closed")

type entry struct {
	v   []byte
	exp time.Time // zero => no TTL
}

// Memory is an in-process map store with lazy TTL expiry.
// Values are copied on the way in and out.
type Memory struct {
	mu     sync.RWMutex
	m      map[string]entry
	closed bool
	now    func() time.Time
}

var _ pr.Provider = (*Memory)(nil)

func New() *Memory {
	return &Memory{m: make(map[string]entry), now: time.Now}
}

func (p *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return nil, false, ErrClosed
	}
	e, ok := p.m[key]
	p.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !e.exp.IsZero() && !p.now().Before(e.exp) {
		p.mu.Lock()
		if cur, ok := p.m[key]; ok && cur.exp.Equal(e.exp) {
			delete(p.m, key)
		}
		p.mu.Unlock()
		return nil, false, nil
	}
	return append([]byte(nil), e.v...), true, nil
}

func (p *Memory) Set(_ context.Context, key string, value []byte, _ int64, ttl time.Duration) (bool, error) {
	var exp time.Time
	if ttl > 0 {
		exp = p.now().Add(ttl)
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return false, ErrClosed
	}
	p.m[key] = entry{v: append([]byte(nil), value...), exp: exp}
	return true, nil
}

func (p *Memory) Del(_ context.Context, key string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return false, ErrClosed
	}
	delete(p.m, key)
	return true, nil
}

// Len counts stored entries, expired ones included until they are read.
func (p *Memory) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.m)
}

// Close drops all entries; later calls fail with ErrClosed.
func (p *Memory) Close(_ context.Context) error {
	p.mu.Lock()
	p.closed = true
	p.m = make(map[string]entry)
	p.mu.Unlock()
	return nil
}
