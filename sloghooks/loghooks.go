// Package sloghooks reports check outcomes through log/slog.
package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/unkn0wn-root/cachecheck"
)

type Options struct {
	// Sampling to avoid floods on frequent probes; 0/1 = log all.
	// Failures and unexpected errors are never sampled.
	SuccessEvery  uint64
	SelfHealEvery uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	successCtr  atomic.Uint64
	selfHealCtr atomic.Uint64
}

var _ cachecheck.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) CheckCompleted(key string, step cachecheck.Step, r cachecheck.Result, elapsed time.Duration) {
	if h.l == nil {
		return
	}
	if r.Success {
		if !sample(h.opts.SuccessEvery, &h.successCtr) {
			return
		}
		h.l.Debug("cachecheck.passed",
			"key", h.redact(key),
			"elapsed", elapsed)
		return
	}
	h.l.Warn("cachecheck.failed",
		"key", h.redact(key),
		"step", step.String(),
		"msg", r.Message,
		"elapsed", elapsed)
}

func (h *Hooks) UnexpectedError(key string, step cachecheck.Step, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("cachecheck.unexpected_error",
		"key", h.redact(key),
		"step", step.String(),
		"err", err)
}

// SelfHeal fits pool.Options.OnSelfHeal.
func (h *Hooks) SelfHeal(storageKey, reason string) {
	if h.l == nil || !sample(h.opts.SelfHealEvery, &h.selfHealCtr) {
		return
	}
	h.l.Debug("cachecheck.self_heal",
		"key", h.redact(storageKey),
		"reason", reason)
}
