// Package sloghooks reports tiercache events to a *slog.Logger.
// Hits are not logged; everything else is, with optional sampling on the
// high-volume events.
package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/tiercache"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	FallbackEvery uint64
	SelfHealEvery uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	fallbackCtr atomic.Uint64
	selfHealCtr atomic.Uint64
}

var _ tiercache.Hooks = (*Hooks)(nil)

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

func (h *Hooks) PrimaryHit(string) {}

func (h *Hooks) FallbackHit(cache, backing string) {
	if h.l == nil || !sample(h.opts.FallbackEvery, &h.fallbackCtr) {
		return
	}
	h.l.Debug("tiercache.fallback_hit",
		"cache", cache,
		"backing", backing)
}

func (h *Hooks) FallbackMiss(cache, backing string, err error) {
	if h.l == nil || !sample(h.opts.FallbackEvery, &h.fallbackCtr) {
		return
	}
	h.l.Debug("tiercache.fallback_miss",
		"cache", cache,
		"backing", backing,
		"err", err)
}

func (h *Hooks) BackfillFailed(cache string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("tiercache.backfill_failed",
		"cache", cache,
		"err", err)
}

func (h *Hooks) PrimaryStoreFailed(cache string, err error) {
	if h.l == nil {
		return
	}
	h.l.Warn("tiercache.primary_store_failed",
		"cache", cache,
		"err", err)
}

func (h *Hooks) PushFailed(cache, target string, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("tiercache.push_failed",
		"cache", cache,
		"target", target,
		"err", err)
}

func (h *Hooks) SelfHeal(cache, storageKey, reason string) {
	if h.l == nil || !sample(h.opts.SelfHealEvery, &h.selfHealCtr) {
		return
	}
	h.l.Debug("tiercache.self_heal",
		"cache", cache,
		"key", h.redact(storageKey),
		"reason", reason)
}

func (h *Hooks) ProviderSetRejected(cache, storageKey string) {
	if h.l == nil {
		return
	}
	h.l.Warn("tiercache.provider_set_rejected",
		"cache", cache,
		"key", h.redact(storageKey))
}
