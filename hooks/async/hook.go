// Package asynchook moves Hooks callbacks off the read/write path.
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{SelfHealEvery: 10})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	users := tiercache.BothWayCombined[string, User](mem, rds, tiercache.WithHooks(hooks))
//
// Events are dropped, never blocked on, when the queue is full.
package asynchook

import (
	"sync"
	"sync/atomic"

	"github.com/unkn0wn-root/tiercache"
)

type Hooks struct {
	inner   tiercache.Hooks
	q       chan func()
	wg      sync.WaitGroup
	once    sync.Once
	mu      sync.RWMutex
	closed  bool
	dropped atomic.Uint64
}

var _ tiercache.Hooks = (*Hooks)(nil)

func New(inner tiercache.Hooks, workers, qlen int) *Hooks {
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

// Close drains queued events and stops the workers. Events fired after Close
// are dropped.
func (h *Hooks) Close() {
	h.once.Do(func() {
		h.mu.Lock()
		h.closed = true
		close(h.q)
		h.mu.Unlock()
		h.wg.Wait()
	})
}

// Dropped reports how many events were discarded because the queue was full
// or the hooks were closed.
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

func (h *Hooks) PrimaryHit(c string)                { h.try(func() { h.inner.PrimaryHit(c) }) }
func (h *Hooks) FallbackHit(c, b string)            { h.try(func() { h.inner.FallbackHit(c, b) }) }
func (h *Hooks) BackfillFailed(c string, err error) { h.try(func() { h.inner.BackfillFailed(c, err) }) }
func (h *Hooks) FallbackMiss(c, b string, err error) {
	h.try(func() { h.inner.FallbackMiss(c, b, err) })
}
func (h *Hooks) PrimaryStoreFailed(c string, err error) {
	h.try(func() { h.inner.PrimaryStoreFailed(c, err) })
}
func (h *Hooks) PushFailed(c, t string, err error) {
	h.try(func() { h.inner.PushFailed(c, t, err) })
}
func (h *Hooks) SelfHeal(c, k, r string) { h.try(func() { h.inner.SelfHeal(c, k, r) }) }
func (h *Hooks) ProviderSetRejected(c, k string) {
	h.try(func() { h.inner.ProviderSetRejected(c, k) })
}
