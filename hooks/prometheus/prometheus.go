// Package promhook counts tiercache events in a Prometheus CounterVec.
//
//	reg := prometheus.NewRegistry()
//	hooks := promhook.New(reg)
//	users := tiercache.BothWayCombined[string, User](mem, rds, tiercache.WithHooks(hooks))
//
// Exposes tiercache_events_total{cache, event}. For SelfHeal the event label
// carries the reason ("self_heal_corrupt", "self_heal_value_decode").
package promhook

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/unkn0wn-root/tiercache"
)

type Hooks struct {
	events *prometheus.CounterVec
}

var _ tiercache.Hooks = (*Hooks)(nil)

// New registers the counter on reg. Registering twice on the same registry
// panics, as with any Prometheus collector.
func New(reg prometheus.Registerer) *Hooks {
	h := &Hooks{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tiercache_events_total",
			Help: "Total number of tier events by cache and event kind",
		}, []string{"cache", "event"}),
	}
	reg.MustRegister(h.events)
	return h
}

// Events exposes the underlying collector.
func (h *Hooks) Events() *prometheus.CounterVec { return h.events }

func (h *Hooks) inc(cache, event string) { h.events.WithLabelValues(cache, event).Inc() }

func (h *Hooks) PrimaryHit(c string)                  { h.inc(c, "primary_hit") }
func (h *Hooks) FallbackHit(c, _ string)              { h.inc(c, "fallback_hit") }
func (h *Hooks) FallbackMiss(c, _ string, _ error)    { h.inc(c, "fallback_miss") }
func (h *Hooks) BackfillFailed(c string, _ error)     { h.inc(c, "backfill_failed") }
func (h *Hooks) PrimaryStoreFailed(c string, _ error) { h.inc(c, "primary_store_failed") }
func (h *Hooks) PushFailed(c, _ string, _ error)      { h.inc(c, "push_failed") }
func (h *Hooks) SelfHeal(c, _, reason string)         { h.inc(c, "self_heal_"+reason) }
func (h *Hooks) ProviderSetRejected(c, _ string)      { h.inc(c, "provider_set_rejected") }
