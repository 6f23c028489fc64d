// Package otelhook records tiercache events on an OpenTelemetry counter.
//
//	hooks, err := otelhook.New(otel.Meter("users"))
//
// Emits tiercache.events{tiercache.cache, tiercache.event}.
package otelhook

import (
	"context"

	"github.com/unkn0wn-root/tiercache"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	attrCache = "tiercache.cache"
	attrEvent = "tiercache.event"
)

type Hooks struct {
	events metric.Int64Counter
}

var _ tiercache.Hooks = (*Hooks)(nil)

func New(meter metric.Meter) (*Hooks, error) {
	events, err := meter.Int64Counter(
		"tiercache.events",
		metric.WithDescription("Total number of tier events by cache and event kind"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, err
	}
	return &Hooks{events: events}, nil
}

// Hooks carry no context; events are recorded against Background.
func (h *Hooks) add(cache, event string) {
	h.events.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String(attrCache, cache),
		attribute.String(attrEvent, event),
	))
}

func (h *Hooks) PrimaryHit(c string)                  { h.add(c, "primary_hit") }
func (h *Hooks) FallbackHit(c, _ string)              { h.add(c, "fallback_hit") }
func (h *Hooks) FallbackMiss(c, _ string, _ error)    { h.add(c, "fallback_miss") }
func (h *Hooks) BackfillFailed(c string, _ error)     { h.add(c, "backfill_failed") }
func (h *Hooks) PrimaryStoreFailed(c string, _ error) { h.add(c, "primary_store_failed") }
func (h *Hooks) PushFailed(c, _ string, _ error)      { h.add(c, "push_failed") }
func (h *Hooks) SelfHeal(c, _, reason string)         { h.add(c, "self_heal_"+reason) }
func (h *Hooks) ProviderSetRejected(c, _ string)      { h.add(c, "provider_set_rejected") }
