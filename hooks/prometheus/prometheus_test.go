package promhook

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unkn0wn-root/tiercache"
	"github.com/unkn0wn-root/tiercache/memory"
)

func TestCountsEvents(t *testing.T) {
	reg := prometheus.NewRegistry()
	h := New(reg)

	h.PrimaryHit("mem")
	h.PrimaryHit("mem")
	h.PushFailed("mem", "redis", errors.New("x"))
	h.SelfHeal("redis", "user:1", "corrupt")

	assert.Equal(t, 2.0, testutil.ToFloat64(h.Events().WithLabelValues("mem", "primary_hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.Events().WithLabelValues("mem", "push_failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.Events().WithLabelValues("redis", "self_heal_corrupt")))
	assert.Equal(t, 3, testutil.CollectAndCount(h.Events()))

	mfs, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, mfs, 1)
	assert.Equal(t, "tiercache_events_total", mfs[0].GetName())
}

func TestWiredIntoCombinedCache(t *testing.T) {
	ctx := context.Background()
	h := New(prometheus.NewRegistry())

	mem := memory.New[string, int]("mem")
	disk := memory.NewFrom("disk", map[string]int{"a": 1})
	c := tiercache.BothWayCombined[string, int](mem, disk, tiercache.WithHooks(h))

	_, err := c.Retrieve(ctx, "a") // fallback hit
	require.NoError(t, err)
	_, err = c.Retrieve(ctx, "a") // primary hit
	require.NoError(t, err)
	_, err = c.Retrieve(ctx, "b") // miss in both
	require.ErrorIs(t, err, tiercache.ErrNotFound)

	assert.Equal(t, 1.0, testutil.ToFloat64(h.Events().WithLabelValues("mem", "fallback_hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.Events().WithLabelValues("mem", "primary_hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.Events().WithLabelValues("mem", "fallback_miss")))
}
