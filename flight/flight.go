// Package flight collapses concurrent reads of the same key into one call to
// the wrapped cache. Put it in front of a slow tier (or a whole combined
// stack) to keep a burst of misses from fanning out to the backing store.
package flight

import (
	"context"
	"fmt"

	"github.com/unkn0wn-root/tiercache"
	"golang.org/x/sync/singleflight"
)

// Cache wraps a ReadWriteCache. Store passes straight through.
type Cache[K, V any] struct {
	inner tiercache.ReadWriteCache[K, V]
	keyer func(K) string
	g     singleflight.Group
}

var _ tiercache.ReadWriteCache[string, int] = (*Cache[string, int])(nil)

// New wraps inner. keyer maps keys to the string identity used to group
// calls; nil means string keys as is, anything else through fmt.Sprint.
func New[K, V any](inner tiercache.ReadWriteCache[K, V], keyer func(K) string) *Cache[K, V] {
	if keyer == nil {
		keyer = defaultKeyer[K]
	}
	return &Cache[K, V]{inner: inner, keyer: keyer}
}

func defaultKeyer[K any](k K) string {
	if s, ok := any(k).(string); ok {
		return s
	}
	return fmt.Sprint(k)
}

func (c *Cache[K, V]) Name() string { return c.inner.Name() }

// Retrieve joins an in-flight read for the same key or starts one. The shared
// read runs detached from any single caller's cancellation; each caller still
// returns early when its own ctx is done.
func (c *Cache[K, V]) Retrieve(ctx context.Context, key K) (V, error) {
	ch := c.g.DoChan(c.keyer(key), func() (any, error) {
		return c.inner.Retrieve(context.WithoutCancel(ctx), key)
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			var zero V
			return zero, res.Err
		}
		v, _ := res.Val.(V) // nil when V is an interface holding nil
		return v, nil
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}

// Store writes through and drops any in-flight read for key, so callers
// arriving after the write start a fresh read.
func (c *Cache[K, V]) Store(ctx context.Context, key K, value V) error {
	err := c.inner.Store(ctx, key, value)
	c.g.Forget(c.keyer(key))
	return err
}
