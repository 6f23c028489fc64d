// Package memory provides an unbounded in-process tier over a Go map.
// Use provider/ristretto or provider/bigcache through store/ when the tier
// needs a memory bound.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/unkn0wn-root/tiercache"
)

// Cache is a generic, thread-safe, in-memory tier.
// Values are stored as given; callers sharing pointers share state.
type Cache[K comparable, V any] struct {
	name string
	mu   sync.RWMutex
	data map[K]V
}

var _ tiercache.ReadWriteCache[string, int] = (*Cache[string, int])(nil)

func New[K comparable, V any](name string) *Cache[K, V] {
	return &Cache[K, V]{name: name, data: make(map[K]V)}
}

// NewFrom returns a tier pre-filled with a copy of seed.
func NewFrom[K comparable, V any](name string, seed map[K]V) *Cache[K, V] {
	c := New[K, V](name)
	for k, v := range seed {
		c.data[k] = v
	}
	return c
}

func (c *Cache[K, V]) Name() string { return c.name }

func (c *Cache[K, V]) Retrieve(_ context.Context, key K) (V, error) {
	c.mu.RLock()
	v, ok := c.data[key]
	c.mu.RUnlock()
	if !ok {
		var zero V
		return zero, fmt.Errorf("%s: key '%v': %w", c.name, key, tiercache.ErrNotFound)
	}
	return v, nil
}

func (c *Cache[K, V]) Store(_ context.Context, key K, value V) error {
	c.mu.Lock()
	c.data[key] = value
	c.mu.Unlock()
	return nil
}

// Delete removes key. Idempotent.
func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	delete(c.data, key)
	c.mu.Unlock()
}

func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
