package tiercache

import "context"

// Cache is the concrete, type-erased cache every combinator returns.
// It holds a name and two behaviors fixed at construction; a Cache value is
// never mutated. The zero Cache is NOT ready to use. Construct with New or From.
type Cache[K, V any] struct {
	name     string
	retrieve RetrieveFunc[K, V]
	store    StoreFunc[K, V]
}

var _ ReadWriteCache[string, struct{}] = Cache[string, struct{}]{}

// New builds a Cache from a name and the two primitives.
// Passing a nil func is a programmer error and panics.
func New[K, V any](name string, retrieve RetrieveFunc[K, V], store StoreFunc[K, V]) Cache[K, V] {
	if retrieve == nil {
		panic("tiercache: nil retrieve func")
	}
	if store == nil {
		panic("tiercache: nil store func")
	}
	return Cache[K, V]{name: name, retrieve: retrieve, store: store}
}

// From wraps any ReadWriteCache into a Cache that forwards every call.
// A Cache passed in is returned as is.
func From[K, V any](c ReadWriteCache[K, V]) Cache[K, V] {
	if cc, ok := c.(Cache[K, V]); ok {
		return cc
	}
	return Cache[K, V]{name: c.Name(), retrieve: c.Retrieve, store: c.Store}
}

func (c Cache[K, V]) Name() string { return c.name }

func (c Cache[K, V]) Retrieve(ctx context.Context, key K) (V, error) {
	return c.retrieve(ctx, key)
}

func (c Cache[K, V]) Store(ctx context.Context, key K, value V) error {
	return c.store(ctx, key, value)
}

// readOnly hides the write side of a cache.
type readOnly[K, V any] struct {
	name     string
	retrieve RetrieveFunc[K, V]
}

func (r readOnly[K, V]) Name() string { return r.name }

func (r readOnly[K, V]) Retrieve(ctx context.Context, key K) (V, error) {
	return r.retrieve(ctx, key)
}

// ReadOnly returns a view of c that only exposes Retrieve. Type assertions on the
// result cannot recover the write capability.
func ReadOnly[K, V any](c ReadOnlyCache[K, V]) ReadOnlyCache[K, V] {
	if r, ok := c.(readOnly[K, V]); ok {
		return r
	}
	return readOnly[K, V]{name: c.Name(), retrieve: c.Retrieve}
}

// NewReadOnly builds a read-only cache from a retrieve func, e.g. a loader in
// front of a database. Panics on a nil func.
func NewReadOnly[K, V any](name string, retrieve RetrieveFunc[K, V]) ReadOnlyCache[K, V] {
	if retrieve == nil {
		panic("tiercache: nil retrieve func")
	}
	return readOnly[K, V]{name: name, retrieve: retrieve}
}
