package tiercache

import "context"

// Named is implemented by every cache. The name is for diagnostics only and
// must not be used for identity.
type Named interface {
	Name() string
}

// ReadOnlyCache can retrieve values.
// A miss is reported as an error (wrapping ErrNotFound by convention), never as a
// zero value with a nil error.
type ReadOnlyCache[K, V any] interface {
	Named
	Retrieve(ctx context.Context, key K) (V, error)
}

// WritableCache can store values.
// On error the state of the underlying store is implementation-defined.
type WritableCache[K, V any] interface {
	Named
	Store(ctx context.Context, key K, value V) error
}

// ReadWriteCache is both readable and writable. Every combinator returns one,
// so composed caches can be composed again.
type ReadWriteCache[K, V any] interface {
	ReadOnlyCache[K, V]
	WritableCache[K, V]
}

// RetrieveFunc is the function form of ReadOnlyCache.Retrieve.
type RetrieveFunc[K, V any] func(ctx context.Context, key K) (V, error)

// StoreFunc is the function form of WritableCache.Store.
type StoreFunc[K, V any] func(ctx context.Context, key K, value V) error
