package tiercache

import "context"

// Result is the outcome of an asynchronous operation: Value on success, Err on
// failure. Exactly one Result is delivered per operation.
type Result[T any] struct {
	Value T
	Err   error
}

func (r Result[T]) OK() bool { return r.Err == nil }

func (r Result[T]) Unwrap() (T, error) { return r.Value, r.Err }

// RetrieveAsync runs c.Retrieve on its own goroutine. The returned channel is
// buffered, so the goroutine never leaks if the caller stops listening.
func RetrieveAsync[K, V any](ctx context.Context, c ReadOnlyCache[K, V], key K) <-chan Result[V] {
	ch := make(chan Result[V], 1)
	go func() {
		v, err := c.Retrieve(ctx, key)
		ch <- Result[V]{Value: v, Err: err}
	}()
	return ch
}

// StoreAsync runs c.Store on its own goroutine; see RetrieveAsync.
func StoreAsync[K, V any](ctx context.Context, c WritableCache[K, V], key K, value V) <-chan Result[struct{}] {
	ch := make(chan Result[struct{}], 1)
	go func() {
		ch <- Result[struct{}]{Err: c.Store(ctx, key, value)}
	}()
	return ch
}
