package tiercache

import "context"

// BothWayRetrieve reads key from primary and falls back to secondary on any
// primary error. A value found in secondary is written back to primary
// (backfill) before it is returned; the backfill outcome is only logged and
// reported to Hooks.BackfillFailed. On a miss in both tiers the secondary's
// error is returned.
//
// Calls are strictly sequential: primary read, then secondary read, then
// primary write. Secondary is never consulted on a primary hit.
func BothWayRetrieve[K, V any](
	ctx context.Context,
	primary ReadWriteCache[K, V],
	key K,
	secondary ReadOnlyCache[K, V],
	opts ...Option,
) (V, error) {
	return bothWayRetrieve(ctx, primary, key, secondary, newConfig(opts))
}

func bothWayRetrieve[K, V any](
	ctx context.Context,
	primary ReadWriteCache[K, V],
	key K,
	secondary ReadOnlyCache[K, V],
	cfg config,
) (V, error) {
	v, err := primary.Retrieve(ctx, key)
	if err == nil {
		cfg.hooks.PrimaryHit(primary.Name())
		return v, nil
	}

	cfg.log.Debug("cache miss, trying backing cache", Fields{
		"cache": primary.Name(), "backing": secondary.Name(), "key": key, "err": err,
	})
	v, err = secondary.Retrieve(ctx, key)
	if err != nil {
		cfg.log.Debug("backing cache miss", Fields{
			"cache": primary.Name(), "backing": secondary.Name(), "key": key, "err": err,
		})
		cfg.hooks.FallbackMiss(primary.Name(), secondary.Name(), err)
		var zero V
		return zero, err
	}
	cfg.hooks.FallbackHit(primary.Name(), secondary.Name())

	cfg.log.Debug("backing cache hit, backfilling", Fields{
		"cache": primary.Name(), "backing": secondary.Name(), "key": key,
	})
	// the read already completed; the backfill must not be cut short by the caller
	if serr := primary.Store(context.WithoutCancel(ctx), key, v); serr != nil {
		cfg.log.Warn("backfill failed", Fields{"cache": primary.Name(), "key": key, "err": serr})
		cfg.hooks.BackfillFailed(primary.Name(), serr)
	}
	return v, nil
}

// StorePushingTo writes value to primary and, only if that succeeds, to
// secondary. A primary failure is returned immediately. Otherwise the
// secondary's result is returned as is. A failed secondary write does not roll
// back the primary.
func StorePushingTo[K, V any](
	ctx context.Context,
	primary WritableCache[K, V],
	key K,
	value V,
	secondary WritableCache[K, V],
	opts ...Option,
) error {
	return storePushingTo(ctx, primary, key, value, secondary, newConfig(opts))
}

func storePushingTo[K, V any](
	ctx context.Context,
	primary WritableCache[K, V],
	key K,
	value V,
	secondary WritableCache[K, V],
	cfg config,
) error {
	if err := primary.Store(ctx, key, value); err != nil {
		cfg.log.Debug("store failed, not pushing", Fields{
			"cache": primary.Name(), "target": secondary.Name(), "key": key, "err": err,
		})
		cfg.hooks.PrimaryStoreFailed(primary.Name(), err)
		return err
	}

	cfg.log.Debug("stored, pushing", Fields{
		"cache": primary.Name(), "target": secondary.Name(), "key": key,
	})
	err := secondary.Store(context.WithoutCancel(ctx), key, value)
	if err != nil {
		cfg.hooks.PushFailed(primary.Name(), secondary.Name(), err)
	}
	return err
}

// BothWayCombined merges two read-write caches into one named
// "<primary> <-> <secondary>". Reads go through BothWayRetrieve, writes through
// StorePushingTo.
func BothWayCombined[K, V any](primary, secondary ReadWriteCache[K, V], opts ...Option) Cache[K, V] {
	cfg := newConfig(opts)
	return Cache[K, V]{
		name: primary.Name() + " <-> " + secondary.Name(),
		retrieve: func(ctx context.Context, key K) (V, error) {
			return bothWayRetrieve(ctx, primary, key, secondary, cfg)
		},
		store: func(ctx context.Context, key K, value V) error {
			return storePushingTo(ctx, primary, key, value, secondary, cfg)
		},
	}
}

// BothWayCombinedReadOnly merges a read-write primary with a read-only
// secondary into one cache named "<primary> <- <secondary>". Reads go through
// BothWayRetrieve, so the secondary still seeds the primary; writes go to the
// primary only.
func BothWayCombinedReadOnly[K, V any](
	primary ReadWriteCache[K, V],
	secondary ReadOnlyCache[K, V],
	opts ...Option,
) Cache[K, V] {
	cfg := newConfig(opts)
	return Cache[K, V]{
		name: primary.Name() + " <- " + secondary.Name(),
		retrieve: func(ctx context.Context, key K) (V, error) {
			return bothWayRetrieve(ctx, primary, key, secondary, cfg)
		},
		store: primary.Store,
	}
}

// Stack combines tiers fastest-first: tiers[0] <-> (tiers[1] <-> (...)).
// A single tier is returned wrapped; an empty slice yields ErrNoTiers.
func Stack[K, V any](tiers []ReadWriteCache[K, V], opts ...Option) (Cache[K, V], error) {
	if len(tiers) == 0 {
		return Cache[K, V]{}, ErrNoTiers
	}
	out := From(tiers[len(tiers)-1])
	for i := len(tiers) - 2; i >= 0; i-- {
		out = BothWayCombined[K, V](tiers[i], out, opts...)
	}
	return out, nil
}
