// Package tiercache composes caches into multi-tier read-through /
// write-through hierarchies.
//
// Capabilities:
//   - ReadOnlyCache[K, V]: Retrieve(ctx, key) (V, error).
//   - WritableCache[K, V]: Store(ctx, key, value) error.
//   - ReadWriteCache[K, V]: both.
//
// Cache[K, V] is the concrete, immutable value every combinator returns. It
// wraps two funcs, so any backend (see store/, memory/) and any previously
// combined cache fit behind the same type.
//
// Combinators:
//
//	BothWayRetrieve   primary miss -> secondary -> backfill primary
//	StorePushingTo    primary write -> (on success) secondary write
//	BothWayCombined          "P <-> S": reads fall back, writes push through
//	BothWayCombinedReadOnly  "P <- S":  reads fall back, writes hit P only
//
// Typical stack (memory in front of redis in front of a database loader):
//
//	mem := memory.New[string, User]("mem")
//	rds, _ := store.New(store.Options[string, User]{Name: "redis", Provider: p, Codec: codec.JSON[User]{}})
//	db := tiercache.NewReadOnly[string, User]("db", loadUser)
//	hot := tiercache.BothWayCombined[string, User](mem, rds)
//	users := tiercache.BothWayCombinedReadOnly[string, User](hot, db)
//
// Diagnostics are injected with WithLogger and WithHooks; both default to no-ops.
package tiercache
