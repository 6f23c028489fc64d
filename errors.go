package tiercache

import "errors"

var (
	// ErrNotFound is the conventional miss error. Backends wrap it so callers can
	// tell a miss from an outage with errors.Is; combinators treat both the same.
	ErrNotFound = errors.New("tiercache: not found")

	// ErrNoTiers is returned by Stack when given no caches.
	ErrNoTiers = errors.New("tiercache: no tiers to stack")
)
