package tiercache

// Hooks lightweight callbacks for tier events.
// Implementations MUST be cheap and non-blocking: they run inline on the read
// and write paths. Wrap slow sinks with hooks/async.
//
// cache is the name of the primary tier (or of a store for SelfHeal and
// ProviderSetRejected); backing/target is the secondary tier.
type Hooks interface {
	// The primary tier answered a read.
	PrimaryHit(cache string)

	// The primary missed and the secondary answered.
	FallbackHit(cache, backing string)

	// Both tiers missed; err is the secondary's error returned to the caller.
	FallbackMiss(cache, backing string, err error)

	// Writing a fallback value back into the primary failed. The read itself
	// still succeeded, so this is the only place the failure surfaces.
	BackfillFailed(cache string, err error)

	// A push-through write stopped at the primary.
	PrimaryStoreFailed(cache string, err error)

	// The primary write succeeded but the secondary write failed. The primary
	// is not rolled back.
	PushFailed(cache, target string, err error)

	// A store deleted an entry it could not decode.
	// reason ∈ {"corrupt", "value_decode"}
	SelfHeal(cache, storageKey, reason string)

	// A provider returned ok=false on Set (admission/backpressure).
	ProviderSetRejected(cache, storageKey string)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) PrimaryHit(string)                  {}
func (NopHooks) FallbackHit(string, string)         {}
func (NopHooks) FallbackMiss(string, string, error) {}
func (NopHooks) BackfillFailed(string, error)       {}
func (NopHooks) PrimaryStoreFailed(string, error)   {}
func (NopHooks) PushFailed(string, string, error)   {}
func (NopHooks) SelfHeal(string, string, string)    {}
func (NopHooks) ProviderSetRejected(string, string) {}

// MultiHooks fans every event out to each member in order.
type MultiHooks []Hooks

var _ Hooks = MultiHooks(nil)

func (m MultiHooks) PrimaryHit(c string) {
	for _, h := range m {
		h.PrimaryHit(c)
	}
}

func (m MultiHooks) FallbackHit(c, b string) {
	for _, h := range m {
		h.FallbackHit(c, b)
	}
}

func (m MultiHooks) FallbackMiss(c, b string, err error) {
	for _, h := range m {
		h.FallbackMiss(c, b, err)
	}
}

func (m MultiHooks) BackfillFailed(c string, err error) {
	for _, h := range m {
		h.BackfillFailed(c, err)
	}
}

func (m MultiHooks) PrimaryStoreFailed(c string, err error) {
	for _, h := range m {
		h.PrimaryStoreFailed(c, err)
	}
}

func (m MultiHooks) PushFailed(c, t string, err error) {
	for _, h := range m {
		h.PushFailed(c, t, err)
	}
}

func (m MultiHooks) SelfHeal(c, k, r string) {
	for _, h := range m {
		h.SelfHeal(c, k, r)
	}
}

func (m MultiHooks) ProviderSetRejected(c, k string) {
	for _, h := range m {
		h.ProviderSetRejected(c, k)
	}
}
