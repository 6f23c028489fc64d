// Package store turns a byte Provider and a Codec into a tier usable with the
// tiercache combinators.
//
// Keys:
//
//	<namespace>:<keyer(key)>  (just keyer(key) when Namespace is empty)
//
// Values are framed (magic, version, length) before they reach the provider so
// foreign or truncated bytes under a key are detected. Such entries are deleted
// on read (self-heal) and reported as a miss.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/unkn0wn-root/tiercache"
	c "github.com/unkn0wn-root/tiercache/codec"
	"github.com/unkn0wn-root/tiercache/internal/util"
	"github.com/unkn0wn-root/tiercache/internal/wire"
	pr "github.com/unkn0wn-root/tiercache/provider"
)

// CostFunc reports the admission cost of an encoded entry (ristretto).
type CostFunc func(storageKey string, raw []byte) int64

// Options configure a Store. Name, Provider and Codec are required.
type Options[K, V any] struct {
	Name      string // tier name used in combined names and diagnostics
	Namespace string // logical namespace to avoid collisions, e.g. "user"
	Provider  pr.Provider
	Codec     c.Codec[V]

	Keyer       func(K) string   // nil => strings as is, anything else via fmt.Sprint
	Logger      tiercache.Logger // if nil, NopLogger is used
	Hooks       tiercache.Hooks  // if nil, NopHooks is used
	ComputeCost CostFunc         // default 1
}

// Store is a provider-backed tier. Safe for concurrent use when its provider is.
type Store[K, V any] struct {
	name     string
	ns       string
	provider pr.Provider
	codec    c.Codec[V]
	keyer    func(K) string
	log      tiercache.Logger
	hooks    tiercache.Hooks
	cost     CostFunc
}

var _ tiercache.ReadWriteCache[string, struct{}] = (*Store[string, struct{}])(nil)

func New[K, V any](opts Options[K, V]) (*Store[K, V], error) {
	if opts.Name == "" {
		return nil, errors.New("store: name is required")
	}
	if opts.Provider == nil {
		return nil, errors.New("store: provider is required")
	}
	if opts.Codec == nil {
		return nil, errors.New("store: codec is required")
	}

	s := &Store[K, V]{
		name:     opts.Name,
		ns:       opts.Namespace,
		provider: opts.Provider,
		codec:    opts.Codec,
		keyer:    opts.Keyer,
		log:      opts.Logger,
		hooks:    opts.Hooks,
		cost:     opts.ComputeCost,
	}
	if s.keyer == nil {
		s.keyer = defaultKeyer[K]
	}
	if s.log == nil {
		s.log = tiercache.NopLogger{}
	}
	if s.hooks == nil {
		s.hooks = tiercache.NopHooks{}
	}
	if s.cost == nil {
		s.cost = func(string, []byte) int64 { return 1 }
	}
	return s, nil
}

func defaultKeyer[K any](k K) string {
	if s, ok := any(k).(string); ok {
		return s
	}
	return fmt.Sprint(k)
}

func (s *Store[K, V]) Name() string { return s.name }

// Retrieve returns the decoded value, an error wrapping tiercache.ErrNotFound
// on a miss, a *CorruptError for an entry that had to be dropped, or the
// provider's error.
func (s *Store[K, V]) Retrieve(ctx context.Context, key K) (V, error) {
	var zero V
	k := s.storageKey(key)

	raw, ok, err := s.provider.Get(ctx, k)
	if err != nil {
		return zero, fmt.Errorf("%s: get %q: %w", s.name, k, err)
	}
	if !ok {
		return zero, fmt.Errorf("%s: %q: %w", s.name, k, tiercache.ErrNotFound)
	}

	payload, err := wire.Decode(raw)
	if err != nil {
		return zero, s.selfHeal(ctx, k, "corrupt", err)
	}
	v, err := s.codec.Decode(payload)
	if err != nil {
		return zero, s.selfHeal(ctx, k, "value_decode", err)
	}
	return v, nil
}

// Store encodes and writes value. A write the provider rejects under pressure
// (ok=false) is logged and reported to Hooks.ProviderSetRejected but is not an
// error: a cache tier may drop entries at any time.
func (s *Store[K, V]) Store(ctx context.Context, key K, value V) error {
	k := s.storageKey(key)
	payload, err := s.codec.Encode(value)
	if err != nil {
		return fmt.Errorf("%s: encode %q: %w", s.name, k, err)
	}
	raw := wire.Encode(payload)
	ok, err := s.provider.Set(ctx, k, raw, s.cost(k, raw))
	if err != nil {
		return fmt.Errorf("%s: set %q: %w", s.name, k, err)
	}
	if !ok {
		s.log.Debug("store rejected by provider (pressure)", tiercache.Fields{"cache": s.name, "key": k})
		s.hooks.ProviderSetRejected(s.name, k)
	}
	return nil
}

// Delete removes key from the provider.
func (s *Store[K, V]) Delete(ctx context.Context, key K) error {
	k := s.storageKey(key)
	if err := s.provider.Del(ctx, k); err != nil {
		return fmt.Errorf("%s: delete %q: %w", s.name, k, err)
	}
	return nil
}

// Close closes the provider.
func (s *Store[K, V]) Close(ctx context.Context) error {
	return s.provider.Close(ctx)
}

func (s *Store[K, V]) storageKey(key K) string {
	return util.StorageKey(s.ns, s.keyer(key))
}

func (s *Store[K, V]) selfHeal(ctx context.Context, storageKey, reason string, cause error) error {
	delErr := s.provider.Del(ctx, storageKey)
	s.log.Warn("dropped undecodable entry", tiercache.Fields{
		"cache": s.name, "key": storageKey, "reason": reason, "err": cause, "delErr": delErr,
	})
	s.hooks.SelfHeal(s.name, storageKey, reason)
	return &CorruptError{Cache: s.name, Key: storageKey, Reason: reason, Err: cause, DelErr: delErr}
}
