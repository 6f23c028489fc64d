// Package nats backs a tier with a NATS JetStream key-value bucket.
package nats

import (
	"context"
	"errors"
	"fmt"

	natsgo "github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/unkn0wn-root/tiercache/internal/util"
	pr "github.com/unkn0wn-root/tiercache/provider"
)

// KV stores entries in a JetStream KeyValue bucket. Keys are base64url encoded
// because KV keys only allow [-/_=.a-zA-Z0-9].
type KV struct {
	kv        jetstream.KeyValue
	closeConn func()
}

var _ pr.Provider = (*KV)(nil)

type Config struct {
	// Either KV (an existing bucket handle) or Conn + Bucket must be set.
	KV     jetstream.KeyValue
	Conn   *natsgo.Conn
	Bucket string

	Storage  jetstream.StorageType // bucket creation only; default FileStorage
	Replicas int                   // bucket creation only
	MaxBytes int64                 // bucket creation only; 0 => unlimited
	History  uint8                 // bucket creation only; 0 => 1

	CloseConn bool // close Conn on Close; set only if this provider owns it
}

// New opens (creating when missing) the configured bucket.
func New(ctx context.Context, cfg Config) (*KV, error) {
	if cfg.KV != nil {
		return &KV{kv: cfg.KV}, nil
	}
	if cfg.Conn == nil {
		return nil, errors.New("nats provider: KV or Conn is required")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("nats provider: bucket is required")
	}
	js, err := jetstream.New(cfg.Conn)
	if err != nil {
		return nil, fmt.Errorf("nats provider: jetstream: %w", err)
	}
	maxBytes := cfg.MaxBytes
	if maxBytes == 0 {
		maxBytes = -1
	}
	kv, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:   cfg.Bucket,
		Storage:  cfg.Storage,
		Replicas: cfg.Replicas,
		MaxBytes: maxBytes,
		History:  cfg.History,
	})
	if err != nil {
		return nil, fmt.Errorf("nats provider: bucket %q: %w", cfg.Bucket, err)
	}
	p := &KV{kv: kv}
	if cfg.CloseConn {
		p.closeConn = cfg.Conn.Close
	}
	return p, nil
}

func (p *KV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	e, err := p.kv.Get(ctx, util.SafeName(key))
	if errors.Is(err, jetstream.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return e.Value(), true, nil
}

func (p *KV) Set(ctx context.Context, key string, value []byte, _ int64) (bool, error) {
	if _, err := p.kv.Put(ctx, util.SafeName(key), value); err != nil {
		return false, err
	}
	return true, nil
}

// Del purges the key so its history does not keep the value alive.
func (p *KV) Del(ctx context.Context, key string) error {
	err := p.kv.Purge(ctx, util.SafeName(key))
	if errors.Is(err, jetstream.ErrKeyNotFound) {
		return nil
	}
	return err
}

func (p *KV) Close(context.Context) error {
	if p.closeConn != nil {
		p.closeConn()
		p.closeConn = nil
	}
	return nil
}
