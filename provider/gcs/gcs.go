// Package gcs backs a tier with a Google Cloud Storage bucket.
package gcs

import (
	"context"
	"errors"
	"io"

	"cloud.google.com/go/storage"

	"github.com/unkn0wn-root/tiercache/internal/util"
	pr "github.com/unkn0wn-root/tiercache/provider"
)

// Bucket stores one object per key at <prefix>/<ab>/<sha256(key)>.
type Bucket struct {
	client      *storage.Client
	bucket      *storage.BucketHandle
	prefix      string
	closeClient bool
}

var _ pr.Provider = (*Bucket)(nil)

type Config struct {
	Client      *storage.Client // required
	Bucket      string          // required
	Prefix      string
	CloseClient bool // set true only if this provider exclusively owns the client
}

func New(cfg Config) (*Bucket, error) {
	if cfg.Client == nil {
		return nil, errors.New("gcs provider: nil client")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("gcs provider: bucket is required")
	}
	return &Bucket{
		client:      cfg.Client,
		bucket:      cfg.Client.Bucket(cfg.Bucket),
		prefix:      cfg.Prefix,
		closeClient: cfg.CloseClient,
	}, nil
}

func (p *Bucket) object(key string) *storage.ObjectHandle {
	name := util.HashedPath(key)
	if p.prefix != "" {
		name = p.prefix + "/" + name
	}
	return p.bucket.Object(name)
}

func (p *Bucket) Get(ctx context.Context, key string) ([]byte, bool, error) {
	r, err := p.object(key).NewReader(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	defer r.Close()

	b, err := io.ReadAll(r)
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (p *Bucket) Set(ctx context.Context, key string, value []byte, _ int64) (bool, error) {
	w := p.object(key).NewWriter(ctx)
	w.ContentType = "application/octet-stream"
	if _, err := w.Write(value); err != nil {
		_ = w.Close()
		return false, err
	}
	// the object is only committed by Close
	if err := w.Close(); err != nil {
		return false, err
	}
	return true, nil
}

func (p *Bucket) Del(ctx context.Context, key string) error {
	err := p.object(key).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil
	}
	return err
}

func (p *Bucket) Close(context.Context) error {
	if p.closeClient {
		return p.client.Close()
	}
	return nil
}
