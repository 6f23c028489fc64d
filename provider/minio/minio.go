// Package minio backs a tier with an S3-compatible bucket through minio-go.
package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	mc "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/unkn0wn-root/tiercache/internal/util"
	pr "github.com/unkn0wn-root/tiercache/provider"
)

// Bucket stores one object per key at <prefix>/<ab>/<sha256(key)>.
type Bucket struct {
	client *mc.Client
	bucket string
	prefix string
}

var _ pr.Provider = (*Bucket)(nil)

type Config struct {
	// Client is used when set; otherwise one is built from Endpoint and keys.
	Client    *mc.Client
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool

	Bucket string // required
	Prefix string // optional object key prefix
}

func New(cfg Config) (*Bucket, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("minio provider: bucket is required")
	}
	client := cfg.Client
	if client == nil {
		if cfg.Endpoint == "" {
			return nil, errors.New("minio provider: Client or Endpoint is required")
		}
		var err error
		client, err = mc.New(cfg.Endpoint, &mc.Options{
			Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
			Secure: cfg.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("minio provider: client: %w", err)
		}
	}
	return &Bucket{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
}

func (p *Bucket) object(key string) string {
	if p.prefix == "" {
		return util.HashedPath(key)
	}
	return p.prefix + "/" + util.HashedPath(key)
}

func isNotFound(err error) bool {
	return mc.ToErrorResponse(err).Code == "NoSuchKey"
}

func (p *Bucket) Get(ctx context.Context, key string) ([]byte, bool, error) {
	obj, err := p.client.GetObject(ctx, p.bucket, p.object(key), mc.GetObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer obj.Close()

	// GetObject is lazy; a missing object surfaces on first read
	b, err := io.ReadAll(obj)
	if err != nil {
		if isNotFound(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

func (p *Bucket) Set(ctx context.Context, key string, value []byte, _ int64) (bool, error) {
	_, err := p.client.PutObject(ctx, p.bucket, p.object(key),
		bytes.NewReader(value), int64(len(value)),
		mc.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		return false, err
	}
	return true, nil
}

// Del removes the object. S3 deletes are idempotent.
func (p *Bucket) Del(ctx context.Context, key string) error {
	return p.client.RemoveObject(ctx, p.bucket, p.object(key), mc.RemoveObjectOptions{})
}

func (p *Bucket) Close(context.Context) error { return nil }
