// Package firestore backs a tier with a Firestore collection. Suited to low
// volume shared tiers; put a memory tier in front of it.
package firestore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/unkn0wn-root/tiercache/internal/util"
	pr "github.com/unkn0wn-root/tiercache/provider"
)

const payloadField = "payload"

// Collection stores each entry as a document {payload: bytes}. Document IDs are
// "k" + base64url(key): IDs may not contain "/" nor look like "__x__".
type Collection struct {
	client      *firestore.Client
	coll        *firestore.CollectionRef
	closeClient bool
}

var _ pr.Provider = (*Collection)(nil)

type Config struct {
	Client      *firestore.Client // required
	Collection  string            // required
	CloseClient bool              // set true only if this provider exclusively owns the client
}

func New(cfg Config) (*Collection, error) {
	if cfg.Client == nil {
		return nil, errors.New("firestore provider: nil client")
	}
	if cfg.Collection == "" {
		return nil, errors.New("firestore provider: collection is required")
	}
	return &Collection{
		client:      cfg.Client,
		coll:        cfg.Client.Collection(cfg.Collection),
		closeClient: cfg.CloseClient,
	}, nil
}

func (p *Collection) doc(key string) *firestore.DocumentRef {
	return p.coll.Doc("k" + util.SafeName(key))
}

func (p *Collection) Get(ctx context.Context, key string) ([]byte, bool, error) {
	snap, err := p.doc(key).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	raw, err := snap.DataAt(payloadField)
	if err != nil {
		return nil, false, fmt.Errorf("firestore provider: %s: %w", snap.Ref.ID, err)
	}
	b, ok := raw.([]byte)
	if !ok {
		return nil, false, fmt.Errorf("firestore provider: %s: payload is %T, not bytes", snap.Ref.ID, raw)
	}
	return b, true, nil
}

func (p *Collection) Set(ctx context.Context, key string, value []byte, _ int64) (bool, error) {
	if _, err := p.doc(key).Set(ctx, map[string]any{payloadField: value}); err != nil {
		return false, err
	}
	return true, nil
}

// Del deletes the document; deleting a missing document succeeds.
func (p *Collection) Del(ctx context.Context, key string) error {
	_, err := p.doc(key).Delete(ctx)
	return err
}

func (p *Collection) Close(context.Context) error {
	if p.closeClient {
		return p.client.Close()
	}
	return nil
}
