package bigcache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pr "github.com/unkn0wn-root/tiercache/provider"
	"github.com/unkn0wn-root/tiercache/provider/providertest"
)

func newProvider(t *testing.T) *Provider {
	t.Helper()
	p, err := New(context.Background(), Config{LifeWindow: time.Minute, Shards: 16})
	require.NoError(t, err)
	return p
}

func TestConformance(t *testing.T) {
	providertest.Run(t, func(t *testing.T) pr.Provider { return newProvider(t) })
}

func TestLenAndClose(t *testing.T) {
	ctx := context.Background()
	p := newProvider(t)

	for _, k := range []string{"a", "b", "c"} {
		ok, err := p.Set(ctx, k, []byte(k), 0)
		require.NoError(t, err)
		require.True(t, ok)
	}
	assert.Equal(t, 3, p.Len())

	require.NoError(t, p.Close(ctx))
	require.NoError(t, p.Close(ctx))
	_, _, err := p.Get(ctx, "a")
	assert.ErrorIs(t, err, pr.ErrClosed)
}
