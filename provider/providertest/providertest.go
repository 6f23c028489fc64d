// Package providertest holds a behavioral suite every provider.Provider must
// pass. Provider packages call Run from their own tests.
package providertest

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pr "github.com/unkn0wn-root/tiercache/provider"
)

// Run exercises p with the Get/Set/Del contract. newProvider must return a
// fresh, empty provider; Run closes it.
func Run(t *testing.T, newProvider func(t *testing.T) pr.Provider) {
	t.Helper()

	t.Run("MissIsNotAnError", func(t *testing.T) {
		p := open(t, newProvider)
		b, ok, err := p.Get(context.Background(), "absent")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, b)
	})

	t.Run("RoundTripIsByteExact", func(t *testing.T) {
		ctx := context.Background()
		p := open(t, newProvider)
		val := []byte{'T', 'I', 'E', 'R', 0, 1, 0xff, '\n', 0}

		ok, err := p.Set(ctx, "k", val, int64(len(val)))
		require.NoError(t, err)
		require.True(t, ok)

		got, ok, err := p.Get(ctx, "k")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, val, got)
	})

	t.Run("Overwrite", func(t *testing.T) {
		ctx := context.Background()
		p := open(t, newProvider)
		mustSet(t, p, "k", []byte("one"))
		mustSet(t, p, "k", []byte("two"))

		got, ok, err := p.Get(ctx, "k")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, []byte("two"), got)
	})

	t.Run("DeleteIsIdempotent", func(t *testing.T) {
		ctx := context.Background()
		p := open(t, newProvider)
		mustSet(t, p, "k", []byte("v"))

		require.NoError(t, p.Del(ctx, "k"))
		_, ok, err := p.Get(ctx, "k")
		require.NoError(t, err)
		assert.False(t, ok)

		require.NoError(t, p.Del(ctx, "k"))
		require.NoError(t, p.Del(ctx, "never-set"))
	})

	t.Run("AwkwardKeysStayDistinct", func(t *testing.T) {
		ctx := context.Background()
		p := open(t, newProvider)
		keys := []string{"user:1", "user/1", "user 1", "usér:1", "a.b*c>d", "../escape"}
		for i, k := range keys {
			mustSet(t, p, k, []byte(fmt.Sprint(i)))
		}
		for i, k := range keys {
			got, ok, err := p.Get(ctx, k)
			require.NoError(t, err, k)
			require.True(t, ok, k)
			assert.Equal(t, fmt.Sprint(i), string(got), k)
		}
	})
}

func open(t *testing.T, newProvider func(t *testing.T) pr.Provider) pr.Provider {
	t.Helper()
	p := newProvider(t)
	t.Cleanup(func() { _ = p.Close(context.Background()) })
	return p
}

func mustSet(t *testing.T, p pr.Provider, key string, val []byte) {
	t.Helper()
	ok, err := p.Set(context.Background(), key, val, int64(len(val)))
	require.NoError(t, err)
	require.True(t, ok, "write rejected for %q", key)
}
