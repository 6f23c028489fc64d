package billy

import (
	"context"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	keys "github.com/unkn0wn-root/tiercache/internal/util"
	pr "github.com/unkn0wn-root/tiercache/provider"
	"github.com/unkn0wn-root/tiercache/provider/providertest"
)

func TestConformanceMemfs(t *testing.T) {
	providertest.Run(t, func(t *testing.T) pr.Provider {
		p, err := New(Config{Filesystem: memfs.New()})
		require.NoError(t, err)
		return p
	})
}

func TestConformanceOSFS(t *testing.T) {
	providertest.Run(t, func(t *testing.T) pr.Provider {
		p, err := New(Config{Dir: t.TempDir()})
		require.NoError(t, err)
		return p
	})
}

func TestRequiresFilesystemOrDir(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}

func TestLayoutAndNoTempLeftovers(t *testing.T) {
	ctx := context.Background()
	fs := memfs.New()
	p, err := New(Config{Filesystem: fs})
	require.NoError(t, err)

	_, err = p.Set(ctx, "user:1", []byte("v"), 0)
	require.NoError(t, err)

	name := keys.HashedPath("user:1")
	_, err = p.Unwrap().Stat(name)
	require.NoError(t, err, "entry not at hashed path %s", name)

	entries, err := fs.ReadDir(name[:2])
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file left behind")
}
