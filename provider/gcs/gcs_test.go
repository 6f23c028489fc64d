package gcs

import (
	"context"
	"os"
	"testing"

	"cloud.google.com/go/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pr "github.com/unkn0wn-root/tiercache/provider"
	"github.com/unkn0wn-root/tiercache/provider/providertest"
)

func TestNewValidates(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorContains(t, err, "nil client")
}

// TestEmulatorConformance runs against fake-gcs-server or any endpoint named
// by STORAGE_EMULATOR_HOST, which the storage client picks up on its own.
func TestEmulatorConformance(t *testing.T) {
	if os.Getenv("STORAGE_EMULATOR_HOST") == "" {
		t.Skip("STORAGE_EMULATOR_HOST not set")
	}
	ctx := context.Background()
	client, err := storage.NewClient(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	const bucket = "tiercache-test"
	_ = client.Bucket(bucket).Create(ctx, "test-project", nil)

	providertest.Run(t, func(t *testing.T) pr.Provider {
		p, err := New(Config{Client: client, Bucket: bucket, Prefix: t.Name()})
		require.NoError(t, err)
		return p
	})
}
