package firestore

import (
	"context"
	"os"
	"strings"
	"testing"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pr "github.com/unkn0wn-root/tiercache/provider"
	"github.com/unkn0wn-root/tiercache/provider/providertest"
)

func TestNewValidates(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorContains(t, err, "nil client")
}

// TestEmulatorConformance needs a Firestore emulator on FIRESTORE_EMULATOR_HOST.
func TestEmulatorConformance(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	ctx := context.Background()
	client, err := firestore.NewClient(ctx, "test-project")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	providertest.Run(t, func(t *testing.T) pr.Provider {
		p, err := New(Config{Client: client, Collection: strings.ReplaceAll(t.Name(), "/", "_")})
		require.NoError(t, err)
		return p
	})
}
