//go:build integration

package redis

import (
	"context"
	"testing"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	pr "github.com/unkn0wn-root/tiercache/provider"
	"github.com/unkn0wn-root/tiercache/provider/providertest"
)

func setupRedis(t *testing.T) goredis.UniversalClient {
	t.Helper()
	ctx := context.Background()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start redis container")
	t.Cleanup(func() { _ = c.Terminate(ctx) })

	endpoint, err := c.Endpoint(ctx, "")
	require.NoError(t, err)

	rdb := goredis.NewClient(&goredis.Options{Addr: endpoint})
	t.Cleanup(func() { _ = rdb.Close() })
	require.NoError(t, rdb.Ping(ctx).Err())
	return rdb
}

func TestRedisConformance(t *testing.T) {
	rdb := setupRedis(t)
	providertest.Run(t, func(t *testing.T) pr.Provider {
		// a prefix per subtest keeps each run on an empty keyspace
		p, err := New(Config{Client: rdb, KeyPrefix: t.Name() + ":"})
		require.NoError(t, err)
		return p
	})
}

func TestRedisCloseOwnedClient(t *testing.T) {
	rdb := setupRedis(t)
	ctx := context.Background()

	p, err := New(Config{Client: rdb, CloseClient: true})
	require.NoError(t, err)
	require.NoError(t, p.Close(ctx))
	require.NoError(t, p.Close(ctx))

	_, _, err = p.Get(ctx, "k")
	require.ErrorIs(t, err, goredis.ErrClosed)
}
