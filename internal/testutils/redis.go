// Package testutils provides utilities for testing, including Redis and SQLite helpers
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokemon-api/internal/redis"
)

// CreateTestRedisClient creates an in-memory Redis client for testing
func CreateTestRedisClient(t *testing.T) (redis.Client, func()) {
	client, _, cleanup := CreateTestRedisClientWithServer(t, nil)
	return client, cleanup
}

// CreateTestRedisClientWithServer creates an in-memory Redis client and hands
// back the server so tests can inspect keys or fast-forward TTLs. setupFunc,
// when set, can populate Redis before the client connects.
func CreateTestRedisClientWithServer(
	t *testing.T,
	setupFunc func(mr *miniredis.Miniredis),
) (redis.Client, *miniredis.Miniredis, func()) {
	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to create miniredis")

	if setupFunc != nil {
		setupFunc(mr)
	}

	client, err := redis.NewClient(mr.Addr(), nil)
	require.NoError(t, err, "failed to create redis client")

	cleanup := func() {
		_ = client.Close()
		mr.Close()
	}

	return client, mr, cleanup
}
