package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/redis"
)

func TestNewClientRequiresAddress(t *testing.T) {
	client, err := redis.NewClient("  ", nil)
	require.Error(t, err)
	assert.Nil(t, client)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestNewClientRejectsBadURL(t *testing.T) {
	client, err := redis.NewClient("redis://host:6379/notadb", nil)
	require.Error(t, err)
	assert.Nil(t, client)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestNewClientHostPort(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redis.NewClient(mr.Addr(), &redis.Options{PoolSize: 2})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	require.NoError(t, client.Ping(ctx).Err())

	_, err = client.Get(ctx, "missing").Result()
	assert.ErrorIs(t, err, redis.Nil)
}

func TestNewClientURLSelectsDB(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := redis.NewClient("redis://"+mr.Addr()+"/3", nil)
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	require.NoError(t, client.Set(ctx, "trainer:seq", 7, 0).Err())

	mr.Select(3)
	assert.Equal(t, "7", mustGet(t, mr, "trainer:seq"))
	mr.Select(0)
	assert.False(t, mr.Exists("trainer:seq"))
}

func mustGet(t *testing.T, mr *miniredis.Miniredis, key string) string {
	t.Helper()
	v, err := mr.Get(key)
	require.NoError(t, err)
	return v
}
