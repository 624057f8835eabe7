package idgen_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/pkg/idgen"
	"github.com/KirkDiggler/pokemon-api/internal/testutils"
)

func TestRedisSequence(t *testing.T) {
	client, mr, cleanup := testutils.CreateTestRedisClientWithServer(t, nil)
	defer cleanup()

	ctx := context.Background()
	seq := idgen.NewRedisSequence(client, "trainer:seq")

	for want := int64(1); want <= 3; want++ {
		id, err := seq.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, id)
	}

	// Sequences on different keys are independent.
	other, err := idgen.NewRedisSequence(client, "item:seq").Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), other)

	stored, err := mr.Get("trainer:seq")
	require.NoError(t, err)
	assert.Equal(t, "3", stored)
}

func TestRedisSequenceUnavailable(t *testing.T) {
	client, mr, cleanup := testutils.CreateTestRedisClientWithServer(t, nil)
	defer cleanup()
	mr.Close()

	_, err := idgen.NewRedisSequence(client, "trainer:seq").Next(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsInternal(err))
}
