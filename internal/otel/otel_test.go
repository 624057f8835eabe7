package otel_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokemon-api/internal/otel"
)

func TestSetupNoopWithoutEndpoint(t *testing.T) {
	shutdown, err := otel.Setup(context.Background(), "", "pokemon-api")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, shutdown(ctx))
}

func TestSetupWithEndpoint(t *testing.T) {
	// Non-routable, nothing is exported before shutdown.
	shutdown, err := otel.Setup(context.Background(), "http://192.0.2.1:4318", "pokemon-api")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}
