package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	grpclogging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokemon-api/internal/logging"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(&buf, "info", "json")
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("trainer created", "trainer_id", 7)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "trainer created", record["msg"])
	assert.EqualValues(t, 7, record["trainer_id"])
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(&buf, "debug", "text")
	require.NoError(t, err)

	logger.Debug("probe")
	assert.Contains(t, buf.String(), "msg=probe")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := logging.New(&bytes.Buffer{}, "chatty", "text")
	assert.Error(t, err)
}

func TestInterceptorLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(&buf, "debug", "text")
	require.NoError(t, err)

	logging.InterceptorLogger(logger).Log(context.Background(), grpclogging.LevelWarn, "finished call", "grpc.code", "OK")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "grpc.code=OK")
}
