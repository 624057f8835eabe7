package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokemon-api/internal/config"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.HTTPAddr)
	assert.Equal(t, 0, cfg.GRPCPort)
	assert.Equal(t, config.StorageSQLite, cfg.Storage)
	assert.Equal(t, "./sqlite.db", cfg.SQLitePath)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "https://pokeapi.co/api/v2", cfg.PokeAPIURL)
	assert.Equal(t, 10*time.Second, cfg.PokeAPITimeout)
	assert.Zero(t, cfg.PokeAPICacheTTL)
	assert.Empty(t, cfg.CORSOrigins)
	assert.False(t, cfg.UsesRedis())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("POKEMON_API_HTTP_ADDR", ":9000")
	t.Setenv("POKEMON_API_GRPC_PORT", "50051")
	t.Setenv("POKEMON_API_STORAGE", "redis")
	t.Setenv("POKEMON_API_REDIS_ADDR", "cache:6379")
	t.Setenv("POKEMON_API_POKEAPI_CACHE_TTL", "1h")
	t.Setenv("POKEMON_API_CORS_ORIGINS", "http://localhost:3000,https://example.com")
	t.Setenv("POKEMON_API_LOG_LEVEL", "debug")
	t.Setenv("POKEMON_API_LOG_FORMAT", "json")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, 50051, cfg.GRPCPort)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
	assert.Equal(t, time.Hour, cfg.PokeAPICacheTTL)
	assert.Equal(t, []string{"http://localhost:3000", "https://example.com"}, cfg.CORSOrigins)
	assert.True(t, cfg.UsesRedis())
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("POKEMON_API_GRPC_PORT", "not-a-port")

	_, err := config.Load()
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			HTTPAddr:       ":8000",
			RequestTimeout: time.Second,
			Storage:        config.StorageSQLite,
			SQLitePath:     "db.sqlite",
			PokeAPIURL:     "https://pokeapi.co/api/v2",
			PokeAPITimeout: time.Second,
			LogLevel:       "info",
			LogFormat:      "text",
		}
	}

	testCases := []struct {
		name   string
		mutate func(c *config.Config)
		field  string
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{name: "unknown storage", mutate: func(c *config.Config) { c.Storage = "postgres" }, field: "STORAGE"},
		{name: "port out of range", mutate: func(c *config.Config) { c.GRPCPort = 70000 }, field: "GRPC_PORT"},
		{name: "missing sqlite path", mutate: func(c *config.Config) { c.SQLitePath = "" }, field: "SQLITE_PATH"},
		{name: "redis without addr", mutate: func(c *config.Config) {
			c.Storage = config.StorageRedis
		}, field: "REDIS_ADDR"},
		{name: "cache without addr", mutate: func(c *config.Config) { c.PokeAPICacheTTL = time.Minute }, field: "REDIS_ADDR"},
		{name: "zero timeout", mutate: func(c *config.Config) { c.PokeAPITimeout = 0 }, field: "POKEAPI_TIMEOUT"},
		{name: "bad level", mutate: func(c *config.Config) { c.LogLevel = "loud" }, field: "LOG_LEVEL"},
		{name: "bad format", mutate: func(c *config.Config) { c.LogFormat = "xml" }, field: "LOG_FORMAT"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.field == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestParseLevel(t *testing.T) {
	level, err := config.ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = config.ParseLevel("verbose")
	assert.Error(t, err)
}
