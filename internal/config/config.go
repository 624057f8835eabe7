// Package config loads process configuration from POKEMON_API_* environment
// variables.
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/pokemon-api/internal/errors"
)

// EnvPrefix is prepended to every variable name
const EnvPrefix = "POKEMON_API_"

// Storage backends
const (
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config is the server's runtime configuration
type Config struct {
	HTTPAddr       string        `env:"HTTP_ADDR" envDefault:":8000"`
	GRPCPort       int           `env:"GRPC_PORT" envDefault:"0"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	CORSOrigins    []string      `env:"CORS_ORIGINS" envSeparator:","`

	Storage    string `env:"STORAGE" envDefault:"sqlite"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"./sqlite.db"`
	RedisAddr  string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	PokeAPIURL      string        `env:"POKEAPI_URL" envDefault:"https://pokeapi.co/api/v2"`
	PokeAPITimeout  time.Duration `env:"POKEAPI_TIMEOUT" envDefault:"10s"`
	PokeAPICacheTTL time.Duration `env:"POKEAPI_CACHE_TTL" envDefault:"0s"`

	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"text"`
	OTelEndpoint string `env:"OTEL_ENDPOINT"`
}

// Load parses the environment and validates the result
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values. It is run again after flags override the
// environment.
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("HTTP_ADDR", c.HTTPAddr, vb)
	errors.ValidateRange("GRPC_PORT", c.GRPCPort, 0, 65535, vb)
	if c.RequestTimeout <= 0 {
		vb.Field("REQUEST_TIMEOUT", "must be positive")
	}

	switch c.Storage {
	case StorageSQLite:
		errors.ValidateRequired("SQLITE_PATH", c.SQLitePath, vb)
	case StorageRedis:
		errors.ValidateRequired("REDIS_ADDR", c.RedisAddr, vb)
	default:
		vb.Fieldf("STORAGE", "must be %q or %q, got %q", StorageSQLite, StorageRedis, c.Storage)
	}

	errors.ValidateRequired("POKEAPI_URL", c.PokeAPIURL, vb)
	if c.PokeAPITimeout <= 0 {
		vb.Field("POKEAPI_TIMEOUT", "must be positive")
	}
	if c.PokeAPICacheTTL < 0 {
		vb.Field("POKEAPI_CACHE_TTL", "must not be negative")
	}
	if c.PokeAPICacheTTL > 0 {
		errors.ValidateRequired("REDIS_ADDR", c.RedisAddr, vb)
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		vb.Field("LOG_LEVEL", err.Error())
	}
	switch strings.ToLower(c.LogFormat) {
	case LogFormatText, LogFormatJSON:
	default:
		vb.Fieldf("LOG_FORMAT", "must be %q or %q, got %q", LogFormatText, LogFormatJSON, c.LogFormat)
	}

	return vb.Build()
}

// UsesRedis reports whether a redis connection is needed
func (c *Config) UsesRedis() bool {
	return c.Storage == StorageRedis || c.PokeAPICacheTTL > 0
}

// ParseLevel maps debug, info, warn or error onto a slog level
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, errors.InvalidArgumentf("unknown log level %q", s)
	}
	return level, nil
}
