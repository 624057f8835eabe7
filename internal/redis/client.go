// Package redis wraps the go-redis client so stores and caches share one
// connection type that tests can back with miniredis.
package redis

import (
	"crypto/tls"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pokemon-api/internal/errors"
)

// Options tunes the connection pool. Zero values keep the go-redis defaults.
type Options struct {
	Password    string
	DB          int
	PoolSize    int
	DialTimeout time.Duration
	ReadTimeout time.Duration
	TLS         bool
}

// NewClient returns a lazily connecting client for addr, which is either a
// host:port pair or a redis:// (rediss://) URL. Options override values
// parsed from a URL when set.
func NewClient(addr string, opts *Options) (Client, error) {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, errors.InvalidArgument("redis address is required")
	}
	if opts == nil {
		opts = &Options{}
	}

	var redisOpts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil, errors.Wrapf(errors.InvalidArgument(err.Error()), "invalid redis url %q", addr)
		}
		redisOpts = parsed
	} else {
		redisOpts = &redis.Options{Addr: addr}
	}

	if opts.Password != "" {
		redisOpts.Password = opts.Password
	}
	if opts.DB != 0 {
		redisOpts.DB = opts.DB
	}
	if opts.PoolSize > 0 {
		redisOpts.PoolSize = opts.PoolSize
	}
	if opts.DialTimeout > 0 {
		redisOpts.DialTimeout = opts.DialTimeout
	}
	if opts.ReadTimeout > 0 {
		redisOpts.ReadTimeout = opts.ReadTimeout
	}
	if opts.TLS && redisOpts.TLSConfig == nil {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	return redis.NewClient(redisOpts), nil
}
