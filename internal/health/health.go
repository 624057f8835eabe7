// Package health reports whether the configured store is reachable, both to
// the HTTP /health endpoint and to the grpc.health.v1 service.
package health

import (
	"context"
	"database/sql"

	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/redis"
)

// Checker reports a dependency's availability
type Checker interface {
	Check(ctx context.Context) error
}

// CheckFunc adapts a function to Checker
type CheckFunc func(ctx context.Context) error

// Check calls f
func (f CheckFunc) Check(ctx context.Context) error {
	return f(ctx)
}

// SQLite pings the database handle
func SQLite(db *sql.DB) Checker {
	return CheckFunc(func(ctx context.Context) error {
		if err := db.PingContext(ctx); err != nil {
			return errors.WrapWithCode(err, errors.CodeUnavailable, "sqlite ping failed")
		}
		return nil
	})
}

// Redis pings the redis server
func Redis(client redis.Client) Checker {
	return CheckFunc(func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.WrapWithCode(err, errors.CodeUnavailable, "redis ping failed")
		}
		return nil
	})
}
