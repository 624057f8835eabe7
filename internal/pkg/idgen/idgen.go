// Package idgen allocates integer record IDs
package idgen

import (
	"context"

	"github.com/KirkDiggler/pokemon-api/internal/errors"
	redisclient "github.com/KirkDiggler/pokemon-api/internal/redis"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/KirkDiggler/pokemon-api/internal/pkg/idgen Generator

// Generator allocates unique, increasing IDs
type Generator interface {
	Next(ctx context.Context) (int64, error)
}

// RedisSequence allocates IDs with INCR on a single key.
// The first ID is 1.
type RedisSequence struct {
	client redisclient.Client
	key    string
}

// NewRedisSequence creates a sequence stored at key
func NewRedisSequence(client redisclient.Client, key string) *RedisSequence {
	return &RedisSequence{client: client, key: key}
}

// Next returns the next ID in the sequence
func (g *RedisSequence) Next(ctx context.Context) (int64, error) {
	id, err := g.client.Incr(ctx, g.key).Result()
	if err != nil {
		return 0, errors.Wrapf(err, "failed to increment %s", g.key)
	}
	return id, nil
}
