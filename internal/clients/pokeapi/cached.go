package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
	redisclient "github.com/KirkDiggler/pokemon-api/internal/redis"
)

const cacheKeyPrefix = "pokeapi:pokemon:"

// CachedConfig configures the Redis-backed response cache
type CachedConfig struct {
	Client Client
	Cache  redisclient.Client
	// TTL of a cached record. Zero disables caching entirely.
	TTL time.Duration
}

// Validate validates the CachedConfig.
func (cfg *CachedConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.TTL < 0 {
		return errors.InvalidArgument("cache TTL cannot be negative")
	}
	if cfg.TTL > 0 && cfg.Cache == nil {
		return errors.InvalidArgument("cache cannot be nil when TTL is set")
	}
	return nil
}

type cachedClient struct {
	next  Client
	cache redisclient.Client
	ttl   time.Duration
}

// NewCached wraps a client with a Redis response cache. With a zero TTL the
// wrapped client is returned unchanged and every lookup goes to the network.
func NewCached(cfg *CachedConfig) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.TTL == 0 {
		return cfg.Client, nil
	}

	return &cachedClient{
		next:  cfg.Client,
		cache: cfg.Cache,
		ttl:   cfg.TTL,
	}, nil
}

// cachedCreature is the JSON document stored in Redis
type cachedCreature struct {
	ID    int          `json:"id"`
	Name  string       `json:"name"`
	Stats []cachedStat `json:"stats"`
}

type cachedStat struct {
	Name     string `json:"name"`
	BaseStat int    `json:"base_stat"`
}

// CacheKey returns the Redis key for a cached creature
// Exposed for testing purposes
func CacheKey(id int) string {
	return fmt.Sprintf("%s%d", cacheKeyPrefix, id)
}

func (c *cachedClient) GetPokemon(ctx context.Context, id int) (*entities.Creature, error) {
	key := CacheKey(id)

	raw, err := c.cache.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var doc cachedCreature
		if jsonErr := json.Unmarshal(raw, &doc); jsonErr == nil {
			return fromCached(&doc), nil
		}
		slog.WarnContext(ctx, "discarding unreadable cached pokemon", "pokemon_id", id)
	case err != redisclient.Nil:
		slog.WarnContext(ctx, "pokemon cache lookup failed",
			"pokemon_id", id,
			"error", err.Error())
	}

	creature, err := c.next.GetPokemon(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(toCached(creature))
	if err != nil {
		return creature, nil
	}
	if err := c.cache.Set(ctx, key, data, c.ttl).Err(); err != nil {
		slog.WarnContext(ctx, "failed to cache pokemon",
			"pokemon_id", id,
			"error", err.Error())
	}

	return creature, nil
}

func toCached(creature *entities.Creature) *cachedCreature {
	stats := make([]cachedStat, len(creature.Stats))
	for i, s := range creature.Stats {
		stats[i] = cachedStat{Name: s.Name, BaseStat: s.BaseStat}
	}
	return &cachedCreature{ID: creature.ID, Name: creature.Name, Stats: stats}
}

func fromCached(doc *cachedCreature) *entities.Creature {
	stats := make([]entities.Stat, len(doc.Stats))
	for i, s := range doc.Stats {
		stats[i] = entities.Stat{Name: s.Name, BaseStat: s.BaseStat}
	}
	return &entities.Creature{ID: doc.ID, Name: doc.Name, Stats: stats}
}
