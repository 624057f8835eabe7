package item

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/pkg/idgen"
	"github.com/KirkDiggler/pokemon-api/internal/pkg/paging"
	redisclient "github.com/KirkDiggler/pokemon-api/internal/redis"
	"github.com/KirkDiggler/pokemon-api/internal/repositories/trainer"
)

const (
	itemKeyPrefix      = "item:"
	sequenceKey        = "item:seq"
	indexKey           = "item:index"
	trainerIndexPrefix = "item:trainer:"
)

func itemKey(id int64) string {
	return itemKeyPrefix + strconv.FormatInt(id, 10)
}

func trainerIndexKey(trainerID int64) string {
	return trainerIndexPrefix + strconv.FormatInt(trainerID, 10)
}

// RedisConfig contains configuration for the Redis item repository.
type RedisConfig struct {
	Client redisclient.Client
	// IDs is optional and defaults to a Redis sequence at item:seq
	IDs idgen.Generator
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	ids    idgen.Generator
}

// NewRedis creates a new Redis-backed item repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ids := cfg.IDs
	if ids == nil {
		ids = idgen.NewRedisSequence(cfg.Client, sequenceKey)
	}
	return &redisRepository{client: cfg.Client, ids: ids}, nil
}

// itemRecord is the JSON document stored per item
type itemRecord struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TrainerID   int64  `json:"trainer_id"`
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateNew(input.Item); err != nil {
		return nil, err
	}

	created := *input.Item

	exists, err := r.client.Exists(ctx, trainer.Key(created.TrainerID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check trainer %d", created.TrainerID)
	}
	if exists == 0 {
		return nil, errors.NotFoundf("trainer %d not found", created.TrainerID)
	}

	created.ID, err = r.ids.Next(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate item id")
	}

	data, err := json.Marshal(itemRecord(created))
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal item")
	}

	member := redis.Z{Score: float64(created.ID), Member: created.ID}
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, itemKey(created.ID), data, 0)
	pipe.ZAdd(ctx, indexKey, member)
	pipe.ZAdd(ctx, trainerIndexKey(created.TrainerID), member)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to create item")
	}

	slog.DebugContext(ctx, "created item",
		"item_id", created.ID,
		"trainer_id", created.TrainerID)
	return &CreateOutput{Item: &created}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	window, err := paging.Normalize(input.Offset, input.Limit)
	if err != nil {
		return nil, err
	}

	items, err := r.listByIndex(ctx, indexKey, int64(window.Offset), int64(window.End()-1))
	if err != nil {
		return nil, err
	}
	return &ListOutput{Items: items}, nil
}

func (r *redisRepository) ListByTrainer(ctx context.Context, input ListByTrainerInput) (*ListByTrainerOutput, error) {
	if input.TrainerID <= 0 {
		return nil, errors.InvalidArgument(errTrainerIDInvalid)
	}

	items, err := r.listByIndex(ctx, trainerIndexKey(input.TrainerID), 0, -1)
	if err != nil {
		return nil, err
	}
	return &ListByTrainerOutput{Items: items}, nil
}

// listByIndex loads the records whose ids sit in [start, stop] of a sorted index
func (r *redisRepository) listByIndex(ctx context.Context, index string, start, stop int64) ([]*entities.Item, error) {
	ids, err := r.client.ZRange(ctx, index, start, stop).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read item index %s", index)
	}

	items := make([]*entities.Item, 0, len(ids))
	if len(ids) == 0 {
		return items, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = itemKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load items")
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			slog.WarnContext(ctx, "item in index but missing record",
				"index_key", index,
				"item_key", keys[i])
			continue
		}
		var rec itemRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal %s", keys[i])
		}
		i := entities.Item(rec)
		items = append(items, &i)
	}

	return items, nil
}
