package trainer

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/pkg/idgen"
	"github.com/KirkDiggler/pokemon-api/internal/pkg/paging"
	redisclient "github.com/KirkDiggler/pokemon-api/internal/redis"
)

const (
	// KeyPrefix namespaces trainer records, e.g. trainer:42
	KeyPrefix = "trainer:"

	sequenceKey     = "trainer:seq"
	indexKey        = "trainer:index"
	nameIndexPrefix = "trainer:name:"
)

// Key returns the Redis key holding the trainer record
func Key(id int64) string {
	return KeyPrefix + strconv.FormatInt(id, 10)
}

// RedisConfig contains configuration for the Redis trainer repository.
type RedisConfig struct {
	Client redisclient.Client
	// IDs is optional and defaults to a Redis sequence at trainer:seq
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

// NewRedis creates a new Redis-backed trainer repository
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

// trainerRecord is the JSON document stored per trainer
type trainerRecord struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Birthdate string `json:"birthdate"`
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateNew(input.Trainer); err != nil {
		return nil, err
	}

	id, err := r.ids.Next(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate trainer id")
	}

	created := *input.Trainer
	created.ID = id

	data, err := json.Marshal(trainerRecord{
		ID:        id,
		Name:      created.Name,
		Birthdate: created.Birthdate.Format(entities.BirthdateLayout),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal trainer")
	}

	member := redis.Z{Score: float64(id), Member: id}
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, Key(id), data, 0)
	pipe.ZAdd(ctx, indexKey, member)
	pipe.ZAdd(ctx, nameIndexPrefix+created.Name, member)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to create trainer")
	}

	slog.DebugContext(ctx, "created trainer", "trainer_id", id)
	return &CreateOutput{Trainer: &created}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID <= 0 {
		return nil, errors.InvalidArgument(errTrainerIDInvalid)
	}

	data, err := r.client.Get(ctx, Key(input.ID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("trainer %d not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get trainer %d", input.ID)
	}

	t, err := decodeTrainer(data)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Trainer: t}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	window, err := paging.Normalize(input.Offset, input.Limit)
	if err != nil {
		return nil, err
	}

	index := indexKey
	if input.Name != "" {
		index = nameIndexPrefix + input.Name
	}

	ids, err := r.client.ZRange(ctx, index, int64(window.Offset), int64(window.End()-1)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read trainer index %s", index)
	}

	trainers := make([]*entities.Trainer, 0, len(ids))
	if len(ids) == 0 {
		return &ListOutput{Trainers: trainers}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = KeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load trainers")
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			slog.WarnContext(ctx, "trainer in index but missing record",
				"index_key", index,
				"trainer_key", keys[i])
			continue
		}
		t, err := decodeTrainer([]byte(raw))
		if err != nil {
			return nil, err
		}
		trainers = append(trainers, t)
	}

	return &ListOutput{Trainers: trainers}, nil
}

func decodeTrainer(data []byte) (*entities.Trainer, error) {
	var rec trainerRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal trainer")
	}

	birthdate, err := time.Parse(entities.BirthdateLayout, rec.Birthdate)
	if err != nil {
		return nil, errors.Wrapf(err, "trainer %d has malformed birthdate %q", rec.ID, rec.Birthdate)
	}

	return &entities.Trainer{
		ID:        rec.ID,
		Name:      rec.Name,
		Birthdate: birthdate,
	}, nil
}
