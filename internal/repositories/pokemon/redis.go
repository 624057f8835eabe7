package pokemon

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
	pokemonKeyPrefix   = "pokemon:"
	sequenceKey        = "pokemon:seq"
	indexKey           = "pokemon:index"
	trainerIndexPrefix = "pokemon:trainer:"
)

func pokemonKey(id int64) string {
	return pokemonKeyPrefix + strconv.FormatInt(id, 10)
}

func trainerIndexKey(trainerID int64) string {
	return trainerIndexPrefix + strconv.FormatInt(trainerID, 10)
}

// RedisConfig contains configuration for the Redis pokemon repository.
type RedisConfig struct {
	Client redisclient.Client
	// IDs is optional and defaults to a Redis sequence at pokemon:seq
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

// NewRedis creates a new Redis-backed pokemon repository
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

// pokemonRecord is the JSON document stored per pokemon
type pokemonRecord struct {
	ID         int64  `json:"id"`
	APIID      int    `json:"api_id"`
	Name       string `json:"name"`
	CustomName string `json:"custom_name"`
	TrainerID  int64  `json:"trainer_id"`
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateNew(input.Pokemon); err != nil {
		return nil, err
	}

	created := *input.Pokemon

	exists, err := r.client.Exists(ctx, trainer.Key(created.TrainerID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check trainer %d", created.TrainerID)
	}
	if exists == 0 {
		return nil, errors.NotFoundf("trainer %d not found", created.TrainerID)
	}

	created.ID, err = r.ids.Next(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate pokemon id")
	}

	data, err := json.Marshal(pokemonRecord(created))
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal pokemon")
	}

	member := redis.Z{Score: float64(created.ID), Member: created.ID}
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, pokemonKey(created.ID), data, 0)
	pipe.ZAdd(ctx, indexKey, member)
	pipe.ZAdd(ctx, trainerIndexKey(created.TrainerID), member)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to create pokemon")
	}

	slog.DebugContext(ctx, "created pokemon",
		"pokemon_id", created.ID,
		"trainer_id", created.TrainerID,
		"api_id", created.APIID)
	return &CreateOutput{Pokemon: &created}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID <= 0 {
		return nil, errors.InvalidArgument(errPokemonIDInvalid)
	}

	data, err := r.client.Get(ctx, pokemonKey(input.ID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("pokemon %d not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get pokemon %d", input.ID)
	}

	var rec pokemonRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal pokemon %d", input.ID)
	}

	p := entities.Pokemon(rec)
	return &GetOutput{Pokemon: &p}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	window, err := paging.Normalize(input.Offset, input.Limit)
	if err != nil {
		return nil, err
	}

	pokemons, err := r.listByIndex(ctx, indexKey, int64(window.Offset), int64(window.End()-1))
	if err != nil {
		return nil, err
	}
	return &ListOutput{Pokemons: pokemons}, nil
}

func (r *redisRepository) ListByTrainer(ctx context.Context, input ListByTrainerInput) (*ListByTrainerOutput, error) {
	if input.TrainerID <= 0 {
		return nil, errors.InvalidArgument(errTrainerIDInvalid)
	}

	pokemons, err := r.listByIndex(ctx, trainerIndexKey(input.TrainerID), 0, -1)
	if err != nil {
		return nil, err
	}
	return &ListByTrainerOutput{Pokemons: pokemons}, nil
}

// listByIndex loads the records whose ids sit in [start, stop] of a sorted index
func (r *redisRepository) listByIndex(ctx context.Context, index string, start, stop int64) ([]*entities.Pokemon, error) {
	ids, err := r.client.ZRange(ctx, index, start, stop).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read pokemon index %s", index)
	}

	pokemons := make([]*entities.Pokemon, 0, len(ids))
	if len(ids) == 0 {
		return pokemons, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = pokemonKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load pokemons")
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			slog.WarnContext(ctx, "pokemon in index but missing record",
				"index_key", index,
				"pokemon_key", keys[i])
			continue
		}
		var rec pokemonRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal %s", keys[i])
		}
		p := entities.Pokemon(rec)
		pokemons = append(pokemons, &p)
	}

	return pokemons, nil
}
