// Package roster implements the trainer, pokemon and item use-cases
package roster

//go:generate mockgen -destination=mock/mock_service.go -package=rostermock github.com/KirkDiggler/pokemon-api/internal/orchestrators/roster Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/pkg/clock"
	"github.com/KirkDiggler/pokemon-api/internal/repositories/item"
	"github.com/KirkDiggler/pokemon-api/internal/repositories/pokemon"
	"github.com/KirkDiggler/pokemon-api/internal/repositories/trainer"
)

const (
	maxTrainerNameLength = 128
	maxItemNameLength    = 128
	maxCustomNameLength  = 64
)

// CreatureProvider resolves reference-API creatures.
// pokeapi.Client satisfies it.
type CreatureProvider interface {
	GetPokemon(ctx context.Context, id int) (*entities.Creature, error)
}

// Service defines the interface for roster operations
type Service interface {
	// CreateTrainer stores a new trainer
	// Returns errors.InvalidArgument for a blank name or a missing or future birthdate
	CreateTrainer(ctx context.Context, input *CreateTrainerInput) (*CreateTrainerOutput, error)

	// GetTrainer returns a trainer with inventory and pokemons
	// Returns errors.NotFound if the trainer doesn't exist
	GetTrainer(ctx context.Context, input *GetTrainerInput) (*GetTrainerOutput, error)

	// ListTrainers returns hydrated trainers in ID order
	ListTrainers(ctx context.Context, input *ListTrainersInput) (*ListTrainersOutput, error)

	// AddItem gives an item to a trainer
	// Returns errors.NotFound if the trainer doesn't exist
	AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error)

	// AddPokemon gives a pokemon to a trainer, naming it from the reference API
	// Returns errors.NotFound if the trainer or the reference creature doesn't exist
	// Returns errors.Unavailable if the reference API cannot be reached
	AddPokemon(ctx context.Context, input *AddPokemonInput) (*AddPokemonOutput, error)

	// ListItems returns items in ID order
	ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error)

	// ListPokemons returns pokemons in ID order
	ListPokemons(ctx context.Context, input *ListPokemonsInput) (*ListPokemonsOutput, error)

	// GetPokemon returns one pokemon
	// Returns errors.NotFound if the pokemon doesn't exist
	GetPokemon(ctx context.Context, input *GetPokemonInput) (*GetPokemonOutput, error)
}

// Config holds the dependencies for the roster orchestrator
type Config struct {
	TrainerRepo trainer.Repository
	PokemonRepo pokemon.Repository
	ItemRepo    item.Repository
	Creatures   CreatureProvider
	// Clock is optional and defaults to the system clock
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.TrainerRepo == nil {
		vb.RequiredField("TrainerRepo")
	}
	if c.PokemonRepo == nil {
		vb.RequiredField("PokemonRepo")
	}
	if c.ItemRepo == nil {
		vb.RequiredField("ItemRepo")
	}
	if c.Creatures == nil {
		vb.RequiredField("Creatures")
	}

	return vb.Build()
}

type orchestrator struct {
	trainers  trainer.Repository
	pokemons  pokemon.Repository
	items     item.Repository
	creatures CreatureProvider
	clock     clock.Clock
}

// NewOrchestrator creates a new roster orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		trainers:  cfg.TrainerRepo,
		pokemons:  cfg.PokemonRepo,
		items:     cfg.ItemRepo,
		creatures: cfg.Creatures,
		clock:     c,
	}, nil
}

func (o *orchestrator) CreateTrainer(ctx context.Context, input *CreateTrainerInput) (*CreateTrainerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateMaxLength("name", input.Name, maxTrainerNameLength, vb)
	switch {
	case input.Birthdate.IsZero():
		vb.RequiredField("birthdate")
	case input.Birthdate.After(o.clock.Now()):
		vb.Field("birthdate", "must not be in the future")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.trainers.Create(ctx, trainer.CreateInput{Trainer: &entities.Trainer{
		Name:      input.Name,
		Birthdate: input.Birthdate,
	}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create trainer")
	}

	slog.InfoContext(ctx, "trainer created",
		"trainer_id", out.Trainer.ID,
		"name", out.Trainer.Name)

	out.Trainer.Inventory = []*entities.Item{}
	out.Trainer.Pokemons = []*entities.Pokemon{}
	return &CreateTrainerOutput{Trainer: out.Trainer}, nil
}

func (o *orchestrator) GetTrainer(ctx context.Context, input *GetTrainerInput) (*GetTrainerOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	t, err := o.getTrainer(ctx, input.TrainerID)
	if err != nil {
		return nil, err
	}
	if err := o.hydrate(ctx, t); err != nil {
		return nil, err
	}

	return &GetTrainerOutput{Trainer: t}, nil
}

func (o *orchestrator) ListTrainers(ctx context.Context, input *ListTrainersInput) (*ListTrainersOutput, error) {
	if input == nil {
		input = &ListTrainersInput{}
	}

	out, err := o.trainers.List(ctx, trainer.ListInput{
		Offset: input.Offset,
		Limit:  input.Limit,
		Name:   input.Name,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list trainers")
	}

	for _, t := range out.Trainers {
		if err := o.hydrate(ctx, t); err != nil {
			return nil, err
		}
	}

	return &ListTrainersOutput{Trainers: out.Trainers}, nil
}

func (o *orchestrator) AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("trainer_id", input.TrainerID, vb)
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateMaxLength("name", input.Name, maxItemNameLength, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.getTrainer(ctx, input.TrainerID); err != nil {
		return nil, err
	}

	out, err := o.items.Create(ctx, item.CreateInput{Item: &entities.Item{
		Name:        input.Name,
		Description: input.Description,
		TrainerID:   input.TrainerID,
	}})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to add item to trainer %d", input.TrainerID)
	}

	slog.InfoContext(ctx, "item added",
		"trainer_id", input.TrainerID,
		"item_id", out.Item.ID)

	return &AddItemOutput{Item: out.Item}, nil
}

func (o *orchestrator) AddPokemon(ctx context.Context, input *AddPokemonInput) (*AddPokemonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("trainer_id", input.TrainerID, vb)
	errors.ValidatePositive("api_id", int64(input.APIID), vb)
	errors.ValidateMaxLength("custom_name", input.CustomName, maxCustomNameLength, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if _, err := o.getTrainer(ctx, input.TrainerID); err != nil {
		return nil, err
	}

	creature, err := o.creatures.GetPokemon(ctx, input.APIID)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.Wrapf(err, "pokemon with api id %d not found", input.APIID)
		}
		return nil, errors.Wrapf(err, "failed to look up pokemon with api id %d", input.APIID)
	}

	out, err := o.pokemons.Create(ctx, pokemon.CreateInput{Pokemon: &entities.Pokemon{
		APIID:      input.APIID,
		Name:       creature.Name,
		CustomName: input.CustomName,
		TrainerID:  input.TrainerID,
	}})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to add pokemon to trainer %d", input.TrainerID)
	}

	slog.InfoContext(ctx, "pokemon added",
		"trainer_id", input.TrainerID,
		"pokemon_id", out.Pokemon.ID,
		"api_id", input.APIID,
		"name", out.Pokemon.Name)

	return &AddPokemonOutput{Pokemon: out.Pokemon}, nil
}

func (o *orchestrator) ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error) {
	if input == nil {
		input = &ListItemsInput{}
	}

	out, err := o.items.List(ctx, item.ListInput{Offset: input.Offset, Limit: input.Limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}

	return &ListItemsOutput{Items: out.Items}, nil
}

func (o *orchestrator) ListPokemons(ctx context.Context, input *ListPokemonsInput) (*ListPokemonsOutput, error) {
	if input == nil {
		input = &ListPokemonsInput{}
	}

	out, err := o.pokemons.List(ctx, pokemon.ListInput{Offset: input.Offset, Limit: input.Limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pokemons")
	}

	return &ListPokemonsOutput{Pokemons: out.Pokemons}, nil
}

func (o *orchestrator) GetPokemon(ctx context.Context, input *GetPokemonInput) (*GetPokemonOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PokemonID <= 0 {
		return nil, errors.InvalidArgumentf("pokemon id must be positive, got %d", input.PokemonID)
	}

	out, err := o.pokemons.Get(ctx, pokemon.GetInput{ID: input.PokemonID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFound("Pokemon not found").WithMeta("pokemon_id", input.PokemonID)
		}
		return nil, errors.Wrapf(err, "failed to get pokemon %d", input.PokemonID)
	}

	return &GetPokemonOutput{Pokemon: out.Pokemon}, nil
}

// getTrainer loads a trainer and reports a missing one as "Trainer not found"
func (o *orchestrator) getTrainer(ctx context.Context, trainerID int64) (*entities.Trainer, error) {
	if trainerID <= 0 {
		return nil, errors.InvalidArgumentf("trainer id must be positive, got %d", trainerID)
	}

	out, err := o.trainers.Get(ctx, trainer.GetInput{ID: trainerID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFound("Trainer not found").WithMeta("trainer_id", trainerID)
		}
		return nil, errors.Wrapf(err, "failed to get trainer %d", trainerID)
	}

	return out.Trainer, nil
}

// hydrate fills a trainer's inventory and pokemons
func (o *orchestrator) hydrate(ctx context.Context, t *entities.Trainer) error {
	items, err := o.items.ListByTrainer(ctx, item.ListByTrainerInput{TrainerID: t.ID})
	if err != nil {
		return errors.Wrapf(err, "failed to load inventory for trainer %d", t.ID)
	}

	pokemons, err := o.pokemons.ListByTrainer(ctx, pokemon.ListByTrainerInput{TrainerID: t.ID})
	if err != nil {
		return errors.Wrapf(err, "failed to load pokemons for trainer %d", t.ID)
	}

	t.Inventory = items.Items
	t.Pokemons = pokemons.Pokemons
	return nil
}
