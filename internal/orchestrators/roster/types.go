package roster

import (
	"time"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
)

// CreateTrainerInput contains the data for a new trainer
type CreateTrainerInput struct {
	Name      string
	Birthdate time.Time
}

// CreateTrainerOutput contains the stored trainer
type CreateTrainerOutput struct {
	Trainer *entities.Trainer
}

// GetTrainerInput identifies a trainer
type GetTrainerInput struct {
	TrainerID int64
}

// GetTrainerOutput contains the trainer with inventory and pokemons
type GetTrainerOutput struct {
	Trainer *entities.Trainer
}

// ListTrainersInput selects a window of trainers, optionally by exact name
type ListTrainersInput struct {
	Offset int
	Limit  int
	Name   string
}

// ListTrainersOutput contains hydrated trainers
type ListTrainersOutput struct {
	Trainers []*entities.Trainer
}

// AddItemInput describes an item to give to a trainer
type AddItemInput struct {
	TrainerID   int64
	Name        string
	Description string
}

// AddItemOutput contains the stored item
type AddItemOutput struct {
	Item *entities.Item
}

// AddPokemonInput describes a pokemon to give to a trainer
type AddPokemonInput struct {
	TrainerID  int64
	APIID      int
	CustomName string
}

// AddPokemonOutput contains the stored pokemon
type AddPokemonOutput struct {
	Pokemon *entities.Pokemon
}

// ListItemsInput selects a window of items
type ListItemsInput struct {
	Offset int
	Limit  int
}

// ListItemsOutput contains items
type ListItemsOutput struct {
	Items []*entities.Item
}

// ListPokemonsInput selects a window of pokemons
type ListPokemonsInput struct {
	Offset int
	Limit  int
}

// ListPokemonsOutput contains pokemons
type ListPokemonsOutput struct {
	Pokemons []*entities.Pokemon
}

// GetPokemonInput identifies a pokemon
type GetPokemonInput struct {
	PokemonID int64
}

// GetPokemonOutput contains the pokemon
type GetPokemonOutput struct {
	Pokemon *entities.Pokemon
}
