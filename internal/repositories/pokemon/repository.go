// Package pokemon provides the interface for owned-pokemon persistence
package pokemon

//go:generate mockgen -destination=mock/mock_repository.go -package=pokemonmock github.com/KirkDiggler/pokemon-api/internal/repositories/pokemon Repository

import (
	"context"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
)

// Repository defines the interface for pokemon persistence
type Repository interface {
	// Create stores a pokemon for an existing trainer and assigns its ID
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the owning trainer doesn't exist
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a pokemon by ID
	// Returns errors.InvalidArgument for non-positive IDs
	// Returns errors.NotFound if pokemon doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns pokemons in ID order within an offset/limit window
	// Returns errors.InvalidArgument for negative offset or limit
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// ListByTrainer returns every pokemon owned by a trainer in ID order
	// Returns errors.InvalidArgument for non-positive trainer IDs
	// Returns errors.Internal for storage failures
	ListByTrainer(ctx context.Context, input ListByTrainerInput) (*ListByTrainerOutput, error)
}

// CreateInput defines the input for creating a pokemon
type CreateInput struct {
	Pokemon *entities.Pokemon
}

// CreateOutput defines the output for creating a pokemon
type CreateOutput struct {
	Pokemon *entities.Pokemon
}

// GetInput defines the input for getting a pokemon
type GetInput struct {
	ID int64
}

// GetOutput defines the output for getting a pokemon
type GetOutput struct {
	Pokemon *entities.Pokemon
}

// ListInput defines the input for listing pokemons
type ListInput struct {
	Offset int
	Limit  int
}

// ListOutput defines the output for listing pokemons
type ListOutput struct {
	Pokemons []*entities.Pokemon
}

// ListByTrainerInput defines the input for listing a trainer's pokemons
type ListByTrainerInput struct {
	TrainerID int64
}

// ListByTrainerOutput defines the output for listing a trainer's pokemons
type ListByTrainerOutput struct {
	Pokemons []*entities.Pokemon
}

const (
	errPokemonNil       = "pokemon cannot be nil"
	errPokemonIDInvalid = "pokemon ID must be positive"
	errTrainerIDInvalid = "trainer ID must be positive"
	maxCustomNameLength = 64
)

func validateNew(p *entities.Pokemon) error {
	if p == nil {
		return errors.InvalidArgument(errPokemonNil)
	}

	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("api_id", int64(p.APIID), vb)
	errors.ValidateRequired("name", p.Name, vb)
	errors.ValidateMaxLength("custom_name", p.CustomName, maxCustomNameLength, vb)
	errors.ValidatePositive("trainer_id", p.TrainerID, vb)
	return vb.Build()
}
