// Package trainer provides the interface for trainer persistence
package trainer

//go:generate mockgen -destination=mock/mock_repository.go -package=trainermock github.com/KirkDiggler/pokemon-api/internal/repositories/trainer Repository

import (
	"context"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
)

// Repository defines the interface for trainer persistence.
// Returned trainers carry no inventory or pokemons; callers hydrate those.
type Repository interface {
	// Create stores a new trainer and assigns its ID
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a trainer by ID
	// Returns errors.InvalidArgument for non-positive IDs
	// Returns errors.NotFound if trainer doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns trainers in ID order within an offset/limit window,
	// optionally restricted to an exact name
	// Returns errors.InvalidArgument for negative offset or limit
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a trainer
type CreateInput struct {
	Trainer *entities.Trainer
}

// CreateOutput defines the output for creating a trainer
type CreateOutput struct {
	Trainer *entities.Trainer
}

// GetInput defines the input for getting a trainer
type GetInput struct {
	ID int64
}

// GetOutput defines the output for getting a trainer
type GetOutput struct {
	Trainer *entities.Trainer
}

// ListInput defines the input for listing trainers
type ListInput struct {
	Offset int
	Limit  int
	// Name filters on an exact match when set
	Name string
}

// ListOutput defines the output for listing trainers
type ListOutput struct {
	Trainers []*entities.Trainer
}

const (
	errTrainerNil       = "trainer cannot be nil"
	errTrainerIDInvalid = "trainer ID must be positive"
)

func validateNew(t *entities.Trainer) error {
	if t == nil {
		return errors.InvalidArgument(errTrainerNil)
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", t.Name, vb)
	if t.Birthdate.IsZero() {
		vb.RequiredField("birthdate")
	}
	return vb.Build()
}
