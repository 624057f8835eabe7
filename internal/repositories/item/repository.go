// Package item provides the interface for inventory item persistence
package item

//go:generate mockgen -destination=mock/mock_repository.go -package=itemmock github.com/KirkDiggler/pokemon-api/internal/repositories/item Repository

import (
	"context"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
)

// Repository defines the interface for item persistence
type Repository interface {
	// Create stores an item for an existing trainer and assigns its ID
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the owning trainer doesn't exist
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// List returns items in ID order within an offset/limit window
	// Returns errors.InvalidArgument for negative offset or limit
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// ListByTrainer returns a trainer's inventory in ID order
	// Returns errors.InvalidArgument for non-positive trainer IDs
	// Returns errors.Internal for storage failures
	ListByTrainer(ctx context.Context, input ListByTrainerInput) (*ListByTrainerOutput, error)
}

// CreateInput defines the input for creating an item
type CreateInput struct {
	Item *entities.Item
}

// CreateOutput defines the output for creating an item
type CreateOutput struct {
	Item *entities.Item
}

// ListInput defines the input for listing items
type ListInput struct {
	Offset int
	Limit  int
}

// ListOutput defines the output for listing items
type ListOutput struct {
	Items []*entities.Item
}

// ListByTrainerInput defines the input for listing a trainer's items
type ListByTrainerInput struct {
	TrainerID int64
}

// ListByTrainerOutput defines the output for listing a trainer's items
type ListByTrainerOutput struct {
	Items []*entities.Item
}

const (
	errItemNil          = "item cannot be nil"
	errTrainerIDInvalid = "trainer ID must be positive"
	maxNameLength       = 128
)

func validateNew(i *entities.Item) error {
	if i == nil {
		return errors.InvalidArgument(errItemNil)
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", i.Name, vb)
	errors.ValidateMaxLength("name", i.Name, maxNameLength, vb)
	errors.ValidatePositive("trainer_id", i.TrainerID, vb)
	return vb.Build()
}
