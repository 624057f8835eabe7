// Package battle decides stat battles between two reference-API creatures
package battle

//go:generate mockgen -destination=mock/mock_service.go -package=battlemock github.com/KirkDiggler/pokemon-api/internal/orchestrators/battle Service

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
)

const tracerName = "github.com/KirkDiggler/pokemon-api/internal/orchestrators/battle"

// StatProvider resolves a creature's stats by reference-API id.
// pokeapi.Client satisfies it.
type StatProvider interface {
	GetPokemon(ctx context.Context, id int) (*entities.Creature, error)
}

// Service defines the interface for battle operations
type Service interface {
	// Battle compares the stats of two creatures.
	// Returns errors.InvalidArgument for non-positive ids
	// Returns errors.FailedPrecondition when the stat lists cannot be paired
	// Unresolvable creatures yield a nil Outcome, not an error.
	Battle(ctx context.Context, input *BattleInput) (*BattleOutput, error)
}

// Config holds the dependencies for the battle orchestrator
type Config struct {
	StatProvider StatProvider
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.StatProvider == nil {
		vb.RequiredField("StatProvider")
	}

	return vb.Build()
}

type orchestrator struct {
	stats  StatProvider
	tracer trace.Tracer
}

// NewOrchestrator creates a new battle orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		stats:  cfg.StatProvider,
		tracer: otel.Tracer(tracerName),
	}, nil
}

// Battle fetches both creatures one after the other and compares them
func (o *orchestrator) Battle(ctx context.Context, input *BattleInput) (*BattleOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("first_id", int64(input.FirstID), vb)
	errors.ValidatePositive("second_id", int64(input.SecondID), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	ctx, span := o.tracer.Start(ctx, "battle.Battle", trace.WithAttributes(
		attribute.Int("battle.first_id", input.FirstID),
		attribute.Int("battle.second_id", input.SecondID)))
	defer span.End()

	first, ok, err := o.resolve(ctx, input.FirstID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &BattleOutput{}, nil
	}
	second, ok, err := o.resolve(ctx, input.SecondID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &BattleOutput{}, nil
	}

	result, err := Compare(first.Stats, second.Stats)
	if err != nil {
		slog.WarnContext(ctx, "battle comparison failed",
			"first_id", input.FirstID,
			"second_id", input.SecondID,
			"error", err.Error())
		return nil, errors.Wrapf(err, "failed to compare %d and %d", input.FirstID, input.SecondID)
	}

	outcome := Decide(result, input.FirstID, input.SecondID)
	span.SetAttributes(
		attribute.Int("battle.result", result),
		attribute.Bool("battle.draw", outcome.Draw))

	slog.DebugContext(ctx, "battle decided",
		"first_id", input.FirstID,
		"second_id", input.SecondID,
		"result", result,
		"winner_id", outcome.WinnerID,
		"draw", outcome.Draw)

	return &BattleOutput{Outcome: outcome}, nil
}

// resolve returns ok=false without an error when the creature is unknown or
// the provider cannot be reached. Any other failure is returned.
func (o *orchestrator) resolve(ctx context.Context, id int) (*entities.Creature, bool, error) {
	creature, err := o.stats.GetPokemon(ctx, id)
	switch {
	case err == nil:
		if creature == nil {
			return nil, false, nil
		}
		return creature, true, nil
	case errors.IsNotFound(err), errors.IsUnavailable(err):
		slog.InfoContext(ctx, "creature could not be resolved, no battle result",
			"pokemon_id", id,
			"error", err.Error())
		return nil, false, nil
	default:
		return nil, false, errors.Wrapf(err, "failed to fetch pokemon %d", id)
	}
}
