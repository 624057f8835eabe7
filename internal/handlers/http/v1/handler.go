// Package v1 serves the trainer, pokemon and battle JSON API
package v1

import (
	"context"

	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/orchestrators/battle"
	"github.com/KirkDiggler/pokemon-api/internal/orchestrators/roster"
	"github.com/KirkDiggler/pokemon-api/internal/pkg/clock"
)

// HealthChecker reports whether the backing store is reachable
type HealthChecker interface {
	Check(ctx context.Context) error
}

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	RosterService roster.Service
	BattleService battle.Service
	Health        HealthChecker
	// Clock is optional and defaults to the system clock
	Clock clock.Clock
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("handler config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.RosterService == nil {
		vb.RequiredField("RosterService")
	}
	if c.BattleService == nil {
		vb.RequiredField("BattleService")
	}
	if c.Health == nil {
		vb.RequiredField("Health")
	}
	return vb.Build()
}

// Handler implements the HTTP endpoints
type Handler struct {
	roster roster.Service
	battle battle.Service
	health HealthChecker
	clock  clock.Clock
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &Handler{
		roster: cfg.RosterService,
		battle: cfg.BattleService,
		health: cfg.Health,
		clock:  c,
	}, nil
}
