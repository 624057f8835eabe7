// Package pokeapi is the client for the PokeAPI reference service
package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/KirkDiggler/pokemon-api/internal/clients/pokeapi Client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
)

const (
	// DefaultBaseURL is the public PokeAPI v2 root
	DefaultBaseURL = "https://pokeapi.co/api/v2"

	// DefaultHTTPTimeout bounds a single outbound call. There is no retry.
	DefaultHTTPTimeout = 10 * time.Second

	tracerName = "github.com/KirkDiggler/pokemon-api/internal/clients/pokeapi"

	// maxErrorBody caps how much of a failed response is kept for logging
	maxErrorBody = 512
)

// Client defines the interface for PokeAPI interactions
type Client interface {
	// GetPokemon fetches a creature by its reference-API identifier.
	// Returns errors.InvalidArgument for non-positive ids
	// Returns errors.NotFound when the API has no such creature
	// Returns errors.Unavailable when the API cannot be reached, fails, or
	// sends a body that cannot be read
	GetPokemon(ctx context.Context, id int) (*entities.Creature, error)
}

// Config contains configuration options for the PokeAPI client.
type Config struct {
	// BaseURL for PokeAPI (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to DefaultHTTPTimeout)
	HTTPTimeout time.Duration
	// HTTPClient overrides the transport, mainly for tests (optional)
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if !strings.HasPrefix(cfg.BaseURL, "http://") && !strings.HasPrefix(cfg.BaseURL, "https://") {
		return errors.InvalidArgumentf("base URL must be http(s): %q", cfg.BaseURL)
	}
	if cfg.HTTPTimeout < 0 {
		return errors.InvalidArgument("HTTP timeout cannot be negative")
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = DefaultHTTPTimeout
	}
	return nil
}

type client struct {
	baseURL    string
	httpClient *http.Client
	tracer     trace.Tracer
}

// New creates a new PokeAPI client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	// The per-call ceiling always applies, even to a caller-supplied client.
	bounded := *httpClient
	bounded.Timeout = cfg.HTTPTimeout

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &bounded,
		tracer:     otel.Tracer(tracerName),
	}, nil
}

// pokemonResponse is the subset of the /pokemon/{id} document we read
type pokemonResponse struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Stats []struct {
		BaseStat int `json:"base_stat"`
		Stat     struct {
			Name string `json:"name"`
		} `json:"stat"`
	} `json:"stats"`
}

func (c *client) GetPokemon(ctx context.Context, id int) (*entities.Creature, error) {
	ctx, span := c.tracer.Start(ctx, "pokeapi.GetPokemon",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.Int("pokemon.api_id", id)))
	defer span.End()

	creature, err := c.getPokemon(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, errors.GetMessage(err))
		return nil, err
	}

	span.SetAttributes(
		attribute.String("pokemon.name", creature.Name),
		attribute.Int("pokemon.stat_count", len(creature.Stats)))
	return creature, nil
}

func (c *client) getPokemon(ctx context.Context, id int) (*entities.Creature, error) {
	if id <= 0 {
		return nil, errors.InvalidArgumentf("pokemon id must be positive, got %d", id)
	}

	url := fmt.Sprintf("%s/pokemon/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build request for pokemon %d", id)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.WarnContext(ctx, "pokeapi request failed",
			"pokemon_id", id,
			"url", url,
			"error", err.Error())
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to reach pokeapi for pokemon %d", id)
	}
	defer func() { _ = resp.Body.Close() }() // nolint:errcheck // body already consumed

	slog.DebugContext(ctx, "pokeapi responded",
		"pokemon_id", id,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.NotFoundf("pokemon %d not found", id)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		slog.WarnContext(ctx, "pokeapi returned an error status",
			"pokemon_id", id,
			"status", resp.StatusCode,
			"body", string(body))
		return nil, errors.Unavailablef("pokeapi returned status %d for pokemon %d", resp.StatusCode, id)
	}

	var payload pokemonResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		// A truncated or garbled body is a failed lookup, same as a dropped connection.
		slog.WarnContext(ctx, "pokeapi returned an unreadable body",
			"pokemon_id", id,
			"error", err.Error())
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read pokemon %d from pokeapi", id)
	}

	return toCreature(id, &payload), nil
}

func toCreature(id int, payload *pokemonResponse) *entities.Creature {
	stats := make([]entities.Stat, 0, len(payload.Stats))
	for _, s := range payload.Stats {
		stats = append(stats, entities.Stat{
			Name:     s.Stat.Name,
			BaseStat: s.BaseStat,
		})
	}

	creatureID := payload.ID
	if creatureID == 0 {
		creatureID = id
	}

	return &entities.Creature{
		ID:    creatureID,
		Name:  payload.Name,
		Stats: stats,
	}
}
