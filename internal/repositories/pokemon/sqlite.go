package pokemon

import (
	"context"
	"database/sql"
	stderrors "errors"
	"log/slog"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/pkg/paging"
	"github.com/KirkDiggler/pokemon-api/internal/sqlite"
)

const selectColumns = `SELECT id, api_id, name, custom_name, trainer_id FROM pokemons`

// SQLiteConfig contains configuration for the SQLite pokemon repository.
type SQLiteConfig struct {
	DB *sql.DB
}

// Validate validates the SQLiteConfig.
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.DB == nil {
		return errors.InvalidArgument("db cannot be nil")
	}
	return nil
}

type sqliteRepository struct {
	db *sql.DB
}

// NewSQLite creates a SQLite-backed pokemon repository. The schema must
// already be migrated.
func NewSQLite(cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &sqliteRepository{db: cfg.DB}, nil
}

func (r *sqliteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateNew(input.Pokemon); err != nil {
		return nil, err
	}

	created := *input.Pokemon
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO pokemons (api_id, name, custom_name, trainer_id) VALUES (?, ?, ?, ?)`,
		created.APIID, created.Name, created.CustomName, created.TrainerID)
	if err != nil {
		if sqlite.IsForeignKeyViolation(err) {
			return nil, errors.NotFoundf("trainer %d not found", created.TrainerID)
		}
		return nil, errors.Wrap(err, "failed to insert pokemon")
	}

	created.ID, err = res.LastInsertId()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read pokemon id")
	}

	slog.DebugContext(ctx, "created pokemon",
		"pokemon_id", created.ID,
		"trainer_id", created.TrainerID,
		"api_id", created.APIID)
	return &CreateOutput{Pokemon: &created}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID <= 0 {
		return nil, errors.InvalidArgument(errPokemonIDInvalid)
	}

	var p entities.Pokemon
	err := r.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, input.ID).
		Scan(&p.ID, &p.APIID, &p.Name, &p.CustomName, &p.TrainerID)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("pokemon %d not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get pokemon %d", input.ID)
	}

	return &GetOutput{Pokemon: &p}, nil
}

func (r *sqliteRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	window, err := paging.Normalize(input.Offset, input.Limit)
	if err != nil {
		return nil, err
	}

	pokemons, err := r.query(ctx, selectColumns+` ORDER BY id LIMIT ? OFFSET ?`, window.Limit, window.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pokemons")
	}
	return &ListOutput{Pokemons: pokemons}, nil
}

func (r *sqliteRepository) ListByTrainer(ctx context.Context, input ListByTrainerInput) (*ListByTrainerOutput, error) {
	if input.TrainerID <= 0 {
		return nil, errors.InvalidArgument(errTrainerIDInvalid)
	}

	pokemons, err := r.query(ctx, selectColumns+` WHERE trainer_id = ? ORDER BY id`, input.TrainerID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list pokemons for trainer %d", input.TrainerID)
	}
	return &ListByTrainerOutput{Pokemons: pokemons}, nil
}

func (r *sqliteRepository) query(ctx context.Context, query string, args ...any) ([]*entities.Pokemon, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	pokemons := make([]*entities.Pokemon, 0)
	for rows.Next() {
		var p entities.Pokemon
		if err := rows.Scan(&p.ID, &p.APIID, &p.Name, &p.CustomName, &p.TrainerID); err != nil {
			return nil, err
		}
		pokemons = append(pokemons, &p)
	}
	return pokemons, rows.Err()
}
