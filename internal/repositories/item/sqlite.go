package item

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/pkg/paging"
	"github.com/KirkDiggler/pokemon-api/internal/sqlite"
)

const selectColumns = `SELECT id, name, description, trainer_id FROM items`

// SQLiteConfig contains configuration for the SQLite item repository.
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

// NewSQLite creates a SQLite-backed item repository. The schema must
// already be migrated.
func NewSQLite(cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &sqliteRepository{db: cfg.DB}, nil
}

func (r *sqliteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateNew(input.Item); err != nil {
		return nil, err
	}

	created := *input.Item
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO items (name, description, trainer_id) VALUES (?, ?, ?)`,
		created.Name, created.Description, created.TrainerID)
	if err != nil {
		if sqlite.IsForeignKeyViolation(err) {
			return nil, errors.NotFoundf("trainer %d not found", created.TrainerID)
		}
		return nil, errors.Wrap(err, "failed to insert item")
	}

	created.ID, err = res.LastInsertId()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read item id")
	}

	slog.DebugContext(ctx, "created item",
		"item_id", created.ID,
		"trainer_id", created.TrainerID)
	return &CreateOutput{Item: &created}, nil
}

func (r *sqliteRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	window, err := paging.Normalize(input.Offset, input.Limit)
	if err != nil {
		return nil, err
	}

	items, err := r.query(ctx, selectColumns+` ORDER BY id LIMIT ? OFFSET ?`, window.Limit, window.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}
	return &ListOutput{Items: items}, nil
}

func (r *sqliteRepository) ListByTrainer(ctx context.Context, input ListByTrainerInput) (*ListByTrainerOutput, error) {
	if input.TrainerID <= 0 {
		return nil, errors.InvalidArgument(errTrainerIDInvalid)
	}

	items, err := r.query(ctx, selectColumns+` WHERE trainer_id = ? ORDER BY id`, input.TrainerID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list items for trainer %d", input.TrainerID)
	}
	return &ListByTrainerOutput{Items: items}, nil
}

func (r *sqliteRepository) query(ctx context.Context, query string, args ...any) ([]*entities.Item, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	items := make([]*entities.Item, 0)
	for rows.Next() {
		var i entities.Item
		if err := rows.Scan(&i.ID, &i.Name, &i.Description, &i.TrainerID); err != nil {
			return nil, err
		}
		items = append(items, &i)
	}
	return items, rows.Err()
}
