package trainer

import (
	"context"
	"database/sql"
	stderrors "errors"
	"log/slog"
	"time"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/pkg/paging"
)

// SQLiteConfig contains configuration for the SQLite trainer repository.
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

// NewSQLite creates a SQLite-backed trainer repository. The schema must
// already be migrated.
func NewSQLite(cfg *SQLiteConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &sqliteRepository{db: cfg.DB}, nil
}

func (r *sqliteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateNew(input.Trainer); err != nil {
		return nil, err
	}

	created := *input.Trainer
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO trainers (name, birthdate) VALUES (?, ?)`,
		created.Name, created.Birthdate.Format(entities.BirthdateLayout))
	if err != nil {
		return nil, errors.Wrap(err, "failed to insert trainer")
	}

	created.ID, err = res.LastInsertId()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read trainer id")
	}

	slog.DebugContext(ctx, "created trainer", "trainer_id", created.ID)
	return &CreateOutput{Trainer: &created}, nil
}

func (r *sqliteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID <= 0 {
		return nil, errors.InvalidArgument(errTrainerIDInvalid)
	}

	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, birthdate FROM trainers WHERE id = ?`, input.ID)
	t, err := scanTrainer(row)
	if err != nil {
		if stderrors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("trainer %d not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get trainer %d", input.ID)
	}

	return &GetOutput{Trainer: t}, nil
}

func (r *sqliteRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	window, err := paging.Normalize(input.Offset, input.Limit)
	if err != nil {
		return nil, err
	}

	var rows *sql.Rows
	if input.Name != "" {
		rows, err = r.db.QueryContext(ctx,
			`SELECT id, name, birthdate FROM trainers WHERE name = ? ORDER BY id LIMIT ? OFFSET ?`,
			input.Name, window.Limit, window.Offset)
	} else {
		rows, err = r.db.QueryContext(ctx,
			`SELECT id, name, birthdate FROM trainers ORDER BY id LIMIT ? OFFSET ?`,
			window.Limit, window.Offset)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list trainers")
	}
	defer func() { _ = rows.Close() }()

	trainers := make([]*entities.Trainer, 0)
	for rows.Next() {
		t, err := scanTrainer(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan trainer")
		}
		trainers = append(trainers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate trainers")
	}

	return &ListOutput{Trainers: trainers}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTrainer(row scanner) (*entities.Trainer, error) {
	var (
		t         entities.Trainer
		birthdate string
	)
	if err := row.Scan(&t.ID, &t.Name, &birthdate); err != nil {
		return nil, err
	}

	parsed, err := time.Parse(entities.BirthdateLayout, birthdate)
	if err != nil {
		return nil, errors.Wrapf(err, "trainer %d has malformed birthdate %q", t.ID, birthdate)
	}
	t.Birthdate = parsed

	return &t, nil
}
