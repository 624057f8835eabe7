package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/KirkDiggler/pokemon-api/internal/errors"
)

const (
	migrationTable = "schema_migrations"

	upMarker   = "-- +migrate Up"
	downMarker = "-- +migrate Down"
)

// ApplyMigrations executes the *.sql files under root in name order, each at
// most once. Applied files are recorded in schema_migrations.
func ApplyMigrations(ctx context.Context, db *sql.DB, migrationFS fs.FS, root string) error {
	if db == nil {
		return errors.InvalidArgument("sql db is required")
	}
	if strings.TrimSpace(root) == "" {
		root = "."
	}

	entries, err := fs.ReadDir(migrationFS, root)
	if err != nil {
		return errors.Wrap(err, "failed to read migrations dir")
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+migrationTable+` (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
)`); err != nil {
		return errors.Wrap(err, "failed to ensure migration table")
	}

	for _, file := range files {
		applied, err := isApplied(ctx, db, file)
		if err != nil {
			return errors.Wrapf(err, "failed to check migration %s", file)
		}
		if applied {
			continue
		}

		content, err := fs.ReadFile(migrationFS, path.Join(root, file))
		if err != nil {
			return errors.Wrapf(err, "failed to read migration %s", file)
		}

		if err := applyOne(ctx, db, file, ExtractUpMigration(string(content))); err != nil {
			return err
		}
		slog.InfoContext(ctx, "applied migration", "name", file)
	}

	return nil
}

func applyOne(ctx context.Context, db *sql.DB, name, upSQL string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to begin migration %s", name)
	}
	defer func() { _ = tx.Rollback() }()

	if strings.TrimSpace(upSQL) != "" {
		if _, err := tx.ExecContext(ctx, upSQL); err != nil && !isAlreadyExists(err) {
			return errors.Wrapf(err, "failed to exec migration %s", name)
		}
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT OR IGNORE INTO "+migrationTable+" (name, applied_at) VALUES (?, ?)",
		name, time.Now().UTC().UnixMilli()); err != nil {
		return errors.Wrapf(err, "failed to record migration %s", name)
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrapf(err, "failed to commit migration %s", name)
	}
	return nil
}

// ExtractUpMigration returns the statements of the "-- +migrate Up" section,
// or the whole file when it has no markers.
func ExtractUpMigration(content string) string {
	upIdx := strings.Index(content, upMarker)
	if upIdx == -1 {
		return content
	}
	rest := content[upIdx+len(upMarker):]
	if downIdx := strings.Index(rest, downMarker); downIdx != -1 {
		return rest[:downIdx]
	}
	return rest
}

func isAlreadyExists(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "already exists") || strings.Contains(msg, "duplicate column name")
}

func isApplied(ctx context.Context, db *sql.DB, name string) (bool, error) {
	var found int
	err := db.QueryRowContext(ctx, "SELECT 1 FROM "+migrationTable+" WHERE name = ?", name).Scan(&found)
	if stderrors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
