// Package sqlite opens the relational store and manages its schema
package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"
	"path/filepath"
	"strings"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/sqlite/migrations"
)

// pragmas applied to every pooled connection
const pragmas = "_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

// Open opens the database file at path and verifies the connection.
// The schema is not touched; call Migrate for that.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("sqlite path is required")
	}

	dsn := filepath.Clean(path) + "?" + pragmas
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite db %s", path)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to ping sqlite db %s", path)
	}

	return db, nil
}

// Migrate applies the embedded schema migrations that have not run yet.
// Running it again on an up-to-date database is a no-op.
func Migrate(ctx context.Context, db *sql.DB) error {
	return ApplyMigrations(ctx, db, migrations.FS, ".")
}

// IsForeignKeyViolation reports whether err was raised by a foreign key constraint
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY) ||
		strings.Contains(strings.ToLower(errString(err)), "foreign key constraint failed")
}

func hasCode(err error, code int) bool {
	var sqliteErr *msqlite.Error
	if stderrors.As(err, &sqliteErr) {
		return sqliteErr.Code() == code
	}
	return false
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
