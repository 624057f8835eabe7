package testutils

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokemon-api/internal/sqlite"
)

// CreateTestSQLiteDB opens a migrated SQLite database in a per-test temp dir.
// The handle is closed when the test finishes.
func CreateTestSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx := context.Background()
	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "pokemon.db"))
	require.NoError(t, err, "failed to open sqlite")
	require.NoError(t, sqlite.Migrate(ctx, db), "failed to migrate sqlite")

	t.Cleanup(func() {
		_ = db.Close()
	})

	return db
}
