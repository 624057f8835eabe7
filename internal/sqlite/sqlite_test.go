package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/sqlite"
)

type SQLiteTestSuite struct {
	suite.Suite
	db  *sql.DB
	ctx context.Context
}

func TestSQLiteSuite(t *testing.T) {
	suite.Run(t, new(SQLiteTestSuite))
}

func (s *SQLiteTestSuite) SetupTest() {
	s.ctx = context.Background()
	db, err := sqlite.Open(s.ctx, filepath.Join(s.T().TempDir(), "test.db"))
	s.Require().NoError(err)
	s.db = db
}

func (s *SQLiteTestSuite) TearDownTest() {
	s.Require().NoError(s.db.Close())
}

func (s *SQLiteTestSuite) count(query string, args ...any) int {
	var n int
	s.Require().NoError(s.db.QueryRowContext(s.ctx, query, args...).Scan(&n))
	return n
}

func (s *SQLiteTestSuite) TestOpenRequiresPath() {
	_, err := sqlite.Open(s.ctx, "  ")
	s.True(errors.IsInvalidArgument(err))
}

func (s *SQLiteTestSuite) TestOpenDoesNotCreateSchema() {
	s.Equal(0, s.count(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'trainers'`))
}

func (s *SQLiteTestSuite) TestMigrateCreatesTables() {
	s.Require().NoError(sqlite.Migrate(s.ctx, s.db))

	for _, table := range []string{"trainers", "pokemons", "items", "schema_migrations"} {
		s.Equal(1, s.count(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table), table)
	}
	s.Equal(3, s.count(`SELECT COUNT(*) FROM schema_migrations`))
}

func (s *SQLiteTestSuite) TestMigrateIsIdempotent() {
	s.Require().NoError(sqlite.Migrate(s.ctx, s.db))
	_, err := s.db.ExecContext(s.ctx, `INSERT INTO trainers (name, birthdate) VALUES ('Ash', '1987-05-22')`)
	s.Require().NoError(err)

	s.Require().NoError(sqlite.Migrate(s.ctx, s.db))

	s.Equal(3, s.count(`SELECT COUNT(*) FROM schema_migrations`))
	s.Equal(1, s.count(`SELECT COUNT(*) FROM trainers`), "re-running must keep existing rows")
}

func (s *SQLiteTestSuite) TestForeignKeysEnforced() {
	s.Require().NoError(sqlite.Migrate(s.ctx, s.db))

	_, err := s.db.ExecContext(s.ctx,
		`INSERT INTO items (name, description, trainer_id) VALUES ('Potion', 'heals', 42)`)
	s.Require().Error(err)
	s.True(sqlite.IsForeignKeyViolation(err))
}

func (s *SQLiteTestSuite) TestApplyMigrationsSkipsApplied() {
	first := fstest.MapFS{
		"001_create.sql": &fstest.MapFile{Data: []byte("-- +migrate Up\nCREATE TABLE things(id INTEGER PRIMARY KEY);\n-- +migrate Down\nDROP TABLE things;")},
	}
	s.Require().NoError(sqlite.ApplyMigrations(s.ctx, s.db, first, ""))

	// same name, different body: must not run again
	second := fstest.MapFS{
		"001_create.sql": &fstest.MapFile{Data: []byte("CREATE TABLE things(id INTEGER PRIMARY KEY, extra TEXT);")},
		"002_more.sql":   &fstest.MapFile{Data: []byte("CREATE TABLE more_things(id INTEGER PRIMARY KEY);")},
		"README.md":      &fstest.MapFile{Data: []byte("ignored")},
	}
	s.Require().NoError(sqlite.ApplyMigrations(s.ctx, s.db, second, "."))

	s.Equal(2, s.count(`SELECT COUNT(*) FROM schema_migrations`))
	s.Equal(0, s.count(`SELECT COUNT(*) FROM pragma_table_info('things') WHERE name = 'extra'`))
	s.Equal(1, s.count(`SELECT COUNT(*) FROM sqlite_master WHERE name = 'more_things'`))
}

func (s *SQLiteTestSuite) TestApplyMigrationsRequiresDB() {
	err := sqlite.ApplyMigrations(s.ctx, nil, fstest.MapFS{}, "")
	s.True(errors.IsInvalidArgument(err))
}

func TestExtractUpMigration(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		want    string
	}{
		{name: "no markers", content: "CREATE TABLE a(id INT);", want: "CREATE TABLE a(id INT);"},
		{name: "up only", content: "-- +migrate Up\nCREATE TABLE a(id INT);", want: "\nCREATE TABLE a(id INT);"},
		{name: "up and down", content: "-- +migrate Up\nCREATE TABLE a(id INT);\n-- +migrate Down\nDROP TABLE a;", want: "\nCREATE TABLE a(id INT);\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sqlite.ExtractUpMigration(tc.content); got != tc.want {
				t.Fatalf("ExtractUpMigration() = %q, want %q", got, tc.want)
			}
		})
	}
}
