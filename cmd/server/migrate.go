package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokemon-api/internal/sqlite"
)

var (
	sqlitePath     string
	migrateTimeout time.Duration
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply SQLite schema migrations",
	Long:  `Apply any pending schema migrations to the SQLite database. Running it again is a no-op.`,
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().StringVar(&sqlitePath, "sqlite-path", "./sqlite.db", "SQLite database file")
	migrateCmd.Flags().DurationVar(&migrateTimeout, "timeout", time.Minute, "Migration timeout")
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	db, err := sqlite.Open(ctx, sqlitePath)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close() // nolint:errcheck // safe to ignore on exit
	}()

	if err := sqlite.Migrate(ctx, db); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migrations applied to %s\n", sqlitePath)
	return nil
}
