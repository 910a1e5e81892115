package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate runs all pending schema migrations for the given dialect
// ("postgres" or "sqlite"). Migration SQL is embedded at build time so
// deployments need no external migration files.
func Migrate(db *sql.DB, dialect string) error {
	goose.SetBaseFS(embedMigrations)

	var gooseDialect, dir string
	switch dialect {
	case "postgres":
		gooseDialect, dir = "pgx", "postgres"
	case "sqlite":
		gooseDialect, dir = "sqlite3", "sqlite"
	default:
		return fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	if err := goose.SetDialect(gooseDialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
