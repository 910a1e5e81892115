package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jankohoener/asknow/internal/config"
	"github.com/jankohoener/asknow/internal/logger"
	"github.com/mattn/go-sqlite3"
)

// DB wraps *sql.DB with the connection's dialect so that repositories and
// migrations can stay driver-agnostic.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

// Dialect reports the SQL dialect this connection was opened with
// ("postgres" or "sqlite").
func (db *DB) Dialect() string {
	return db.dialect
}

// NewConnect opens a database connection for the configured dialect.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Dialect {
	case "postgres":
		return NewConnectPostgres(ctx, cfg, log)
	case "sqlite":
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported database dialect %q", cfg.Dialect)
	}
}

// isUniqueViolation reports whether err is a unique-constraint violation
// from either supported driver.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	return false
}
