// Package migrations embeds the SQL schema of every supported dialect and
// applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite3/*.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations for dialect ("postgres" or
// "sqlite3").
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dir, err := Dir(dialect)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	provider, err := goose.NewProvider(goose.Dialect(dialect), db, dir)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err = provider.Up(context.Background()); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Dir returns the embedded migration directory of dialect.
func Dir(dialect string) (fs.FS, error) {
	switch dialect {
	case "postgres", "sqlite3":
		return fs.Sub(embedMigrations, dialect)
	default:
		return nil, fmt.Errorf("unsupported dialect %q", dialect)
	}
}
