// SPDX-License-Identifier: Apache-2.0

package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies all embedded migrations to db. The dialect ("pgx" or
// "sqlite3") must match the driver the connection was opened with; the
// migration SQL itself is written to run on both backends.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
