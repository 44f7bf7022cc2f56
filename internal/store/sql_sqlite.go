// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ndanilin/photarium/internal/config"
	"github.com/ndanilin/photarium/internal/logger"
)

// NewConnectSQLite opens (and creates, if missing) a SQLite database file
// and returns a [*DB] ready for migration and repository use. SQLite is the
// default embedded backend for single-host deployments without a PostgreSQL
// instance.
func NewConnectSQLite(ctx context.Context, cfg config.SQLite, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening sqlite database")
		return nil, fmt.Errorf("error opening sqlite database: %w", err)
	}

	// the sqlite3 driver serialises writes; one connection avoids
	// SQLITE_BUSY on concurrent updates
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting sqlite database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Str("path", cfg.Path).Msg("opened sqlite database")

	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewSQLiteErrorClassifier(),
		dialect:            "sqlite3",
	}, nil
}
