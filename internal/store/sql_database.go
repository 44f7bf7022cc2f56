// SPDX-License-Identifier: Apache-2.0

package store

import (
	"database/sql"

	"github.com/ndanilin/photarium/internal/logger"
	"github.com/ndanilin/photarium/migrations"
)

// DB wraps a database/sql connection together with the driver-specific
// error classifier and a logger. SQL-backed settings repositories embed it.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	dialect            string
}

// Migrate applies the embedded goose migrations using the dialect the
// connection was opened with.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
