// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"

	"github.com/ndanilin/photarium/internal/config"
	"github.com/ndanilin/photarium/internal/logger"
)

// Storages aggregates every repository the application needs. It is built
// once at startup and injected into the service layer.
type Storages struct {
	SettingsRepository SettingsRepository
}

// NewStorages selects and constructs the settings storage backend from the
// storage configuration. Exactly one backend is used, picked in priority
// order: PostgreSQL DSN, SQLite path, settings file path. SQL backends are
// migrated before use.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	switch {
	case cfg.DB.DSN != "":
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			return nil, err
		}
		return &Storages{SettingsRepository: NewSettingsSQLRepository(db, log)}, nil

	case cfg.SQLite.Path != "":
		db, err := NewConnectSQLite(ctx, cfg.SQLite, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			return nil, err
		}
		return &Storages{SettingsRepository: NewSettingsSQLRepository(db, log)}, nil

	case cfg.File.Path != "":
		return &Storages{
			SettingsRepository: NewSettingsFileStorage(cfg.File.Path, cfg.File.Passphrase, log),
		}, nil
	}

	return nil, ErrUnknownStorageBackend
}
