// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/ndanilin/photarium/internal/logger"
	"github.com/ndanilin/photarium/internal/schema"
	"github.com/ndanilin/photarium/models"
)

// settingsSQLRepository is the SQL-backed implementation of
// [SettingsRepository], shared by the PostgreSQL and SQLite backends. The
// aggregate is persisted as one row per (section, field) pair in the
// "settings" table, so the storage shape follows the field schema and never
// needs a migration when a field is added.
type settingsSQLRepository struct {
	db      *DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// NewSettingsSQLRepository constructs a [SettingsRepository] on top of an
// opened [*DB]. The SQL placeholder style is chosen from the connection's
// dialect ($N for pgx, ? for sqlite3).
func NewSettingsSQLRepository(db *DB, log *logger.Logger) SettingsRepository {
	var placeholder sq.PlaceholderFormat = sq.Question
	if db.dialect == "pgx" {
		placeholder = sq.Dollar
	}

	return &settingsSQLRepository{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder),
		logger:  log,
	}
}

// Load reads every persisted (section, field, value) row and folds it into a
// [models.Settings] aggregate through the schema accessors. Rows whose
// coordinates are unknown to the schema (e.g. fields removed in a newer
// release) are skipped with a warning. An empty table yields the zero
// aggregate.
func (r *settingsSQLRepository) Load(ctx context.Context) (models.Settings, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("section", "field", "value").
		From("settings").
		ToSql()
	if err != nil {
		return models.Settings{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "settingsSQLRepository.Load").
			Msg("failed to execute query for loading settings")
		return models.Settings{}, fmt.Errorf("%w: %w", ErrLoadingSettings, err)
	}
	defer rows.Close()

	var loaded models.Settings

	for rows.Next() {
		var section, field, value string

		if scanErr := rows.Scan(&section, &field, &value); scanErr != nil {
			log.Err(scanErr).
				Str("func", "settingsSQLRepository.Load").
				Msg("failed to scan settings row")
			return models.Settings{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		f, ok := schema.Lookup(section, field)
		if !ok {
			log.Warn().
				Str("section", section).
				Str("field", field).
				Msg("skipping persisted settings row unknown to the schema")
			continue
		}

		f.Set(&loaded, value)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "settingsSQLRepository.Load").
			Msg("error occurred during rows iteration")
		return models.Settings{}, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return loaded, nil
}

// Save upserts every field of the aggregate in a single INSERT .. ON
// CONFLICT statement, so the write is atomic on both backends: a failure
// leaves the previously persisted aggregate fully intact.
//
// Field values are bound as statement arguments and never interpolated, and
// no value is ever logged here: secrets pass through this method in the
// clear.
func (r *settingsSQLRepository) Save(ctx context.Context, settings models.Settings) error {
	log := logger.FromContext(ctx)

	insert := r.builder.
		Insert("settings").
		Columns("section", "field", "value").
		Suffix("ON CONFLICT (section, field) DO UPDATE SET value = excluded.value")

	for _, sec := range schema.Sections() {
		for _, f := range sec.Fields {
			insert = insert.Values(sec.Name, f.Name, f.Get(&settings))
		}
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		event := log.Err(err).
			Str("func", "settingsSQLRepository.Save").
			Bool("retryable", r.db.errorClassificator.Classify(err) == Retryable)
		if r.db.dialect == "pgx" {
			event = event.Str("pg_code", postgresError(err))
		}
		event.Msg("failed to upsert settings")
		return fmt.Errorf("%w: %w", ErrSavingSettings, err)
	}

	return nil
}
