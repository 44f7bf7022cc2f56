// SPDX-License-Identifier: Apache-2.0

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoadingSettings is returned when a repository cannot read the
	// persisted settings aggregate (as opposed to the aggregate simply not
	// having been written yet, which is not an error).
	ErrLoadingSettings = errors.New("error loading persisted settings")

	// ErrSavingSettings is returned when a repository fails to durably write
	// the settings aggregate. The previously persisted state is unchanged.
	ErrSavingSettings = errors.New("error saving settings")

	// ErrUnknownStorageBackend is returned by [NewStorages] when the storage
	// configuration selects no usable backend.
	ErrUnknownStorageBackend = errors.New("no settings storage backend configured")

	// ErrSealedSettingsFile is returned when a sealed settings file cannot be
	// opened with the configured passphrase, or when a sealed file is found
	// but no passphrase is configured.
	ErrSealedSettingsFile = errors.New("cannot open sealed settings file")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan settings row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan settings rows")
)
