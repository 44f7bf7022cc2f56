// SPDX-License-Identifier: Apache-2.0

// Package store holds the persistence collaborators of the settings engine.
// Every backend implements [SettingsRepository]; the engine itself never
// knows which one is in use.
package store

import (
	"context"

	"github.com/ndanilin/photarium/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/settings_repository_mock.go -package=mock

// SettingsRepository is the storage collaborator injected into the settings
// service. Load bootstraps the live aggregate at startup; Save performs the
// durable write of a merged and validated candidate.
//
// A backend that has never been written to reports the zero
// [models.Settings] from Load with a nil error: an unconfigured system is a
// valid state, not a failure.
type SettingsRepository interface {
	Load(ctx context.Context) (models.Settings, error)
	Save(ctx context.Context, settings models.Settings) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. SQL-backed repositories embed one matching their driver.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
