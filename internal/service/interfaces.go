// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"github.com/ndanilin/photarium/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/settings_service_mock.go -package=mock

// SettingsService owns the single live settings aggregate and its
// persistence. It is the only component allowed to mutate the published
// value.
type SettingsService interface {
	// GetSettings returns the redacted view of the current live aggregate.
	// It never blocks on writers and never exposes a real secret value.
	GetSettings(ctx context.Context) models.Settings

	// UpdateSettings merges the patch into the current aggregate, validates
	// the candidate, persists it, and atomically publishes it. On success
	// the redacted view of the new aggregate is returned.
	//
	// Failures leave both the persisted and the published state untouched:
	//   - a sentinel over a never-set secret yields a
	//     settings.UnmaskError;
	//   - rule violations yield validators.Violations;
	//   - a storage failure yields an error wrapping
	//     store.ErrSavingSettings.
	UpdateSettings(ctx context.Context, patch models.SettingsPatch) (models.Settings, error)
}
