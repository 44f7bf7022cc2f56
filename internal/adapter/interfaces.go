// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating
// with the settings service from administrative tooling.
//
// The primary abstraction is [SettingsAdapter], which decouples callers from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPSettingsAdapter]).
//
// Error values defined in errors.go are mapped from HTTP responses by
// mapHTTPError so that callers can use [errors.Is] and [errors.As] for
// transport-agnostic error handling: an unmask rejection surfaces as a
// *settings.UnmaskError and a validation failure as validators.Violations,
// the same values the engine itself returns.
package adapter

import (
	"context"

	"github.com/ndanilin/photarium/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/settings_adapter_mock.go -package=mock

// SettingsAdapter defines transport-agnostic access to the settings admin
// endpoints.
type SettingsAdapter interface {
	// GetSettings fetches the redacted settings aggregate.
	GetSettings(ctx context.Context) (models.Settings, error)

	// UpdateSettings submits a partial settings patch and returns the
	// redacted aggregate resulting from the merge.
	UpdateSettings(ctx context.Context, patch models.SettingsPatch) (models.Settings, error)
}
