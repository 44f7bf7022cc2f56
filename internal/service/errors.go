// SPDX-License-Identifier: Apache-2.0

package service

import "errors"

var (
	// ErrBootstrappingSettings is returned by [NewSettingsService] when the
	// persisted aggregate cannot be loaded at startup.
	ErrBootstrappingSettings = errors.New("failed to bootstrap settings from storage")
)
