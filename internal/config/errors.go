// SPDX-License-Identifier: Apache-2.0

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings (for
	// example, a file passphrase configured without a file path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, a negative request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
