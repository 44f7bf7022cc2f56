// SPDX-License-Identifier: Apache-2.0

package config

import "time"

const (
	defaultHTTPAddress      = "localhost:8080"
	defaultSettingsFilePath = "photarium-settings.json"
	defaultRequestTimeout   = 30 * time.Second
)

// setDefaults fills the gaps left by all configuration sources so the
// service starts usable out of the box: localhost HTTP address and the
// clear-JSON settings file backend in the working directory.
func (cfg *StructuredConfig) setDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}

	noBackend := cfg.Storage.DB.DSN == "" &&
		cfg.Storage.SQLite.Path == "" &&
		cfg.Storage.File.Path == ""
	if noBackend {
		cfg.Storage.File.Path = defaultSettingsFilePath
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.File.Passphrase != "" && cfg.Storage.File.Path == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
