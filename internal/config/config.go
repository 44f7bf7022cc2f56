// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level runtime configuration container for the
// settings service. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds network address and timeout settings for the HTTP
	// admin server.
	Server Server `envPrefix:"SERVER_"`

	// Storage selects and configures the settings persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged underneath the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address on which the admin HTTP server
	// listens, in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration of the settings persistence backends.
// Exactly one backend is used at runtime, picked in priority order:
// PostgreSQL DSN, SQLite path, settings file path.
type Storage struct {
	// DB holds the PostgreSQL connection settings.
	DB DB `envPrefix:"DB_"`

	// SQLite holds the embedded SQLite settings.
	SQLite SQLite `envPrefix:"SQLITE_"`

	// File holds the JSON settings-file backend configuration.
	File Files `envPrefix:"FILE_"`
}

// DB holds the PostgreSQL connection settings.
type DB struct {
	// DSN is the PostgreSQL connection string.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// SQLite holds the embedded SQLite backend settings.
type SQLite struct {
	// Path is the SQLite database file path.
	// Env: STORAGE_SQLITE_PATH
	Path string `env:"PATH"`
}

// Files holds the settings-file backend configuration.
type Files struct {
	// Path is the JSON settings file path.
	// Env: STORAGE_FILE_PATH
	Path string `env:"PATH"`

	// Passphrase, when non-empty, seals the settings file with
	// Argon2id + AES-256-GCM. Deliberately not exposed as a flag so it
	// never appears in process listings.
	// Env: STORAGE_FILE_PASSPHRASE
	Passphrase string `env:"PASSPHRASE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
