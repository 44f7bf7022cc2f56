// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:9090")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "45s")
	t.Setenv("STORAGE_DB_DSN", "postgres://db:5432/photarium")
	t.Setenv("STORAGE_FILE_PATH", "/var/lib/photarium/settings.json")
	t.Setenv("STORAGE_FILE_PASSPHRASE", "sealed")
	t.Setenv("CONFIG", "/etc/photarium/config.json")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "0.0.0.0:9090", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "postgres://db:5432/photarium", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/lib/photarium/settings.json", cfg.Storage.File.Path)
	assert.Equal(t, "sealed", cfg.Storage.File.Passphrase)
	assert.Equal(t, "/etc/photarium/config.json", cfg.JSONFilePath)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "soon")

	var cfg StructuredConfig
	assert.Error(t, parseEnv(&cfg))
}

func TestParseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"server": {"http_address": "localhost:9191", "request_timeout": "1m"},
		"storage": {"sqlite": {"path": "photarium.db"}}
	}`), 0o600))

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "localhost:9191", cfg.Server.HTTPAddress)
	assert.Equal(t, time.Minute, cfg.Server.RequestTimeout)
	assert.Equal(t, "photarium.db", cfg.Storage.SQLite.Path)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestParseJSON_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Duration
	}{
		{"duration string", `"30s"`, 30 * time.Second},
		{"minutes string", `"1m30s"`, 90 * time.Second},
		{"nanoseconds number", `1000000000`, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, d.UnmarshalJSON([]byte(tt.in)))
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}

	var d Duration
	assert.Error(t, d.UnmarshalJSON([]byte(`"soon"`)))
}

func TestSetDefaults(t *testing.T) {
	var cfg StructuredConfig
	cfg.setDefaults()

	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, defaultSettingsFilePath, cfg.Storage.File.Path, "the file backend is the out-of-the-box default")
}

func TestSetDefaults_KeepsExplicitBackend(t *testing.T) {
	cfg := StructuredConfig{
		Storage: Storage{SQLite: SQLite{Path: "photarium.db"}},
	}
	cfg.setDefaults()

	assert.Empty(t, cfg.Storage.File.Path, "no file fallback when another backend is configured")
	assert.Equal(t, "photarium.db", cfg.Storage.SQLite.Path)
}

func TestValidate(t *testing.T) {
	valid := StructuredConfig{}
	valid.setDefaults()
	assert.NoError(t, valid.validate())

	passphraseWithoutPath := StructuredConfig{
		Storage: Storage{File: Files{Passphrase: "sealed"}},
	}
	assert.ErrorIs(t, passphraseWithoutPath.validate(), ErrInvalidStorageConfigs)

	negativeTimeout := StructuredConfig{
		Server: Server{RequestTimeout: -time.Second},
	}
	assert.ErrorIs(t, negativeTimeout.validate(), ErrInvalidServerConfigs)
}

func TestNetAddress(t *testing.T) {
	var addr NetAddress
	assert.Empty(t, addr.String(), "unset address must render empty so merge treats it as absent")

	require.NoError(t, addr.Set("localhost:8080"))
	assert.Equal(t, "localhost", addr.Host)
	assert.Equal(t, 8080, addr.Port)
	assert.Equal(t, "localhost:8080", addr.String())

	assert.Error(t, addr.Set("no-port"))
	assert.Error(t, addr.Set("host:notaport"))
}
