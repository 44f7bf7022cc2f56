// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndanilin/photarium/internal/settings"
	"github.com/ndanilin/photarium/internal/validators"
	"github.com/ndanilin/photarium/models"
)

func redactedView() models.Settings {
	return models.Settings{
		Database: models.DatabaseSettings{
			URI:      "postgres://db:5432/photos",
			Username: "photo",
			Password: models.Sentinel,
		},
		Git: models.GitSettings{
			RepoPath:            "/var/lib/photarium/library",
			URL:                 "https://git.example.com/photos.git",
			PollIntervalMinutes: "15",
		},
	}
}

func newTestAdapter(t *testing.T, handler http.HandlerFunc) SettingsAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewHTTPSettingsAdapter(HTTPClientConfig{BaseURL: srv.URL, Timeout: 5 * time.Second})
}

func TestHTTPAdapter_GetSettings(t *testing.T) {
	client := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/settings", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(redactedView()))
	})

	got, err := client.GetSettings(context.Background())

	require.NoError(t, err)
	assert.Equal(t, redactedView(), got)
}

func TestHTTPAdapter_UpdateSettingsSendsPatchSectionsOnly(t *testing.T) {
	client := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/settings", r.URL.Path)

		var received map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		assert.Contains(t, received, "git")
		assert.NotContains(t, received, "database", "omitted sections must not travel on the wire")

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(redactedView()))
	})

	patch := models.SettingsPatch{
		Git: &models.GitSettings{
			RepoPath:            "/var/lib/photarium/library",
			URL:                 "https://git.example.com/photos.git",
			PollIntervalMinutes: "15",
		},
	}

	got, err := client.UpdateSettings(context.Background(), patch)

	require.NoError(t, err)
	assert.Equal(t, redactedView(), got)
}

func TestHTTPAdapter_UnmaskRejectionMapsToUnmaskError(t *testing.T) {
	client := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{
			"error":   "cannot keep a secret unchanged: no value was ever stored",
			"section": models.SectionGit,
			"field":   "token",
		})
	})

	_, err := client.UpdateSettings(context.Background(), models.SettingsPatch{})

	var unmaskErr *settings.UnmaskError
	require.ErrorAs(t, err, &unmaskErr)
	assert.Equal(t, models.SectionGit, unmaskErr.Section)
	assert.Equal(t, "token", unmaskErr.Field)
}

func TestHTTPAdapter_ValidationFailureMapsToViolations(t *testing.T) {
	wire := validators.Violations{
		{Section: models.SectionOAuth, Field: "redirectUri", Rule: validators.RuleURI},
	}

	client := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error":      "settings validation failed",
			"violations": wire,
		})
	})

	_, err := client.UpdateSettings(context.Background(), models.SettingsPatch{})

	var violations validators.Violations
	require.ErrorAs(t, err, &violations)
	assert.Equal(t, wire, violations)
}

func TestHTTPAdapter_PlainBadRequest(t *testing.T) {
	client := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid JSON was passed"})
	})

	_, err := client.UpdateSettings(context.Background(), models.SettingsPatch{})

	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestHTTPAdapter_ServerFailureMapsToInternalError(t *testing.T) {
	client := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Internal Server Error"})
	})

	_, err := client.GetSettings(context.Background())

	assert.ErrorIs(t, err, ErrInternalServerError)
}

func TestHTTPAdapter_UnexpectedStatus(t *testing.T) {
	client := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GetSettings(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
