// SPDX-License-Identifier: Apache-2.0

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsPatch_HasReflectsPresentSections(t *testing.T) {
	patch := SettingsPatch{
		Git: &GitSettings{RepoPath: "/var/lib/photarium/library"},
	}

	assert.True(t, patch.Has(SectionGit))
	assert.False(t, patch.Has(SectionDatabase))
	assert.False(t, patch.Has(SectionOAuth))
	assert.False(t, patch.Has(SectionStag))
	assert.False(t, patch.Has("smtp"))
}

func TestSettingsPatch_OmittedSectionsStayAbsentAfterDecode(t *testing.T) {
	var patch SettingsPatch
	require.NoError(t, json.Unmarshal([]byte(`{"git": {"username": "syncbot"}}`), &patch))

	assert.NotNil(t, patch.Git)
	assert.Nil(t, patch.Database, "a section missing from the payload means no change, not a clear")
	assert.Nil(t, patch.OAuth)
	assert.Nil(t, patch.Stag)
}

func TestSettingsPatch_Overlay(t *testing.T) {
	patch := SettingsPatch{
		Database: &DatabaseSettings{URI: "postgres://db:5432/photos"},
	}

	overlay := patch.Overlay()

	assert.Equal(t, "postgres://db:5432/photos", overlay.Database.URI)
	assert.Equal(t, GitSettings{}, overlay.Git)
}

func TestPatchOf_CarriesEverySection(t *testing.T) {
	s := Settings{
		Database: DatabaseSettings{URI: "postgres://db:5432/photos"},
		Stag:     StagSettings{ScriptPath: "/opt/stag/tag.py"},
	}

	patch := PatchOf(s)

	for _, section := range []string{SectionDatabase, SectionGit, SectionOAuth, SectionStag} {
		assert.True(t, patch.Has(section), section)
	}
	assert.Equal(t, s, patch.Overlay())
}

func TestSettings_WireFieldNames(t *testing.T) {
	s := Settings{
		Database: DatabaseSettings{URI: "postgres://db:5432/photos", Username: "photo", Password: "x"},
		Git:      GitSettings{RepoPath: "/lib", URL: "https://git.example.com/p.git", PollIntervalMinutes: "15"},
		OAuth:    OAuthSettings{ClientID: "web", ClientSecret: "x", RedirectURI: "https://example.com/cb"},
		Stag:     StagSettings{ScriptPath: "/opt/stag/tag.py", PythonExecutable: "/usr/bin/python3"},
	}

	raw, err := json.Marshal(s)
	require.NoError(t, err)

	for _, key := range []string{
		`"database"`, `"git"`, `"oauth"`, `"stag"`,
		`"uri"`, `"username"`, `"password"`,
		`"repoPath"`, `"url"`, `"token"`, `"pollIntervalMinutes":15`,
		`"clientId"`, `"clientSecret"`, `"redirectUri"`,
		`"scriptPath"`, `"pythonExecutable"`,
	} {
		assert.Contains(t, string(raw), key)
	}
}
