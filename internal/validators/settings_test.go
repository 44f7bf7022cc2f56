// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndanilin/photarium/models"
)

func validSettings() models.Settings {
	return models.Settings{
		Database: models.DatabaseSettings{
			URI:      "postgres://db:5432/photos",
			Username: "photo",
			Password: "secret",
		},
		Git: models.GitSettings{
			RepoPath:            "/var/lib/photarium/library",
			URL:                 "https://git.example.com/photos.git",
			PollIntervalMinutes: "15",
		},
		OAuth: models.OAuthSettings{
			ClientID:     "photarium-web",
			ClientSecret: "secret",
			RedirectURI:  "https://photos.example.com/callback",
		},
		Stag: models.StagSettings{
			ScriptPath:       "/opt/stag/tag.py",
			PythonExecutable: "/usr/bin/python3",
		},
	}
}

func TestValidate_EmptySettingsAreValid(t *testing.T) {
	v := NewSettingsValidator()

	assert.NoError(t, v.Validate(context.Background(), models.Settings{}),
		"unconfigured sections carry required fields but must pass while inactive")
}

func TestValidate_FullValidSettings(t *testing.T) {
	v := NewSettingsValidator()

	assert.NoError(t, v.Validate(context.Background(), validSettings()))
}

func TestValidate_AcceptsPointer(t *testing.T) {
	v := NewSettingsValidator()
	s := validSettings()

	assert.NoError(t, v.Validate(context.Background(), &s))
}

func TestValidate_RequiredOnlyWhenActive(t *testing.T) {
	v := NewSettingsValidator()

	var s models.Settings
	s.Database.URI = "postgres://db:5432/photos"

	err := v.Validate(context.Background(), s)

	var violations Violations
	require.ErrorAs(t, err, &violations)
	assert.Equal(t, Violations{
		{Section: models.SectionDatabase, Field: "username", Rule: RuleRequired},
		{Section: models.SectionDatabase, Field: "password", Rule: RuleRequired},
	}, violations)
}

func TestValidate_PollIntervalMinutes(t *testing.T) {
	tests := []struct {
		name  string
		value models.IntString
		valid bool
	}{
		{"positive", "15", true},
		{"one", "1", true},
		{"zero activates and fails", "0", false},
		{"negative", "-3", false},
		{"not a number", "soon", false},
		{"empty is inactive", "", true},
	}

	v := NewSettingsValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			s.Git = models.GitSettings{PollIntervalMinutes: tt.value}
			if tt.value != "" {
				// keep the now-active section otherwise valid
				s.Git.RepoPath = "/var/lib/photarium/library"
				s.Git.URL = "https://git.example.com/photos.git"
			}

			err := v.Validate(context.Background(), s)

			if tt.valid {
				assert.NoError(t, err)
				return
			}

			var violations Violations
			require.ErrorAs(t, err, &violations)
			assert.Contains(t, violations,
				Violation{Section: models.SectionGit, Field: "pollIntervalMinutes", Rule: RuleInteger})
		})
	}
}

func TestValidate_RedirectURI(t *testing.T) {
	tests := []struct {
		name  string
		uri   string
		valid bool
	}{
		{"https scheme", "https://photos.example.com/callback", true},
		{"custom app scheme", "photarium://oauth/callback", true},
		{"missing scheme", "photos.example.com/callback", false},
		{"missing host", "https://", false},
		{"not a uri", "://broken", false},
	}

	v := NewSettingsValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			s.OAuth.RedirectURI = tt.uri

			err := v.Validate(context.Background(), s)

			if tt.valid {
				assert.NoError(t, err)
				return
			}

			var violations Violations
			require.ErrorAs(t, err, &violations)
			assert.Equal(t, Violations{
				{Section: models.SectionOAuth, Field: "redirectUri", Rule: RuleURI},
			}, violations)
		})
	}
}

func TestValidate_DatabaseURIAndGitURLAreFreeForm(t *testing.T) {
	v := NewSettingsValidator()

	s := validSettings()
	s.Database.URI = "host=localhost port=5432 dbname=photos"
	s.Git.URL = "git@github.com:davesnyd/photos.git"

	assert.NoError(t, v.Validate(context.Background(), s),
		"key=value DSNs and scp-style remotes do not parse as URIs and must still pass")
}

func TestValidate_SectionScoping(t *testing.T) {
	v := NewSettingsValidator()

	var s models.Settings
	s.Database.URI = "broken uri without scheme"
	s.Stag.ScriptPath = "/opt/stag/tag.py"
	s.Stag.PythonExecutable = "/usr/bin/python3"

	assert.NoError(t, v.Validate(context.Background(), s, models.SectionStag),
		"scoped validation must ignore other sections")
	assert.Error(t, v.Validate(context.Background(), s, models.SectionDatabase))
}

func TestValidate_UnknownSection(t *testing.T) {
	v := NewSettingsValidator()

	err := v.Validate(context.Background(), models.Settings{}, "smtp")

	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewSettingsValidator()

	err := v.Validate(context.Background(), 42)

	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestViolations_ErrorMessageNamesEveryField(t *testing.T) {
	violations := Violations{
		{Section: models.SectionDatabase, Field: "password", Rule: RuleRequired},
		{Section: models.SectionGit, Field: "pollIntervalMinutes", Rule: RuleInteger},
	}

	msg := violations.Error()

	assert.Contains(t, msg, "database.password")
	assert.Contains(t, msg, "git.pollIntervalMinutes")
}
