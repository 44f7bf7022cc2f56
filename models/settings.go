// SPDX-License-Identifier: Apache-2.0

package models

// Sentinel is the fixed placeholder string written in place of every stored
// secret value when settings are exposed to a caller.
//
// On the write path the sentinel has the reserved meaning "leave the stored
// value unchanged": a secret field carrying exactly this string is never
// accepted as a real secret value.
const Sentinel = "********"

// Names of the four fixed settings sections. The aggregate always contains
// exactly these sections; no other section names exist.
const (
	SectionDatabase = "database"
	SectionGit      = "git"
	SectionOAuth    = "oauth"
	SectionStag     = "stag"
)

// Settings is the root system-configuration aggregate of the photo archive.
// It is composed of exactly four named sections, each present at all times.
// An unconfigured section is represented by its zero value, never by absence.
//
// Settings values are treated as immutable once published: every update
// produces a new instance that atomically replaces the previous one.
type Settings struct {
	// Database holds the connection settings of the photo database.
	Database DatabaseSettings `json:"database"`

	// Git holds the settings of the photo-library git repository sync.
	Git GitSettings `json:"git"`

	// OAuth holds the OAuth client settings used by the web frontend login.
	OAuth OAuthSettings `json:"oauth"`

	// Stag holds the settings of the AI photo-tagging script ("stag").
	Stag StagSettings `json:"stag"`
}

// DatabaseSettings configures the connection to the photo database.
type DatabaseSettings struct {
	// URI is the database connection string, either URI-shaped
	// ("postgres://host:5432/photos") or a key=value DSN.
	URI string `json:"uri"`

	// Username is the database login.
	Username string `json:"username"`

	// Password is the database password. Secret: redacted on every read,
	// merged through the sentinel protocol on write.
	Password string `json:"password"`
}

// GitSettings configures polling of the git repository that mirrors the
// photo library.
type GitSettings struct {
	// RepoPath is the local checkout path of the repository.
	RepoPath string `json:"repoPath"`

	// URL is the remote repository location. Both https URLs and
	// scp-style remotes (git@host:path) are accepted.
	URL string `json:"url"`

	// Username is the login used for remote authentication. Optional for
	// public repositories.
	Username string `json:"username"`

	// Token is the access token used for remote authentication. Secret.
	Token string `json:"token"`

	// PollIntervalMinutes is the polling period in minutes. When set it must
	// parse as an integer greater than or equal to one. Kept as a string so
	// that an out-of-range submission (for example "0") is still representable
	// and reported by validation instead of being silently coerced.
	PollIntervalMinutes IntString `json:"pollIntervalMinutes"`
}

// OAuthSettings configures the OAuth client of the web frontend.
type OAuthSettings struct {
	// ClientID is the public OAuth client identifier.
	ClientID string `json:"clientId"`

	// ClientSecret is the confidential OAuth client secret. Secret.
	ClientSecret string `json:"clientSecret"`

	// RedirectURI is the registered redirect URI. Must be a well-formed URI
	// (scheme and host) when non-empty.
	RedirectURI string `json:"redirectUri"`
}

// StagSettings configures the AI tagging script invocation.
type StagSettings struct {
	// ScriptPath is the filesystem path of the tagging script.
	ScriptPath string `json:"scriptPath"`

	// PythonExecutable is the interpreter used to run the script.
	PythonExecutable string `json:"pythonExecutable"`
}
