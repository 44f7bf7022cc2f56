// SPDX-License-Identifier: Apache-2.0

// Package schema is the single source of truth describing the settings
// sections and their fields: which fields exist, in what order, which are
// secret, which are required, and how each is typed.
//
// The redactor, merger, and validator are written once against this table;
// adding a section or field is a schema-only change and no other component
// special-cases field names.
package schema

import "github.com/ndanilin/photarium/models"

// FieldType constrains the syntactic shape of a field value.
type FieldType int

const (
	// String places no constraint on the value.
	String FieldType = iota

	// Integer requires the value to parse as a base-10 integer >= 1
	// when non-empty.
	Integer

	// URI requires the value to parse as a URI with a scheme and an
	// authority when non-empty.
	URI
)

// Field describes a single settings field inside a section and carries the
// typed accessors used to read and write it generically on a
// [models.Settings] value.
type Field struct {
	// Name is the wire name of the field, unique within its section.
	Name string

	// Secret marks fields whose stored value must never be exposed:
	// redacted on read, merged through the sentinel protocol on write.
	// Callers holding only the (section, field) coordinates query this
	// flag through [IsSecret].
	Secret bool

	// Required marks fields that must be non-empty once their section
	// is active (has any non-default field).
	Required bool

	// Type is the syntactic constraint checked by the validator.
	Type FieldType

	// Get reads the field value from s.
	Get func(s *models.Settings) string

	// Set writes the field value into s.
	Set func(s *models.Settings, value string)
}

// Section is a named, ordered group of fields.
type Section struct {
	Name   string
	Fields []Field
}

var sections = []Section{
	{
		Name: models.SectionDatabase,
		Fields: []Field{
			{
				// free-form: key=value DSNs are as common as postgres:// URIs
				Name: "uri", Required: true,
				Get: func(s *models.Settings) string { return s.Database.URI },
				Set: func(s *models.Settings, v string) { s.Database.URI = v },
			},
			{
				Name: "username", Required: true,
				Get: func(s *models.Settings) string { return s.Database.Username },
				Set: func(s *models.Settings, v string) { s.Database.Username = v },
			},
			{
				Name: "password", Secret: true, Required: true,
				Get: func(s *models.Settings) string { return s.Database.Password },
				Set: func(s *models.Settings, v string) { s.Database.Password = v },
			},
		},
	},
	{
		Name: models.SectionGit,
		Fields: []Field{
			{
				Name: "repoPath", Required: true,
				Get: func(s *models.Settings) string { return s.Git.RepoPath },
				Set: func(s *models.Settings, v string) { s.Git.RepoPath = v },
			},
			{
				// free-form: scp-style remotes (git@host:path) are not URIs
				Name: "url", Required: true,
				Get: func(s *models.Settings) string { return s.Git.URL },
				Set: func(s *models.Settings, v string) { s.Git.URL = v },
			},
			{
				Name: "username",
				Get: func(s *models.Settings) string { return s.Git.Username },
				Set: func(s *models.Settings, v string) { s.Git.Username = v },
			},
			{
				Name: "token", Secret: true,
				Get: func(s *models.Settings) string { return s.Git.Token },
				Set: func(s *models.Settings, v string) { s.Git.Token = v },
			},
			{
				Name: "pollIntervalMinutes", Type: Integer,
				Get: func(s *models.Settings) string { return string(s.Git.PollIntervalMinutes) },
				Set: func(s *models.Settings, v string) { s.Git.PollIntervalMinutes = models.IntString(v) },
			},
		},
	},
	{
		Name: models.SectionOAuth,
		Fields: []Field{
			{
				Name: "clientId", Required: true,
				Get: func(s *models.Settings) string { return s.OAuth.ClientID },
				Set: func(s *models.Settings, v string) { s.OAuth.ClientID = v },
			},
			{
				Name: "clientSecret", Secret: true, Required: true,
				Get: func(s *models.Settings) string { return s.OAuth.ClientSecret },
				Set: func(s *models.Settings, v string) { s.OAuth.ClientSecret = v },
			},
			{
				Name: "redirectUri", Type: URI,
				Get: func(s *models.Settings) string { return s.OAuth.RedirectURI },
				Set: func(s *models.Settings, v string) { s.OAuth.RedirectURI = v },
			},
		},
	},
	{
		Name: models.SectionStag,
		Fields: []Field{
			{
				Name: "scriptPath", Required: true,
				Get: func(s *models.Settings) string { return s.Stag.ScriptPath },
				Set: func(s *models.Settings, v string) { s.Stag.ScriptPath = v },
			},
			{
				Name: "pythonExecutable", Required: true,
				Get: func(s *models.Settings) string { return s.Stag.PythonExecutable },
				Set: func(s *models.Settings, v string) { s.Stag.PythonExecutable = v },
			},
		},
	},
}

// Sections returns all sections in their fixed order.
func Sections() []Section {
	return sections
}

// FieldsOf returns the ordered field list of the named section, or nil for
// an unknown section name.
func FieldsOf(section string) []Field {
	for _, sec := range sections {
		if sec.Name == section {
			return sec.Fields
		}
	}

	return nil
}

// Lookup finds a field descriptor by (section, field) pair.
func Lookup(section, field string) (Field, bool) {
	for _, f := range FieldsOf(section) {
		if f.Name == field {
			return f, true
		}
	}

	return Field{}, false
}

// IsSecret reports whether the named field is marked secret.
// Unknown (section, field) pairs report false.
func IsSecret(section, field string) bool {
	f, ok := Lookup(section, field)
	return ok && f.Secret
}

// Active reports whether the named section of s is active, i.e. has at
// least one field set to a non-default value.
func Active(s *models.Settings, section string) bool {
	for _, f := range FieldsOf(section) {
		if f.Get(s) != "" {
			return true
		}
	}

	return false
}
