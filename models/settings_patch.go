// SPDX-License-Identifier: Apache-2.0

package models

// SettingsPatch is the caller-facing update payload for [Settings].
// Each section is optional: a nil section means "leave this section
// unchanged", a present section is merged field by field against the stored
// value (plain fields are replaced, secret fields follow the sentinel
// protocol).
type SettingsPatch struct {
	Database *DatabaseSettings `json:"database,omitempty"`
	Git      *GitSettings      `json:"git,omitempty"`
	OAuth    *OAuthSettings    `json:"oauth,omitempty"`
	Stag     *StagSettings     `json:"stag,omitempty"`
}

// Has reports whether the patch carries the named section.
// Unknown section names are reported as absent.
func (p SettingsPatch) Has(section string) bool {
	switch section {
	case SectionDatabase:
		return p.Database != nil
	case SectionGit:
		return p.Git != nil
	case SectionOAuth:
		return p.OAuth != nil
	case SectionStag:
		return p.Stag != nil
	}

	return false
}

// Overlay returns a [Settings] value holding the sections present in the
// patch; absent sections remain at their zero value. Use together with [Has]
// to read patched field values through the field schema accessors.
func (p SettingsPatch) Overlay() Settings {
	var s Settings

	if p.Database != nil {
		s.Database = *p.Database
	}
	if p.Git != nil {
		s.Git = *p.Git
	}
	if p.OAuth != nil {
		s.OAuth = *p.OAuth
	}
	if p.Stag != nil {
		s.Stag = *p.Stag
	}

	return s
}

// PatchOf returns a full patch carrying every section of s. Submitting
// PatchOf(Redact(s)) back unchanged is the documented round-trip no-op.
func PatchOf(s Settings) SettingsPatch {
	return SettingsPatch{
		Database: &s.Database,
		Git:      &s.Git,
		OAuth:    &s.OAuth,
		Stag:     &s.Stag,
	}
}
