// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"context"
	"net/url"

	"github.com/ndanilin/photarium/internal/schema"
	"github.com/ndanilin/photarium/models"
)

// SettingsValidator checks a merged settings candidate against the rules
// declared by the field schema. It must run on the merged aggregate, never
// on a partial patch, so that "required only if active" rules see the true
// final state.
//
// A fully empty section is always valid: it represents a subsystem that has
// not been configured yet.
type SettingsValidator struct {
}

func NewSettingsValidator() Validator {
	return &SettingsValidator{}
}

// Validate implements [Validator] for [models.Settings] values. The optional
// field arguments restrict validation to the named sections; when absent,
// every section is checked.
//
// On failure it returns [Violations] listing each broken rule in schema
// order. It never panics on malformed input and never reports a field value.
func (v *SettingsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Settings:
		return v.validateSettings(value, fields...)
	case *models.Settings:
		return v.validateSettings(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SettingsValidator) validateSettings(s models.Settings, sections ...string) error {
	if len(sections) == 0 {
		for _, sec := range schema.Sections() {
			sections = append(sections, sec.Name)
		}
	}

	var found Violations

	for _, name := range sections {
		fields := schema.FieldsOf(name)
		if fields == nil {
			return ErrUnknownSection
		}

		active := schema.Active(&s, name)

		for _, f := range fields {
			value := f.Get(&s)

			if value == "" {
				if active && f.Required {
					found = append(found, Violation{Section: name, Field: f.Name, Rule: RuleRequired})
				}
				continue
			}

			switch f.Type {
			case schema.Integer:
				if n, err := models.IntString(value).Int(); err != nil || n < 1 {
					found = append(found, Violation{Section: name, Field: f.Name, Rule: RuleInteger})
				}
			case schema.URI:
				if !isWellFormedURI(value) {
					found = append(found, Violation{Section: name, Field: f.Name, Rule: RuleURI})
				}
			}
		}
	}

	if len(found) > 0 {
		return found
	}

	return nil
}

// isWellFormedURI reports whether raw parses as an absolute URI with both a
// scheme and an authority present.
func isWellFormedURI(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
