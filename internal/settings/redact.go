// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"github.com/ndanilin/photarium/internal/schema"
	"github.com/ndanilin/photarium/models"
)

// Redact returns a copy of s that is safe to expose: every non-empty secret
// field is replaced with [models.Sentinel], empty secret fields stay empty,
// plain fields pass through untouched.
//
// Redact is total and side-effect free. It must be applied only on the read
// path and to the result of a successful update — never to a value that will
// later be merged or validated, so a sentinel is never laundered into the
// engine as a real value.
func Redact(s models.Settings) models.Settings {
	out := s

	for _, sec := range schema.Sections() {
		for _, f := range sec.Fields {
			if !f.Secret {
				continue
			}
			if f.Get(&out) != "" {
				f.Set(&out, models.Sentinel)
			}
		}
	}

	return out
}
