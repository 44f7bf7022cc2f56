// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"github.com/ndanilin/photarium/internal/schema"
	"github.com/ndanilin/photarium/models"
)

// Merge combines the stored settings with an incoming patch into a new
// candidate aggregate. Sections absent from the patch pass through
// unchanged. Within a patched section, per field:
//
//   - plain field: the incoming value replaces the stored one
//     unconditionally, including an intentional clear to empty;
//   - secret field equal to [models.Sentinel]: the stored value is kept;
//     if the stored value is empty, Merge fails with an [UnmaskError];
//   - secret field that is empty: the stored value is explicitly cleared
//     (distinct from the sentinel's "leave unchanged");
//   - secret field with any other value: it becomes the new stored secret.
//
// Merge is pure: it never touches storage and never mutates its inputs.
// The returned candidate must be validated before it is persisted.
func Merge(current models.Settings, patch models.SettingsPatch) (models.Settings, error) {
	merged := current
	incoming := patch.Overlay()

	for _, sec := range schema.Sections() {
		if !patch.Has(sec.Name) {
			continue
		}

		for _, f := range sec.Fields {
			value := f.Get(&incoming)

			if !f.Secret {
				f.Set(&merged, value)
				continue
			}

			if value == models.Sentinel {
				if f.Get(&current) == "" {
					return models.Settings{}, &UnmaskError{Section: sec.Name, Field: f.Name}
				}
				// keep the stored secret
				continue
			}

			f.Set(&merged, value)
		}
	}

	return merged, nil
}
