// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"errors"
	"fmt"
)

// ErrCannotUnmaskEmptySecret is returned by [Merge] when an incoming secret
// field carries the sentinel but the stored field is empty: there is no
// previous value to keep, so "leave unchanged" cannot be honoured.
// Match with [errors.Is]; the concrete (section, field) pair is carried by
// [UnmaskError] and recovered with [errors.As].
var ErrCannotUnmaskEmptySecret = errors.New("cannot keep a secret unchanged: no value was ever stored")

// UnmaskError identifies the secret field whose sentinel could not be
// resolved against the stored settings. The error message never contains a
// field value, only the field coordinates.
type UnmaskError struct {
	Section string
	Field   string
}

func (e *UnmaskError) Error() string {
	return fmt.Sprintf("%s.%s: %v", e.Section, e.Field, ErrCannotUnmaskEmptySecret)
}

func (e *UnmaskError) Unwrap() error {
	return ErrCannotUnmaskEmptySecret
}
