// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownSection  = errors.New("unknown settings section")
)

// Rule identifiers reported in [Violation.Rule].
const (
	// RuleRequired: the field must be non-empty because its section is active.
	RuleRequired = "required"

	// RuleInteger: the field must parse as an integer greater than or
	// equal to one.
	RuleInteger = "integer_min_1"

	// RuleURI: the field must parse as a URI with a scheme and a host.
	RuleURI = "uri"
)

// Violation is a single per-field rule violation. It carries only the field
// coordinates and the violated rule, never the submitted value, so a
// violation can be logged and returned to the caller without leaking secrets.
type Violation struct {
	Section string `json:"section"`
	Field   string `json:"field"`
	Rule    string `json:"rule"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s.%s: %s", v.Section, v.Field, v.Rule)
}

// Violations is the ordered list of violations found in a settings
// candidate. It implements error so it can travel through the usual error
// returns; match it with [errors.As].
type Violations []Violation

func (v Violations) Error() string {
	parts := make([]string, 0, len(v))
	for _, violation := range v {
		parts = append(parts, violation.String())
	}

	return "settings validation failed: " + strings.Join(parts, "; ")
}
