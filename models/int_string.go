// SPDX-License-Identifier: Apache-2.0

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// IntString is a string-backed numeric field that accepts both JSON numbers
// and JSON strings on input. The zero value ("") means "not set".
//
// The raw text is preserved as submitted so that range and format checks are
// performed by the validator, not by the JSON decoder.
type IntString string

// UnmarshalJSON implements [json.Unmarshaler]. It accepts a JSON string,
// a JSON integer, or null (which leaves the value empty).
func (i *IntString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*i = ""
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*i = IntString(s)
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("value is neither a string nor an integer: %w", err)
	}
	*i = IntString(strconv.FormatInt(n, 10))

	return nil
}

// MarshalJSON implements [json.Marshaler]. A value that parses as an integer
// is emitted as a JSON number; anything else (including the empty value) is
// emitted as a JSON string.
func (i IntString) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(i), 10, 64); err == nil {
		return []byte(strconv.FormatInt(n, 10)), nil
	}

	return json.Marshal(string(i))
}

// Int parses the value as a base-10 integer.
func (i IntString) Int() (int, error) {
	return strconv.Atoi(string(i))
}
