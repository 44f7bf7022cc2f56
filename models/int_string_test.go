// SPDX-License-Identifier: Apache-2.0

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntString_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want IntString
	}{
		{"json number", `15`, "15"},
		{"json zero", `0`, "0"},
		{"negative number", `-3`, "-3"},
		{"json string", `"15"`, "15"},
		{"non numeric string", `"soon"`, "soon"},
		{"empty string", `""`, ""},
		{"null", `null`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got IntString
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIntString_UnmarshalJSONRejectsOtherShapes(t *testing.T) {
	for _, in := range []string{`1.5`, `true`, `{}`, `[]`} {
		var got IntString
		assert.Error(t, json.Unmarshal([]byte(in), &got), "input %s", in)
	}
}

func TestIntString_MarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		value IntString
		want  string
	}{
		{"numeric emits number", "15", `15`},
		{"zero emits number", "0", `0`},
		{"non numeric emits string", "soon", `"soon"`},
		{"empty emits empty string", "", `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestIntString_Int(t *testing.T) {
	n, err := IntString("15").Int()
	require.NoError(t, err)
	assert.Equal(t, 15, n)

	_, err = IntString("soon").Int()
	assert.Error(t, err)

	_, err = IntString("").Int()
	assert.Error(t, err)
}

func TestGitSettings_PollIntervalDecodesFromNumberAndString(t *testing.T) {
	var fromNumber GitSettings
	require.NoError(t, json.Unmarshal([]byte(`{"pollIntervalMinutes": 15}`), &fromNumber))

	var fromString GitSettings
	require.NoError(t, json.Unmarshal([]byte(`{"pollIntervalMinutes": "15"}`), &fromString))

	assert.Equal(t, fromNumber, fromString)
	assert.Equal(t, IntString("15"), fromNumber.PollIntervalMinutes)
}
