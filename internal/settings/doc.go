// SPDX-License-Identifier: Apache-2.0

// Package settings implements the pure core of the secure settings engine:
// redaction of secret fields for safe exposure and sentinel-aware merging of
// partial updates into the stored aggregate.
//
// Both operations are driven entirely by the field schema
// (github.com/ndanilin/photarium/internal/schema) and never touch storage.
package settings
