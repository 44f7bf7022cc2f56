// SPDX-License-Identifier: Apache-2.0

package adapter

import "errors"

// Transport-level sentinel errors mapped from HTTP status codes by
// mapHTTPError. Match with [errors.Is].
var (
	// ErrBadRequest is returned for a 400 response that does not carry an
	// unmask rejection body.
	ErrBadRequest = errors.New("bad request")

	// ErrInternalServerError is returned for a 500 response, typically a
	// storage failure on the server side.
	ErrInternalServerError = errors.New("internal server error")
)
