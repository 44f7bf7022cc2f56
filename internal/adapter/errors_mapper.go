// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/ndanilin/photarium/internal/settings"
	"github.com/ndanilin/photarium/internal/validators"
)

// settingsErrorBody mirrors the JSON error shape of the settings endpoints.
type settingsErrorBody struct {
	Error      string                 `json:"error"`
	Section    string                 `json:"section"`
	Field      string                 `json:"field"`
	Violations []validators.Violation `json:"violations"`
}

// mapHTTPError converts a non-2xx settings response back into the engine's
// own error taxonomy, so adapter callers handle failures exactly like
// in-process callers of the service.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var body settingsErrorBody
	_ = json.Unmarshal(resp.Body(), &body)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		if body.Section != "" && body.Field != "" {
			return &settings.UnmaskError{Section: body.Section, Field: body.Field}
		}
		return fmt.Errorf("%w: %s", ErrBadRequest, body.Error)

	case http.StatusUnprocessableEntity:
		if len(body.Violations) > 0 {
			return validators.Violations(body.Violations)
		}
		return fmt.Errorf("%w: %s", ErrBadRequest, body.Error)

	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body.Error)

	default:
		message := body.Error
		if message == "" {
			message = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
	}
}
