// SPDX-License-Identifier: Apache-2.0

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ndanilin/photarium/internal/logger"
	"github.com/ndanilin/photarium/internal/settings"
	"github.com/ndanilin/photarium/internal/validators"
	"github.com/ndanilin/photarium/models"
)

// SettingsErrorResponse is the JSON error body of the settings endpoints.
// It carries enough structure for the caller to correct the request and
// never contains a submitted or stored field value.
type SettingsErrorResponse struct {
	Error      string                 `json:"error"`
	Section    string                 `json:"section,omitempty"`
	Field      string                 `json:"field,omitempty"`
	Violations []validators.Violation `json:"violations,omitempty"`
}

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	redacted := h.services.SettingsService.GetSettings(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(redacted); err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to encode settings response")
	}
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	decoder := json.NewDecoder(r.Body)
	// only the four fixed sections exist; any other key is a caller mistake
	decoder.DisallowUnknownFields()

	var patch models.SettingsPatch
	if err := decoder.Decode(&patch); err != nil {
		log.Err(err).Msg("invalid settings patch JSON")
		writeSettingsError(w, http.StatusBadRequest, SettingsErrorResponse{Error: "invalid JSON was passed"})
		return
	}

	updated, err := h.services.SettingsService.UpdateSettings(ctx, patch)
	if err != nil {
		var unmaskErr *settings.UnmaskError
		var violations validators.Violations

		switch {
		case errors.As(err, &unmaskErr):
			log.Err(err).Msg("sentinel submitted for a secret that was never set")
			writeSettingsError(w, http.StatusBadRequest, SettingsErrorResponse{
				Error:   "cannot keep a secret unchanged: no value was ever stored",
				Section: unmaskErr.Section,
				Field:   unmaskErr.Field,
			})
			return
		case errors.As(err, &violations):
			log.Err(err).Int("violations", len(violations)).Msg("settings patch failed validation")
			writeSettingsError(w, http.StatusUnprocessableEntity, SettingsErrorResponse{
				Error:      "settings validation failed",
				Violations: violations,
			})
			return
		default:
			log.Err(err).Msg("unexpected error occurred during settings update")
			writeSettingsError(w, http.StatusInternalServerError, SettingsErrorResponse{
				Error: http.StatusText(http.StatusInternalServerError),
			})
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(updated); err != nil {
		log.Err(err).Msg("failed to encode updated settings response")
	}
}

func writeSettingsError(w http.ResponseWriter, status int, body SettingsErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
