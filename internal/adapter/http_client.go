// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/ndanilin/photarium/models"
)

// HTTPClientConfig configures the HTTP settings adapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpSettingsAdapter struct {
	client *resty.Client
}

// NewHTTPSettingsAdapter constructs a [SettingsAdapter] talking to the
// settings service over HTTP/REST.
func NewHTTPSettingsAdapter(cfg HTTPClientConfig) SettingsAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpSettingsAdapter{client: cli}
}

func (h *httpSettingsAdapter) GetSettings(ctx context.Context) (models.Settings, error) {
	var fetched models.Settings

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&fetched).
		Get("/api/settings")
	if err != nil {
		return models.Settings{}, fmt.Errorf("get settings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Settings{}, err
	}

	return fetched, nil
}

func (h *httpSettingsAdapter) UpdateSettings(ctx context.Context, patch models.SettingsPatch) (models.Settings, error) {
	var updated models.Settings

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(patch).
		SetResult(&updated).
		Put("/api/settings")
	if err != nil {
		return models.Settings{}, fmt.Errorf("update settings request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Settings{}, err
	}

	return updated, nil
}
