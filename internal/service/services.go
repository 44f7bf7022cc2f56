// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"github.com/ndanilin/photarium/internal/logger"
	"github.com/ndanilin/photarium/internal/store"
	"github.com/ndanilin/photarium/internal/validators"
)

type Services struct {
	SettingsService SettingsService
}

func NewServices(ctx context.Context, storages *store.Storages, logger *logger.Logger) (*Services, error) {
	settingsService, err := NewSettingsService(ctx, storages.SettingsRepository, validators.NewSettingsValidator(), logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		SettingsService: settingsService,
	}, nil
}
