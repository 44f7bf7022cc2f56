// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"github.com/ndanilin/photarium/internal/handler/http"
	"github.com/ndanilin/photarium/internal/logger"
	"github.com/ndanilin/photarium/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}
}
