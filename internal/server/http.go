// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ndanilin/photarium/internal/config"
	"github.com/ndanilin/photarium/internal/logger"
)

type httpServer struct {
	server *http.Server
}

func newHTTPServer(router *chi.Mux, cfg config.Server, log *logger.Logger) *httpServer {
	log.Info().Str("address", cfg.HTTPAddress).Msg("creating HTTP server")

	return &httpServer{
		server: &http.Server{
			Addr:         cfg.HTTPAddress,
			Handler:      router,
			ReadTimeout:  cfg.RequestTimeout,
			WriteTimeout: cfg.RequestTimeout,
		},
	}
}

func (h *httpServer) RunServer() {
	if err := h.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fmt.Printf("HTTP server ListenAndServe: %v\n", err)
	}
}

func (h *httpServer) Shutdown() {
	if err := h.server.Shutdown(context.Background()); h.server != nil && err != nil {
		fmt.Printf("HTTP server Shutdown: %v\n", err)
	}
}
