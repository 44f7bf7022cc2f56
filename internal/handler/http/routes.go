// SPDX-License-Identifier: Apache-2.0

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	router.Group(func(r chi.Router) {
		r.Get("/api/settings", h.getSettings)
		r.Put("/api/settings", h.updateSettings)
	})

	return router
}
