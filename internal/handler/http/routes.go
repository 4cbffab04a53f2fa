// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Group(func(r chi.Router) {
		r.Post("/api/encode", h.encode)
		r.Post("/api/decode", h.decode)
		r.Post("/api/capacity", h.capacity)
	})

	router.Get("/api/version/", h.getServerVersion)

	router.MethodNotAllowed(hideMethod)

	return router
}
