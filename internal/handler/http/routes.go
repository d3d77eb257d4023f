// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artem Avdeenko

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/session", h.openSession)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.withAuth)
		r.Get("/api/documents/{docID}", h.getDocument)
		r.Get("/api/documents/{docID}/elements/{elementID}", h.getElement)
		r.Get("/api/documents/{docID}/sync", h.sync)
	})

	return router
}
