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
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(h.authenticate)

		// routes without authorization
		r.Get("/version", h.getServerVersion)
		r.Post("/users", h.register)
		r.Post("/users/sessions", h.signIn)

		// routes for any signed-in user
		r.Group(func(r chi.Router) {
			r.Use(requireUser)
			r.Delete("/users/sessions", h.signOut)
			r.Get("/users/protected", h.protected)
			r.Get("/secrets", h.listSecrets)
		})

		// admin-only routes
		r.Group(func(r chi.Router) {
			r.Use(requireAdmin)
			r.Get("/users", h.listUsers)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
