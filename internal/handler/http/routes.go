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
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// service routes
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		r.Post("/payouts", h.createPayout(h.strategies.APIKey))
		r.Post("/payouts/client", h.createPayout(h.strategies.PublishableKey))
		r.Post("/dashboard/payouts", h.createPayout(h.strategies.Dashboard))

		r.Get("/payouts/retrieve", h.placeholder(payoutRetrieve))
		r.Post("/payouts/update", h.placeholder(payoutUpdate))
		r.Post("/payouts/reverse", h.placeholder(payoutReverse))
		r.Post("/payouts/cancel", h.placeholder(payoutCancel))
		r.Get("/payouts/accounts", h.placeholder(payoutAccounts))
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
