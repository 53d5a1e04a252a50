// Pointsboard - Team Points Tracking Dashboard Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pointsboard

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tomtom215/pointsboard/internal/auth"
	"github.com/tomtom215/pointsboard/internal/metrics"
)

// Router assembles the handlers and middleware into the HTTP surface.
type Router struct {
	handler    *Handler
	authMW     *auth.Middleware
	middleware *Middleware
}

// NewRouter creates the router.
func NewRouter(handler *Handler, authMW *auth.Middleware, middleware *Middleware) *Router {
	return &Router{
		handler:    handler,
		authMW:     authMW,
		middleware: middleware,
	}
}

// Setup configures all routes. Read endpoints are public by design; only
// the point allocation write passes through the auth gate.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.middleware.CORS()) // global so OPTIONS preflight always answers
	r.Use(RequestLogger)

	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(PrometheusMetrics)

		r.Get("/health", router.handler.Health)

		// Strictest limiter on login for brute force prevention.
		r.With(router.middleware.RateLimitLogin()).Post("/login", router.handler.Login)

		r.Group(func(r chi.Router) {
			r.Use(router.middleware.RateLimit())

			r.Get("/dashboard", router.handler.Dashboard)
			r.Get("/teams", router.handler.Teams)
			r.Get("/team/{id}", router.handler.TeamByID)
			r.Get("/player/{id}", router.handler.PlayerBreakdown)
			r.Get("/activities", router.handler.Activities)
			r.Get("/players/team/{teamId}", router.handler.PlayersByTeam)

			r.With(router.authMW.RequireAuth).Post("/points", router.handler.UpsertPoints)
		})
	})

	return r
}
