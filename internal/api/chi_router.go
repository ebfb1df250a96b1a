// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router wires handlers and middleware into the Chi route table.
type Router struct {
	handler    *Handler
	middleware *ChiMiddleware
}

// NewRouter creates the router for a constructed handler.
func NewRouter(handler *Handler) *Router {
	return &Router{
		handler:    handler,
		middleware: NewChiMiddleware(&handler.cfg.API),
	}
}

// Setup builds the complete route table.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(RequestIDWithLogging())
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.middleware.CORS())

	// Health endpoints stay outside the rate limiter so monitoring can
	// probe freely.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// Data endpoints.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.middleware.RateLimit())
		r.Use(PrometheusMetrics())

		r.Get("/stats", router.handler.Stats)
		r.Get("/filters", router.handler.Filters)
		r.Get("/views", router.handler.Views)

		r.Route("/analytics", func(r chi.Router) {
			r.Get("/trend", router.handler.AnalyticsTrend)
			r.Get("/sentiment-map", router.handler.AnalyticsSentimentMap)
			r.Get("/correlation", router.handler.AnalyticsCorrelation)
			r.Get("/day-of-week", router.handler.AnalyticsDayOfWeek)
			r.Get("/network", router.handler.AnalyticsNetwork)
		})

		r.Route("/charts", func(r chi.Router) {
			r.Get("/", router.handler.Charts)
			r.Get("/{chartName}", router.handler.Chart)
		})
	})

	// Prometheus metrics, unwrapped.
	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Endpoint not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	})

	return r
}
