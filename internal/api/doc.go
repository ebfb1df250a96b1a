// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

// Package api provides the HTTP surface of Sentigraph on the Chi router.
//
// Every analytics endpoint follows the same flow: parse and validate the
// filter from query parameters, recompute the requested view with fresh
// aggregate queries, and wrap the result in the standard APIResponse
// envelope with query timing metadata. Responses are never served from a
// cache; identical requests against the loaded dataset always agree
// because they run the same SQL over the same immutable table.
//
// File organization:
//   - handlers.go: Handler construction and shared state
//   - handlers_helpers.go: response writing, validation, param parsing
//   - handlers_health.go: liveness and readiness probes
//   - handlers_core.go: dataset stats and filter options
//   - handlers_analytics.go: the five analytics views
//   - handlers_charts.go: chart-specification endpoints
//   - analytics_executor.go: shared parse-validate-query-respond flow
//   - chi_middleware.go: CORS, rate limiting, request ID, metrics
//   - chi_router.go: route table
package api
