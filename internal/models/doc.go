// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

// Package models defines the shared data types for Sentigraph.
//
// The package is organized into domain-specific files:
//   - tweet.go: raw and enriched tweet records plus the derived feature set
//   - views.go: aggregate projections (trend, sentiment map, correlation,
//     day-of-week counts, network graph) recomputed per filter change
//   - charts.go: declarative chart specifications consumed by the external
//     rendering layer
//   - api_responses.go: the APIResponse envelope used by every HTTP endpoint
//
// Types here carry no behavior beyond small convenience accessors; all
// computation lives in internal/enrich, internal/database, and internal/graph.
package models
