// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

// Package database wraps DuckDB and provides the aggregate queries behind
// every analytics view.
//
// The enriched tweet table is written exactly once, during startup ingest,
// and is read-only for the rest of the process lifetime. All per-request
// work is SQL aggregation over that table with the caller's filter compiled
// into a WHERE clause. Results are never cached between requests.
//
// File organization:
//   - database.go: connection lifecycle, schema, the one-time bulk load
//   - filter.go: TweetFilter and WHERE clause construction
//   - analytics_trends.go: daily tweet counts
//   - analytics_sentiment.go: mean polarity per country
//   - analytics_correlation.go: pairwise correlation of numeric features
//   - analytics_temporal.go: day-of-week distribution
//   - analytics_network.go: source/target interaction edges
//   - views.go: composition of the above into the full view set
package database
