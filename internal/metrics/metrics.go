// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

// Package metrics provides Prometheus instrumentation for Sentigraph.
//
// Exposed at /metrics in Prometheus text format. Covered concerns:
//   - HTTP request counts and latency per endpoint
//   - DuckDB aggregate query latency per view
//   - Dataset ingest counters (rows loaded, rows dropped, load duration)
//   - View computations per filter state shape
//
// All recording helpers are safe for concurrent use.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentigraph_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sentigraph_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	// Aggregate query metrics

	ViewQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sentigraph_view_query_duration_seconds",
			Help:    "Duration of DuckDB aggregate queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"view"},
	)

	ViewQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentigraph_view_query_errors_total",
			Help: "Total number of failed aggregate queries",
		},
		[]string{"view"},
	)

	ViewsComputedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sentigraph_views_computed_total",
			Help: "Total number of full view recomputations",
		},
	)

	// Ingest metrics

	IngestRowsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sentigraph_ingest_rows_total",
			Help: "Rows loaded into the enriched table at startup",
		},
	)

	IngestRowsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sentigraph_ingest_rows_dropped_total",
			Help: "Malformed rows dropped during load (drop policy only)",
		},
	)

	IngestDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sentigraph_ingest_duration_seconds",
			Help: "Wall time of the startup load-and-enrich pass",
		},
	)
)

// RecordHTTPRequest records one completed HTTP request.
func RecordHTTPRequest(method, endpoint string, statusCode int, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration)
}

// RecordViewQuery records one aggregate query execution.
func RecordViewQuery(view string, duration time.Duration, err error) {
	ViewQueryDuration.WithLabelValues(view).Observe(duration.Seconds())
	if err != nil {
		ViewQueryErrors.WithLabelValues(view).Inc()
	}
}

// RecordIngest records the startup load pass.
func RecordIngest(rows, dropped int, duration time.Duration) {
	IngestRowsTotal.Add(float64(rows))
	IngestRowsDropped.Add(float64(dropped))
	IngestDuration.Set(duration.Seconds())
}
