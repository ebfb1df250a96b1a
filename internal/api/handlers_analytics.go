// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

package api

import (
	"context"
	"net/http"

	"github.com/tomtom215/sentigraph/internal/database"
)

// AnalyticsTrend returns the daily tweet count series for the filter.
func (h *Handler) AnalyticsTrend(w http.ResponseWriter, r *http.Request) {
	NewAnalyticsQueryExecutor(h).Execute(w, r,
		func(ctx context.Context, filter database.TweetFilter) (interface{}, error) {
			return h.db.GetTrend(ctx, filter)
		})
}

// AnalyticsSentimentMap returns mean polarity per country, the data behind
// the choropleth.
func (h *Handler) AnalyticsSentimentMap(w http.ResponseWriter, r *http.Request) {
	NewAnalyticsQueryExecutor(h).Execute(w, r,
		func(ctx context.Context, filter database.TweetFilter) (interface{}, error) {
			return h.db.GetCountrySentiment(ctx, filter)
		})
}

// AnalyticsCorrelation returns the numeric feature correlation matrix.
// Cells that are undefined for the filtered set come back as JSON null.
func (h *Handler) AnalyticsCorrelation(w http.ResponseWriter, r *http.Request) {
	NewAnalyticsQueryExecutor(h).Execute(w, r,
		func(ctx context.Context, filter database.TweetFilter) (interface{}, error) {
			return h.db.GetCorrelation(ctx, filter)
		})
}

// AnalyticsDayOfWeek returns tweet counts per weekday, Monday first.
func (h *Handler) AnalyticsDayOfWeek(w http.ResponseWriter, r *http.Request) {
	NewAnalyticsQueryExecutor(h).Execute(w, r,
		func(ctx context.Context, filter database.TweetFilter) (interface{}, error) {
			return h.db.GetDayOfWeekCounts(ctx, filter)
		})
}

// AnalyticsNetwork returns the positioned interaction graph. Responds with
// NOT_ENABLED when the feature is off or the dataset has no edge columns.
func (h *Handler) AnalyticsNetwork(w http.ResponseWriter, r *http.Request) {
	if !h.networkAvailable() {
		respondError(w, http.StatusNotFound, "NOT_ENABLED",
			"Network view requires graph.enabled and a dataset with source/target columns", nil)
		return
	}

	NewAnalyticsQueryExecutor(h).Execute(w, r,
		func(ctx context.Context, filter database.TweetFilter) (interface{}, error) {
			edges, err := h.db.GetInteractionEdges(ctx, filter)
			if err != nil {
				return nil, err
			}
			return h.layout.Build(edges), nil
		})
}

// Views returns the full view set for one filter state in a single
// response, the way a dashboard refreshes all panels at once.
func (h *Handler) Views(w http.ResponseWriter, r *http.Request) {
	NewAnalyticsQueryExecutor(h).Execute(w, r,
		func(ctx context.Context, filter database.TweetFilter) (interface{}, error) {
			return h.db.GetViews(ctx, filter, h.networkBuilder())
		})
}
