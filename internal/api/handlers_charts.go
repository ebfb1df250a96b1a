// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/sentigraph/internal/database"
	"github.com/tomtom215/sentigraph/internal/models"
)

// Charts returns the full set of chart specifications for one filter
// state: views recomputed fresh, then bound to declarative chart specs the
// rendering layer can draw without further queries.
func (h *Handler) Charts(w http.ResponseWriter, r *http.Request) {
	NewAnalyticsQueryExecutor(h).Execute(w, r,
		func(ctx context.Context, filter database.TweetFilter) (interface{}, error) {
			views, err := h.db.GetViews(ctx, filter, h.networkBuilder())
			if err != nil {
				return nil, err
			}
			return models.BuildChartSpecs(views), nil
		})
}

// chartNames maps the view name in the URL to the chart type it renders as.
var chartNames = map[string]string{
	"trend":         models.ChartTypeLine,
	"sentiment-map": models.ChartTypeChoropleth,
	"correlation":   models.ChartTypeHeatmap,
	"day-of-week":   models.ChartTypeBar,
	"network":       models.ChartTypeNetwork,
}

// Chart returns the single chart specification for the view named in the
// URL, e.g. /api/v1/charts/trend.
func (h *Handler) Chart(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "chartName")

	chartType, ok := chartNames[name]
	if !ok {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR",
			fmt.Sprintf("unknown chart %q", sanitizeLogValue(name)), nil)
		return
	}

	if chartType == models.ChartTypeNetwork && !h.networkAvailable() {
		respondError(w, http.StatusNotFound, "NOT_ENABLED",
			"Network view requires graph.enabled and a dataset with source/target columns", nil)
		return
	}

	NewAnalyticsQueryExecutor(h).Execute(w, r,
		func(ctx context.Context, filter database.TweetFilter) (interface{}, error) {
			views, err := h.db.GetViews(ctx, filter, h.networkBuilder())
			if err != nil {
				return nil, err
			}
			for _, spec := range models.BuildChartSpecs(views) {
				if spec.Type == chartType {
					return spec, nil
				}
			}
			// Unreachable for the validated types; network availability
			// was checked above.
			return nil, fmt.Errorf("chart type %s not built", chartType)
		})
}
