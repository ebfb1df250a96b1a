// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/tomtom215/sentigraph/internal/database"
	"github.com/tomtom215/sentigraph/internal/models"
)

// filterRequest carries the parsed filter query parameters through
// validation. All parameters are optional; combined parameters narrow the
// tweet set as an intersection.
type filterRequest struct {
	Month     *int   `validate:"omitempty,min=1,max=12"`
	DayOfWeek *int   `validate:"omitempty,min=0,max=6"`
	DayType   string `validate:"omitempty,oneof=Weekday Weekend"`
}

// parseTweetFilter extracts and validates the filter from query parameters.
// Returns a models.APIError on malformed or out-of-range values; unknown
// query parameters are ignored.
func parseTweetFilter(r *http.Request) (database.TweetFilter, *models.APIError) {
	var req filterRequest
	q := r.URL.Query()

	if raw := q.Get("month"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return database.TweetFilter{}, &models.APIError{
				Code:    "VALIDATION_ERROR",
				Message: "month must be an integer",
				Details: map[string]interface{}{"field": "month", "value": raw},
			}
		}
		req.Month = &v
	}
	if raw := q.Get("day_of_week"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return database.TweetFilter{}, &models.APIError{
				Code:    "VALIDATION_ERROR",
				Message: "day_of_week must be an integer",
				Details: map[string]interface{}{"field": "day_of_week", "value": raw},
			}
		}
		req.DayOfWeek = &v
	}
	req.DayType = q.Get("day_type")

	if apiErr := validateRequest(&req); apiErr != nil {
		return database.TweetFilter{}, apiErr
	}

	filter := database.TweetFilter{
		Month:     req.Month,
		DayOfWeek: req.DayOfWeek,
	}
	if req.DayType != "" {
		dt := req.DayType
		filter.DayType = &dt
	}
	return filter, nil
}

// AnalyticsQueryFunc executes one aggregate query for a validated filter.
type AnalyticsQueryFunc func(ctx context.Context, filter database.TweetFilter) (interface{}, error)

// AnalyticsQueryExecutor encapsulates the shared flow of every analytics
// handler: parse the filter, validate it, run the aggregate query with
// timing, and respond in the standard envelope. There is deliberately no
// caching layer in this flow; every request recomputes its view.
type AnalyticsQueryExecutor struct {
	handler *Handler
}

// NewAnalyticsQueryExecutor creates an executor bound to the handler.
func NewAnalyticsQueryExecutor(h *Handler) *AnalyticsQueryExecutor {
	return &AnalyticsQueryExecutor{handler: h}
}

// Execute runs one analytics query end to end and writes the response.
func (e *AnalyticsQueryExecutor) Execute(w http.ResponseWriter, r *http.Request, queryFunc AnalyticsQueryFunc) {
	filter, apiErr := parseTweetFilter(r)
	if apiErr != nil {
		respondAPIError(w, http.StatusBadRequest, apiErr)
		return
	}

	start := time.Now()
	result, err := queryFunc(r.Context(), filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to execute query", err)
		return
	}

	respondData(w, result, time.Since(start))
}
