// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

package api

import (
	"net/http"
	"time"
)

// Stats returns summary statistics of the loaded dataset.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	stats, err := h.db.GetStats(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query dataset stats", err)
		return
	}
	respondData(w, stats, time.Since(start))
}

// Filters returns the selectable filter values present in the dataset,
// used to populate dashboard dropdowns.
func (h *Handler) Filters(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	opts, err := h.db.GetFilterOptions(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to query filter options", err)
		return
	}
	respondData(w, opts, time.Since(start))
}
