// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/sentigraph/internal/models"
)

// HealthStatus is the payload of the health endpoints.
type HealthStatus struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	TotalTweets   int    `json:"total_tweets,omitempty"`
	NetworkView   bool   `json:"network_view"`
}

// Health reports overall service health including dataset size.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	stats, err := h.db.GetStats(r.Context())
	if err != nil {
		respondError(w, http.StatusServiceUnavailable, "DATABASE_ERROR", "Database unavailable", err)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: HealthStatus{
			Status:        "healthy",
			UptimeSeconds: int64(time.Since(h.startTime).Seconds()),
			TotalTweets:   stats.TotalTweets,
			NetworkView:   h.networkAvailable(),
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthLive is the liveness probe. It answers as long as the process
// serves HTTP, without touching the database.
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     HealthStatus{Status: "alive", UptimeSeconds: int64(time.Since(h.startTime).Seconds())},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// HealthReady is the readiness probe. Ready means the database connection
// answers, which implies the startup load completed.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, "DATABASE_ERROR", "Database not ready", err)
		return
	}
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     HealthStatus{Status: "ready", UptimeSeconds: int64(time.Since(h.startTime).Seconds())},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}
