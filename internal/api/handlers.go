// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

package api

import (
	"time"

	"github.com/tomtom215/sentigraph/internal/config"
	"github.com/tomtom215/sentigraph/internal/database"
	"github.com/tomtom215/sentigraph/internal/graph"
)

// Handler holds the shared state behind all HTTP handlers. The database is
// loaded before the handler is constructed and stays read-only afterward.
type Handler struct {
	db        *database.DB
	cfg       *config.Config
	layout    *graph.Layout
	startTime time.Time
}

// NewHandler creates a handler over the loaded database. The layout is nil
// when the network view is disabled.
func NewHandler(db *database.DB, cfg *config.Config) *Handler {
	h := &Handler{
		db:        db,
		cfg:       cfg,
		startTime: time.Now(),
	}
	if cfg.Graph.Enabled {
		h.layout = graph.NewLayout(cfg.Graph.LayoutIterations)
	}
	return h
}

// networkAvailable reports whether the network view can be served: the
// feature must be enabled and the dataset must carry source/target columns.
func (h *Handler) networkAvailable() bool {
	return h.layout != nil && h.db.HasEdges()
}

// networkBuilder returns the layout as a database.NetworkBuilder, or nil
// when the network view is unavailable.
func (h *Handler) networkBuilder() database.NetworkBuilder {
	if !h.networkAvailable() {
		return nil
	}
	return h.layout
}
