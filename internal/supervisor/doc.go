// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

// Package supervisor builds the suture supervision tree that keeps the
// HTTP service running for the process lifetime.
//
// Sentigraph has a single supervised layer: the API. The dataset load
// happens before the tree starts, so a restarted HTTP service always comes
// back over a fully loaded database.
package supervisor
