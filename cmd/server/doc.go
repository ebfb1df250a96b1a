// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

// Command server runs the Sentigraph analytics backend.
//
// Startup sequence:
//  1. Load configuration (defaults, optional YAML file, environment)
//  2. Parse the tweet CSV, enrich every row, score sentiment
//  3. Bulk-load the enriched dataset into DuckDB
//  4. Serve the analytics API under a suture supervision tree
//
// The dataset is loaded exactly once; every API request recomputes its
// aggregates from the loaded table.
//
// Minimal invocation:
//
//	DATASET_PATH=tweets.csv ./server
//
// With the interaction network view (requires source/target CSV columns):
//
//	DATASET_PATH=tweets.csv GRAPH_ENABLED=true ./server
package main
