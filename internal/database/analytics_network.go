// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/sentigraph/internal/models"
)

// GetInteractionEdges returns the directed source-to-target interaction
// edges over the filtered set, weighted by tweet count. Rows missing either
// endpoint are excluded. Ordering is (source, target) so the downstream
// layout sees a deterministic edge list.
func (db *DB) GetInteractionEdges(ctx context.Context, filter TweetFilter) ([]models.NetworkEdge, error) {
	conditions, args := buildFilterConditions(filter)
	conditions = append(conditions, "source <> ''", "target <> ''")

	whereClause := " WHERE " + conditions[0]
	for _, cond := range conditions[1:] {
		whereClause += " AND " + cond
	}

	query := fmt.Sprintf(`
		SELECT source, target, COUNT(*) AS weight
		FROM tweets%s
		GROUP BY source, target
		ORDER BY source, target`, whereClause)

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query interaction edges: %w", err)
	}
	defer func() { _ = rows.Close() }()

	edges := []models.NetworkEdge{}
	for rows.Next() {
		var e models.NetworkEdge
		if err := rows.Scan(&e.Source, &e.Target, &e.Weight); err != nil {
			return nil, fmt.Errorf("failed to scan edge row: %w", err)
		}
		edges = append(edges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("edge rows iteration: %w", err)
	}

	return edges, nil
}
