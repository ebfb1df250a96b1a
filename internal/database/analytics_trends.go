// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/sentigraph/internal/models"
)

// GetTrend returns the tweet count per calendar day over the filtered set,
// ordered by day ascending. Days with no matching tweets produce no point.
func (db *DB) GetTrend(ctx context.Context, filter TweetFilter) ([]models.TrendPoint, error) {
	whereClause, args := buildFilterWhereClause(filter)

	// DATE_TRUNC keeps the bucket a timestamp, which scans cleanly into
	// time.Time. The date is rendered to YYYY-MM-DD at the model boundary.
	query := fmt.Sprintf(`
		SELECT DATE_TRUNC('day', created_at) AS day, COUNT(*) AS tweet_count
		FROM tweets%s
		GROUP BY day
		ORDER BY day`, whereClause)

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trend: %w", err)
	}
	defer func() { _ = rows.Close() }()

	points := []models.TrendPoint{}
	for rows.Next() {
		var day time.Time
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("failed to scan trend row: %w", err)
		}
		points = append(points, models.TrendPoint{
			Date:  day.Format("2006-01-02"),
			Count: count,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("trend rows iteration: %w", err)
	}

	return points, nil
}
