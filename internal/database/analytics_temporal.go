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

// dayNames maps the Monday-first weekday index to its display name.
var dayNames = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// GetDayOfWeekCounts returns the tweet count per weekday over the filtered
// set, always in calendar order Monday through Sunday. Days with no matching
// tweets appear with a zero count so the bar chart keeps a stable axis.
func (db *DB) GetDayOfWeekCounts(ctx context.Context, filter TweetFilter) ([]models.DayOfWeekCount, error) {
	whereClause, args := buildFilterWhereClause(filter)

	query := fmt.Sprintf(`
		SELECT day_of_week, COUNT(*) AS tweet_count
		FROM tweets%s
		GROUP BY day_of_week
		ORDER BY day_of_week`, whereClause)

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query day-of-week counts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := make([]int, 7)
	for rows.Next() {
		var day int
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, fmt.Errorf("failed to scan day-of-week row: %w", err)
		}
		if day < 0 || day > 6 {
			return nil, fmt.Errorf("day_of_week out of range: %d", day)
		}
		counts[day] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("day-of-week rows iteration: %w", err)
	}

	results := make([]models.DayOfWeekCount, 7)
	for day := 0; day < 7; day++ {
		results[day] = models.DayOfWeekCount{
			DayOfWeek: day,
			DayName:   dayNames[day],
			Count:     counts[day],
		}
	}
	return results, nil
}
