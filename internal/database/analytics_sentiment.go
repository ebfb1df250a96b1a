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

// GetCountrySentiment returns the mean polarity and tweet count per country
// over the filtered set, ordered by country name for stable output. Feeds
// the choropleth, which matches regions by country name.
func (db *DB) GetCountrySentiment(ctx context.Context, filter TweetFilter) ([]models.CountrySentiment, error) {
	whereClause, args := buildFilterWhereClause(filter)

	query := fmt.Sprintf(`
		SELECT country, AVG(polarity) AS avg_polarity, COUNT(*) AS tweet_count
		FROM tweets%s
		GROUP BY country
		ORDER BY country`, whereClause)

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query country sentiment: %w", err)
	}
	defer func() { _ = rows.Close() }()

	results := []models.CountrySentiment{}
	for rows.Next() {
		var cs models.CountrySentiment
		if err := rows.Scan(&cs.Country, &cs.AvgPolarity, &cs.TweetCount); err != nil {
			return nil, fmt.Errorf("failed to scan country sentiment row: %w", err)
		}
		results = append(results, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("country sentiment rows iteration: %w", err)
	}

	return results, nil
}
