// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tomtom215/sentigraph/internal/metrics"
	"github.com/tomtom215/sentigraph/internal/models"
)

// NetworkBuilder lays out aggregated interaction edges as a positioned
// graph. Implemented by the graph package; nil disables the network view.
type NetworkBuilder interface {
	Build(edges []models.NetworkEdge) *models.NetworkGraph
}

// GetViews recomputes the full view set for one filter state. Every call
// runs the aggregate queries fresh; nothing is reused between calls, so two
// identical calls against the same data always agree.
//
// The network view is included only when builder is non-nil and the dataset
// carried source/target columns.
func (db *DB) GetViews(ctx context.Context, filter TweetFilter, builder NetworkBuilder) (*models.Views, error) {
	views := &models.Views{}

	var err error
	if views.Trend, err = db.timedTrend(ctx, filter); err != nil {
		return nil, err
	}
	if views.CountrySentiment, err = db.timedCountrySentiment(ctx, filter); err != nil {
		return nil, err
	}
	if views.Correlation, err = db.timedCorrelation(ctx, filter); err != nil {
		return nil, err
	}
	if views.DayOfWeek, err = db.timedDayOfWeek(ctx, filter); err != nil {
		return nil, err
	}

	if builder != nil && db.hasEdges {
		start := time.Now()
		edges, err := db.GetInteractionEdges(ctx, filter)
		metrics.RecordViewQuery("network", time.Since(start), err)
		if err != nil {
			return nil, err
		}
		views.Network = builder.Build(edges)
	}

	metrics.ViewsComputedTotal.Inc()
	return views, nil
}

func (db *DB) timedTrend(ctx context.Context, filter TweetFilter) ([]models.TrendPoint, error) {
	start := time.Now()
	trend, err := db.GetTrend(ctx, filter)
	metrics.RecordViewQuery("trend", time.Since(start), err)
	return trend, err
}

func (db *DB) timedCountrySentiment(ctx context.Context, filter TweetFilter) ([]models.CountrySentiment, error) {
	start := time.Now()
	cs, err := db.GetCountrySentiment(ctx, filter)
	metrics.RecordViewQuery("sentiment_map", time.Since(start), err)
	return cs, err
}

func (db *DB) timedCorrelation(ctx context.Context, filter TweetFilter) (*models.CorrelationMatrix, error) {
	start := time.Now()
	matrix, err := db.GetCorrelation(ctx, filter)
	metrics.RecordViewQuery("correlation", time.Since(start), err)
	return matrix, err
}

func (db *DB) timedDayOfWeek(ctx context.Context, filter TweetFilter) ([]models.DayOfWeekCount, error) {
	start := time.Now()
	counts, err := db.GetDayOfWeekCounts(ctx, filter)
	metrics.RecordViewQuery("day_of_week", time.Since(start), err)
	return counts, err
}

// GetStats summarizes the loaded dataset for the /stats endpoint.
func (db *DB) GetStats(ctx context.Context) (*models.DatasetStats, error) {
	query := `
		SELECT COUNT(*),
		       MIN(created_at),
		       MAX(created_at),
		       COUNT(DISTINCT country),
		       AVG(polarity)
		FROM tweets`

	var (
		total, countries int
		first, last      sql.NullTime
		meanPolarity     sql.NullFloat64
	)
	err := db.conn.QueryRowContext(ctx, query).
		Scan(&total, &first, &last, &countries, &meanPolarity)
	if err != nil {
		return nil, fmt.Errorf("failed to query dataset stats: %w", err)
	}

	stats := &models.DatasetStats{
		TotalTweets: total,
		Countries:   countries,
		DroppedRows: db.droppedRows,
	}
	if first.Valid {
		t := first.Time
		stats.FirstTweet = &t
	}
	if last.Valid {
		t := last.Time
		stats.LastTweet = &t
	}
	if meanPolarity.Valid {
		v := meanPolarity.Float64
		stats.MeanPolarity = &v
	}
	return stats, nil
}

// monthNames maps the calendar month number to its display name.
var monthNames = [13]string{"",
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// GetFilterOptions lists the selectable filter values actually present in
// the dataset. Months and days only appear when at least one tweet falls in
// them, mirroring what a dropdown built from the data itself would show.
func (db *DB) GetFilterOptions(ctx context.Context) (*models.FilterOptions, error) {
	opts := &models.FilterOptions{
		Months:   []models.MonthOption{},
		Days:     []models.DayOption{},
		DayTypes: []string{models.DayTypeWeekday, models.DayTypeWeekend},
	}

	rows, err := db.conn.QueryContext(ctx, "SELECT DISTINCT month FROM tweets ORDER BY month")
	if err != nil {
		return nil, fmt.Errorf("failed to query months: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var month int
		if err := rows.Scan(&month); err != nil {
			return nil, fmt.Errorf("failed to scan month: %w", err)
		}
		if month < 1 || month > 12 {
			return nil, fmt.Errorf("month out of range: %d", month)
		}
		opts.Months = append(opts.Months, models.MonthOption{
			Value: month,
			Label: monthNames[month],
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("month rows iteration: %w", err)
	}

	dayRows, err := db.conn.QueryContext(ctx, "SELECT DISTINCT day_of_week FROM tweets ORDER BY day_of_week")
	if err != nil {
		return nil, fmt.Errorf("failed to query days: %w", err)
	}
	defer func() { _ = dayRows.Close() }()

	for dayRows.Next() {
		var day int
		if err := dayRows.Scan(&day); err != nil {
			return nil, fmt.Errorf("failed to scan day: %w", err)
		}
		if day < 0 || day > 6 {
			return nil, fmt.Errorf("day_of_week out of range: %d", day)
		}
		opts.Days = append(opts.Days, models.DayOption{
			Value: day,
			Label: dayNames[day],
		})
	}
	if err := dayRows.Err(); err != nil {
		return nil, fmt.Errorf("day rows iteration: %w", err)
	}

	return opts, nil
}
