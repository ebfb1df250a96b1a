// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

package models

import "time"

// TrendPoint is one day in the daily tweet count projection. Date is the
// calendar day in YYYY-MM-DD form, ready for a chart axis.
type TrendPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// CountrySentiment is the mean polarity for one country. Countries with no
// matching rows are simply absent from the projection, never emitted as zero.
type CountrySentiment struct {
	Country     string  `json:"country"`
	AvgPolarity float64 `json:"avg_polarity"`
	TweetCount  int     `json:"tweet_count"`
}

// CorrelationMatrix is the pairwise Pearson correlation over the fixed
// numeric column set. Values is row-major with Values[i][j] aligned to
// Columns[i] x Columns[j]. A nil cell means the correlation is undefined
// (zero variance in the filtered subset); Go-side NaN never reaches the
// wire, it is serialized as JSON null.
//
// Invariants for any non-degenerate filtered subset: the matrix is
// symmetric and carries 1.0 on every diagonal entry.
type CorrelationMatrix struct {
	Columns []string     `json:"columns"`
	Values  [][]*float64 `json:"values"`
}

// At returns the correlation between columns i and j and whether it is
// defined.
func (m *CorrelationMatrix) At(i, j int) (float64, bool) {
	if i < 0 || j < 0 || i >= len(m.Values) || j >= len(m.Values[i]) {
		return 0, false
	}
	cell := m.Values[i][j]
	if cell == nil {
		return 0, false
	}
	return *cell, true
}

// DayOfWeekCount is the tweet count for one day-of-week index.
// Projections are emitted in calendar order (Monday first); the reference
// implementation's descending-count ordering was a side effect of a generic
// value-counts operation and is deliberately not reproduced.
type DayOfWeekCount struct {
	DayOfWeek int    `json:"day_of_week"`
	DayName   string `json:"day_name"`
	Count     int    `json:"count"`
}

// NetworkNode is a laid-out node in the interaction graph. X and Y are the
// explicitly computed 2D layout position; nodes are never emitted without
// one.
type NetworkNode struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Degree int     `json:"degree"`
}

// NetworkEdge is a directed edge between two laid-out nodes. Weight is the
// number of rows carrying the same source/target pair.
type NetworkEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Weight int    `json:"weight"`
}

// NetworkGraph is the directed interaction graph built from the optional
// source/target columns, with layout positions attached.
type NetworkGraph struct {
	Nodes []NetworkNode `json:"nodes"`
	Edges []NetworkEdge `json:"edges"`
}

// Views bundles every aggregate projection for one filter state. All slices
// are freshly allocated per computation and owned by the caller; nothing in
// a Views value aliases the enriched table.
//
// Network is nil when the network graph variant is disabled or the dataset
// carries no edge columns.
type Views struct {
	Trend            []TrendPoint       `json:"trend"`
	CountrySentiment []CountrySentiment `json:"country_sentiment"`
	Correlation      *CorrelationMatrix `json:"correlation"`
	DayOfWeek        []DayOfWeekCount   `json:"day_of_week"`
	Network          *NetworkGraph      `json:"network,omitempty"`
}

// DatasetStats summarizes the loaded dataset for the /stats endpoint.
type DatasetStats struct {
	TotalTweets  int        `json:"total_tweets"`
	FirstTweet   *time.Time `json:"first_tweet,omitempty"`
	LastTweet    *time.Time `json:"last_tweet,omitempty"`
	Countries    int        `json:"countries"`
	MeanPolarity *float64   `json:"mean_polarity,omitempty"`
	DroppedRows  int        `json:"dropped_rows,omitempty"`
}

// FilterOptions lists the selectable values for the three dashboard filters.
type FilterOptions struct {
	Months   []MonthOption `json:"months"`
	Days     []DayOption   `json:"days"`
	DayTypes []string      `json:"day_types"`
}

// MonthOption is one selectable month.
type MonthOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// DayOption is one selectable day of the week.
type DayOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}
