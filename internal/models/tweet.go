// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

package models

import "time"

// Day type labels derived from the day-of-week index. Saturday and Sunday
// map to DayTypeWeekend, everything else to DayTypeWeekday.
const (
	DayTypeWeekday = "Weekday"
	DayTypeWeekend = "Weekend"
)

// RawTweet is a single row as read from the input CSV, before enrichment.
// CreatedAt has already been normalized to naive UTC (offset stripped).
// Source and Target are empty unless the dataset carries the edge-list
// columns used by the network graph variant.
type RawTweet struct {
	CreatedAt time.Time
	Body      string
	Country   string
	Source    string
	Target    string
}

// Tweet is an enriched tweet record. Derived fields are pure functions of
// Body and CreatedAt, computed exactly once at load time; the record is
// immutable afterward.
//
// Field ranges:
//   - Month: 1-12
//   - DayOfWeek: 0-6 with 0=Monday (ISO ordering, not time.Weekday)
//   - Hour: 0-23
//   - Polarity: [-1, 1]
//   - Subjectivity: [0, 1]
type Tweet struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Body      string    `json:"body"`
	Country   string    `json:"country"`
	Source    string    `json:"source,omitempty"`
	Target    string    `json:"target,omitempty"`

	Month     int    `json:"month"`
	Year      int    `json:"year"`
	DayOfWeek int    `json:"day_of_week"`
	DayName   string `json:"day_name"`
	DayType   string `json:"day_type"`
	Hour      int    `json:"hour"`

	TweetLength  int `json:"tweet_length"`
	HashtagCount int `json:"hashtag_count"`
	MentionCount int `json:"mention_count"`
	WordCount    int `json:"word_count"`

	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// NumericColumns is the fixed set of numeric feature columns used by the
// correlation matrix, in wire order.
var NumericColumns = []string{
	"tweet_length",
	"hashtag_count",
	"mention_count",
	"word_count",
	"polarity",
	"subjectivity",
	"hour",
}
