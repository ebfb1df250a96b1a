// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

// Package enrich derives the per-tweet feature set from raw records.
//
// Enrichment runs exactly once per process lifetime, over the full dataset,
// before the HTTP surface comes up. It is deliberately hoisted out of the
// interactive filter path: sentiment scoring is by far the most expensive
// step and must never run per filter change. Every derived field is a pure
// function of the tweet body and timestamp.
package enrich

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/tomtom215/sentigraph/internal/models"
	"github.com/tomtom215/sentigraph/internal/sentiment"
)

// Scorer is the sentiment scoring capability. Satisfied by
// *sentiment.Analyzer.
type Scorer interface {
	Score(text string) sentiment.Scores
}

// Token patterns for hashtag and mention counting: a marker followed by
// one-or-more word characters, counted as non-overlapping matches.
var (
	hashtagRE = regexp.MustCompile(`#\w+`)
	mentionRE = regexp.MustCompile(`@\w+`)
)

// Record enriches a single raw tweet. The record ID is assigned here; all
// other fields are derived from the body and the (already normalized,
// naive-UTC) timestamp.
func Record(raw models.RawTweet, scorer Scorer) models.Tweet {
	ts := raw.CreatedAt
	dow := DayOfWeekIndex(ts)
	scores := scorer.Score(raw.Body)

	return models.Tweet{
		ID:        uuid.NewString(),
		CreatedAt: ts,
		Body:      raw.Body,
		Country:   raw.Country,
		Source:    raw.Source,
		Target:    raw.Target,

		Month:     int(ts.Month()),
		Year:      ts.Year(),
		DayOfWeek: dow,
		DayName:   ts.Weekday().String(),
		DayType:   DayType(dow),
		Hour:      ts.Hour(),

		TweetLength:  utf8.RuneCountInString(raw.Body),
		HashtagCount: len(hashtagRE.FindAllString(raw.Body, -1)),
		MentionCount: len(mentionRE.FindAllString(raw.Body, -1)),
		WordCount:    len(strings.Fields(raw.Body)),

		Polarity:     scores.Polarity,
		Subjectivity: scores.Subjectivity,
	}
}

// Dataset enriches every raw record in order. This is the once-per-process
// feature extraction pass; the returned slice becomes the read-only
// enriched table.
func Dataset(raw []models.RawTweet, scorer Scorer) []models.Tweet {
	tweets := make([]models.Tweet, 0, len(raw))
	for _, r := range raw {
		tweets = append(tweets, Record(r, scorer))
	}
	return tweets
}

// DayOfWeekIndex maps a timestamp to the 0=Monday .. 6=Sunday index used by
// the day-of-week filter. time.Weekday counts from Sunday, hence the shift.
func DayOfWeekIndex(ts time.Time) int {
	return (int(ts.Weekday()) + 6) % 7
}

// DayType maps a day-of-week index to its Weekday/Weekend label.
// Indices 5 (Saturday) and 6 (Sunday) are weekend.
func DayType(dayOfWeek int) string {
	if dayOfWeek >= 5 {
		return models.DayTypeWeekend
	}
	return models.DayTypeWeekday
}
