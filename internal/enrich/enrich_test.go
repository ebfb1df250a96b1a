// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

package enrich

import (
	"testing"
	"time"

	"github.com/tomtom215/sentigraph/internal/models"
	"github.com/tomtom215/sentigraph/internal/sentiment"
)

// fixedScorer returns the same scores for every input, isolating the
// derivation logic from the sentiment model.
type fixedScorer struct {
	scores sentiment.Scores
}

func (f fixedScorer) Score(string) sentiment.Scores { return f.scores }

func TestRecordTextStatistics(t *testing.T) {
	raw := models.RawTweet{
		CreatedAt: time.Date(2022, 8, 15, 14, 30, 0, 0, time.UTC),
		Body:      "Dry fields again #drought #farming cc @noaa",
		Country:   "United States",
	}

	tweet := Record(raw, fixedScorer{})

	if tweet.HashtagCount != 2 {
		t.Errorf("HashtagCount = %d, want 2", tweet.HashtagCount)
	}
	if tweet.MentionCount != 1 {
		t.Errorf("MentionCount = %d, want 1", tweet.MentionCount)
	}
	if tweet.WordCount != 6 {
		t.Errorf("WordCount = %d, want 6", tweet.WordCount)
	}
	if tweet.TweetLength != len("Dry fields again #drought #farming cc @noaa") {
		t.Errorf("TweetLength = %d", tweet.TweetLength)
	}
}

func TestRecordLengthCountsRunes(t *testing.T) {
	raw := models.RawTweet{
		CreatedAt: time.Date(2022, 8, 15, 0, 0, 0, 0, time.UTC),
		Body:      "café ☀️", // multi-byte characters count once each
	}

	tweet := Record(raw, fixedScorer{})

	want := 7 // c a f é space sun variation-selector
	if tweet.TweetLength != want {
		t.Errorf("TweetLength = %d, want %d (rune count, not bytes)", tweet.TweetLength, want)
	}
}

func TestRecordDateParts(t *testing.T) {
	// 2022-08-15 was a Monday.
	raw := models.RawTweet{
		CreatedAt: time.Date(2022, 8, 15, 14, 30, 0, 0, time.UTC),
		Body:      "x",
	}

	tweet := Record(raw, fixedScorer{})

	if tweet.Month != 8 {
		t.Errorf("Month = %d, want 8", tweet.Month)
	}
	if tweet.Year != 2022 {
		t.Errorf("Year = %d, want 2022", tweet.Year)
	}
	if tweet.DayOfWeek != 0 {
		t.Errorf("DayOfWeek = %d, want 0 (Monday)", tweet.DayOfWeek)
	}
	if tweet.DayName != "Monday" {
		t.Errorf("DayName = %q, want Monday", tweet.DayName)
	}
	if tweet.DayType != models.DayTypeWeekday {
		t.Errorf("DayType = %q, want Weekday", tweet.DayType)
	}
	if tweet.Hour != 14 {
		t.Errorf("Hour = %d, want 14", tweet.Hour)
	}
}

func TestDayOfWeekIndexCoversWholeWeek(t *testing.T) {
	// 2022-08-15 .. 2022-08-21 is Monday through Sunday.
	for offset := 0; offset < 7; offset++ {
		ts := time.Date(2022, 8, 15+offset, 0, 0, 0, 0, time.UTC)
		if got := DayOfWeekIndex(ts); got != offset {
			t.Errorf("DayOfWeekIndex(%s) = %d, want %d", ts.Weekday(), got, offset)
		}
	}
}

func TestDayTypeBoundaries(t *testing.T) {
	tests := []struct {
		dayOfWeek int
		want      string
	}{
		{0, models.DayTypeWeekday},
		{4, models.DayTypeWeekday},
		{5, models.DayTypeWeekend},
		{6, models.DayTypeWeekend},
	}
	for _, tt := range tests {
		if got := DayType(tt.dayOfWeek); got != tt.want {
			t.Errorf("DayType(%d) = %q, want %q", tt.dayOfWeek, got, tt.want)
		}
	}
}

func TestRecordCountsAreNonNegative(t *testing.T) {
	bodies := []string{"", "   ", "###", "@@@", "#a@b #c", "no marks at all"}
	for _, body := range bodies {
		tweet := Record(models.RawTweet{CreatedAt: time.Now().UTC(), Body: body}, fixedScorer{})
		if tweet.TweetLength < 0 || tweet.HashtagCount < 0 || tweet.MentionCount < 0 || tweet.WordCount < 0 {
			t.Errorf("negative derived count for %q: %+v", body, tweet)
		}
	}
}

func TestRecordBareMarkersDoNotCount(t *testing.T) {
	tweet := Record(models.RawTweet{CreatedAt: time.Now().UTC(), Body: "# @ #! @?"}, fixedScorer{})
	if tweet.HashtagCount != 0 {
		t.Errorf("bare # should not count as hashtag, got %d", tweet.HashtagCount)
	}
	if tweet.MentionCount != 0 {
		t.Errorf("bare @ should not count as mention, got %d", tweet.MentionCount)
	}
}

func TestDatasetPreservesOrderAndScores(t *testing.T) {
	raw := []models.RawTweet{
		{CreatedAt: time.Date(2022, 8, 15, 0, 0, 0, 0, time.UTC), Body: "first", Country: "Kenya"},
		{CreatedAt: time.Date(2022, 8, 16, 0, 0, 0, 0, time.UTC), Body: "second", Country: "India"},
	}

	scorer := fixedScorer{scores: sentiment.Scores{Polarity: 0.25, Subjectivity: 0.5}}
	tweets := Dataset(raw, scorer)

	if len(tweets) != 2 {
		t.Fatalf("expected 2 tweets, got %d", len(tweets))
	}
	if tweets[0].Body != "first" || tweets[1].Body != "second" {
		t.Error("Dataset must preserve input order")
	}
	for _, tw := range tweets {
		if tw.Polarity != 0.25 || tw.Subjectivity != 0.5 {
			t.Errorf("scores not applied: %+v", tw)
		}
		if tw.ID == "" {
			t.Error("record ID not assigned")
		}
	}
	if tweets[0].ID == tweets[1].ID {
		t.Error("record IDs must be unique")
	}
}
