// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

package database

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/sentigraph/internal/config"
	"github.com/tomtom215/sentigraph/internal/models"
)

// testDBSemaphore serializes DuckDB test databases. Concurrent CGO
// connections can hang under CI resource pressure, so only one test holds
// an open connection at a time.
var testDBSemaphore = make(chan struct{}, 1)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() { <-testDBSemaphore })

	cfg := &config.DatabaseConfig{
		Path:      ":memory:",
		MaxMemory: "1GB",
		Threads:   2,
	}
	db, err := New(cfg)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})
	return db
}

// testTweet builds one enriched row with the derived date fields filled in
// from ts. Sentiment and text stats come straight from the arguments so
// tests control the aggregates exactly.
func testTweet(ts time.Time, country, source, target string, length, hashtags, mentions, words int, polarity, subjectivity float64) models.Tweet {
	dayOfWeek := (int(ts.Weekday()) + 6) % 7
	dayType := models.DayTypeWeekday
	if dayOfWeek >= 5 {
		dayType = models.DayTypeWeekend
	}
	return models.Tweet{
		ID:           uuid.NewString(),
		CreatedAt:    ts,
		Body:         "body",
		Country:      country,
		Source:       source,
		Target:       target,
		Month:        int(ts.Month()),
		Year:         ts.Year(),
		DayOfWeek:    dayOfWeek,
		DayName:      ts.Weekday().String(),
		DayType:      dayType,
		Hour:         ts.Hour(),
		TweetLength:  length,
		HashtagCount: hashtags,
		MentionCount: mentions,
		WordCount:    words,
		Polarity:     polarity,
		Subjectivity: subjectivity,
	}
}

// seedTweets is the shared fixture: two months, two countries, weekday and
// weekend rows, and a small interaction graph on the August rows.
//
//	2022-08-01 is a Monday, 2022-08-06 a Saturday, 2022-09-04 a Sunday.
func seedTweets() []models.Tweet {
	return []models.Tweet{
		testTweet(time.Date(2022, 8, 1, 10, 0, 0, 0, time.UTC), "United States", "alice", "bob", 50, 2, 1, 8, 0.5, 0.4),
		testTweet(time.Date(2022, 8, 1, 12, 0, 0, 0, time.UTC), "India", "alice", "bob", 30, 0, 0, 5, -0.2, 0.1),
		testTweet(time.Date(2022, 8, 6, 9, 0, 0, 0, time.UTC), "United States", "bob", "carol", 80, 3, 2, 12, 0.8, 0.7),
		testTweet(time.Date(2022, 9, 4, 18, 0, 0, 0, time.UTC), "India", "", "", 20, 1, 0, 3, 0.0, 0.2),
	}
}

func setupTestDBWithData(t *testing.T) *DB {
	t.Helper()

	db := setupTestDB(t)
	if err := db.LoadTweets(context.Background(), seedTweets(), true, 0); err != nil {
		t.Fatalf("Failed to load seed tweets: %v", err)
	}
	return db
}

func TestLoadTweetsAndStats(t *testing.T) {
	db := setupTestDBWithData(t)

	stats, err := db.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}

	if stats.TotalTweets != 4 {
		t.Errorf("TotalTweets = %d, want 4", stats.TotalTweets)
	}
	if stats.Countries != 2 {
		t.Errorf("Countries = %d, want 2", stats.Countries)
	}
	if stats.FirstTweet == nil || !stats.FirstTweet.Equal(time.Date(2022, 8, 1, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("FirstTweet = %v, want 2022-08-01T10:00:00Z", stats.FirstTweet)
	}
	if stats.LastTweet == nil || !stats.LastTweet.Equal(time.Date(2022, 9, 4, 18, 0, 0, 0, time.UTC)) {
		t.Errorf("LastTweet = %v, want 2022-09-04T18:00:00Z", stats.LastTweet)
	}
	if stats.MeanPolarity == nil {
		t.Fatal("MeanPolarity is nil")
	}
	wantMean := (0.5 - 0.2 + 0.8 + 0.0) / 4
	if diff := *stats.MeanPolarity - wantMean; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("MeanPolarity = %f, want %f", *stats.MeanPolarity, wantMean)
	}
	if stats.DroppedRows != 0 {
		t.Errorf("DroppedRows = %d, want 0", stats.DroppedRows)
	}
}

func TestGetStatsEmptyTable(t *testing.T) {
	db := setupTestDB(t)

	stats, err := db.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.TotalTweets != 0 {
		t.Errorf("TotalTweets = %d, want 0", stats.TotalTweets)
	}
	if stats.FirstTweet != nil || stats.LastTweet != nil {
		t.Error("expected nil first/last tweet on empty table")
	}
	if stats.MeanPolarity != nil {
		t.Errorf("MeanPolarity = %v, want nil", *stats.MeanPolarity)
	}
}

func TestGetFilterOptions(t *testing.T) {
	db := setupTestDBWithData(t)

	opts, err := db.GetFilterOptions(context.Background())
	if err != nil {
		t.Fatalf("GetFilterOptions: %v", err)
	}

	if len(opts.Months) != 2 {
		t.Fatalf("Months = %v, want August and September", opts.Months)
	}
	if opts.Months[0].Value != 8 || opts.Months[0].Label != "August" {
		t.Errorf("Months[0] = %+v, want {8 August}", opts.Months[0])
	}
	if opts.Months[1].Value != 9 || opts.Months[1].Label != "September" {
		t.Errorf("Months[1] = %+v, want {9 September}", opts.Months[1])
	}

	// Seed rows fall on Monday (0), Saturday (5) and Sunday (6).
	wantDays := []models.DayOption{
		{Value: 0, Label: "Monday"},
		{Value: 5, Label: "Saturday"},
		{Value: 6, Label: "Sunday"},
	}
	if len(opts.Days) != len(wantDays) {
		t.Fatalf("Days = %v, want %v", opts.Days, wantDays)
	}
	for i, want := range wantDays {
		if opts.Days[i] != want {
			t.Errorf("Days[%d] = %+v, want %+v", i, opts.Days[i], want)
		}
	}

	if len(opts.DayTypes) != 2 || opts.DayTypes[0] != models.DayTypeWeekday || opts.DayTypes[1] != models.DayTypeWeekend {
		t.Errorf("DayTypes = %v, want [Weekday Weekend]", opts.DayTypes)
	}
}

func TestHasEdges(t *testing.T) {
	db := setupTestDB(t)
	if db.HasEdges() {
		t.Error("HasEdges true before load")
	}
	if err := db.LoadTweets(context.Background(), seedTweets(), false, 2); err != nil {
		t.Fatalf("LoadTweets: %v", err)
	}
	if db.HasEdges() {
		t.Error("HasEdges should follow the load flag")
	}

	stats, err := db.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats: %v", err)
	}
	if stats.DroppedRows != 2 {
		t.Errorf("DroppedRows = %d, want 2", stats.DroppedRows)
	}
}

func TestPing(t *testing.T) {
	db := setupTestDB(t)
	if err := db.Ping(context.Background()); err != nil {
		t.Errorf("Ping: %v", err)
	}
}
