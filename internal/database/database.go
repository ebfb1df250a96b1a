// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/sentigraph/internal/config"
	"github.com/tomtom215/sentigraph/internal/logging"
	"github.com/tomtom215/sentigraph/internal/models"
)

// DB wraps the DuckDB connection and provides data access methods.
type DB struct {
	conn *sql.DB
	cfg  *config.DatabaseConfig

	// hasEdges and droppedRows describe the loaded dataset. Set once
	// during LoadTweets, read-only afterward.
	hasEdges    bool
	droppedRows int
}

// New creates a new database connection and initializes the schema.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	// Ensure parent directory exists for file-backed databases.
	// Use 0750 permissions (owner: rwx, group: rx, other: none) per gosec G301.
	if cfg.Path != ":memory:" {
		dbDir := filepath.Dir(cfg.Path)
		if dbDir != "" && dbDir != "." {
			if err := os.MkdirAll(dbDir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dbDir, err)
			}
		}
	}

	// Disable auto-install/auto-load to prevent hangs in restricted
	// network environments. No extensions are needed for aggregation.
	connStr := fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s&autoinstall_known_extensions=false&autoload_known_extensions=false",
		cfg.Path, cfg.EffectiveThreads(), cfg.MaxMemory)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{
		conn: conn,
		cfg:  cfg,
	}

	if err := db.initSchema(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	logging.Info().
		Str("path", cfg.Path).
		Int("threads", cfg.EffectiveThreads()).
		Str("max_memory", cfg.MaxMemory).
		Msg("Database initialized")

	return db, nil
}

// initSchema creates the enriched tweet table. The schema mirrors
// models.Tweet column for column so that the bulk load is a straight
// positional insert.
func (db *DB) initSchema() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	schema := `
		CREATE TABLE IF NOT EXISTS tweets (
			id            UUID PRIMARY KEY,
			created_at    TIMESTAMP NOT NULL,
			body          TEXT NOT NULL,
			country       TEXT NOT NULL,
			source        TEXT NOT NULL DEFAULT '',
			target        TEXT NOT NULL DEFAULT '',
			month         INTEGER NOT NULL,
			year          INTEGER NOT NULL,
			day_of_week   INTEGER NOT NULL,
			day_name      TEXT NOT NULL,
			day_type      TEXT NOT NULL,
			hour          INTEGER NOT NULL,
			tweet_length  INTEGER NOT NULL,
			hashtag_count INTEGER NOT NULL,
			mention_count INTEGER NOT NULL,
			word_count    INTEGER NOT NULL,
			polarity      DOUBLE NOT NULL,
			subjectivity  DOUBLE NOT NULL
		)`

	if _, err := db.conn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create tweets table: %w", err)
	}
	return nil
}

// LoadTweets bulk-inserts the enriched dataset inside a single transaction.
// Called exactly once at startup; the table is read-only afterward.
func (db *DB) LoadTweets(ctx context.Context, tweets []models.Tweet, hasEdges bool, droppedRows int) error {
	start := time.Now()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO tweets (
			id, created_at, body, country, source, target,
			month, year, day_of_week, day_name, day_type, hour,
			tweet_length, hashtag_count, mention_count, word_count,
			polarity, subjectivity
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := range tweets {
		tw := &tweets[i]
		if _, err := stmt.ExecContext(ctx,
			tw.ID, tw.CreatedAt, tw.Body, tw.Country, tw.Source, tw.Target,
			tw.Month, tw.Year, tw.DayOfWeek, tw.DayName, tw.DayType, tw.Hour,
			tw.TweetLength, tw.HashtagCount, tw.MentionCount, tw.WordCount,
			tw.Polarity, tw.Subjectivity,
		); err != nil {
			return fmt.Errorf("failed to insert tweet %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit load: %w", err)
	}

	db.hasEdges = hasEdges
	db.droppedRows = droppedRows

	logging.Info().
		Int("rows", len(tweets)).
		Int("dropped", droppedRows).
		Bool("has_edges", hasEdges).
		Dur("duration", time.Since(start)).
		Msg("Dataset loaded into DuckDB")

	return nil
}

// HasEdges reports whether the loaded dataset carried source/target columns.
func (db *DB) HasEdges() bool {
	return db.hasEdges
}

// Ping verifies the connection is alive. Used by the readiness probe.
func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// Close closes the database connection.
func (db *DB) Close() error {
	if err := db.conn.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	return nil
}
