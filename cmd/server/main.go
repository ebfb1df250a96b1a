// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/sentigraph/internal/api"
	"github.com/tomtom215/sentigraph/internal/config"
	"github.com/tomtom215/sentigraph/internal/database"
	"github.com/tomtom215/sentigraph/internal/enrich"
	"github.com/tomtom215/sentigraph/internal/ingest"
	"github.com/tomtom215/sentigraph/internal/logging"
	"github.com/tomtom215/sentigraph/internal/metrics"
	"github.com/tomtom215/sentigraph/internal/sentiment"
	"github.com/tomtom215/sentigraph/internal/supervisor"
	"github.com/tomtom215/sentigraph/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings.
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("dataset", cfg.Dataset.Path).
		Str("db_path", cfg.Database.Path).
		Bool("graph_enabled", cfg.Graph.Enabled).
		Msg("Starting Sentigraph")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	if err := loadDataset(cfg, db); err != nil {
		logging.Fatal().Err(err).Msg("Failed to load dataset")
	}

	handler := api.NewHandler(db, cfg)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	tree := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Serving analytics API")

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Fatal().Err(err).Msg("Supervisor tree failed")
	}

	if unstopped, err := tree.UnstoppedServiceReport(); err == nil && len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service did not stop within timeout")
		}
	}

	logging.Info().Msg("Shutdown complete")
}

// loadDataset runs the one-time ingest pass: parse the CSV, enrich and
// score every row, and bulk-load the result into DuckDB.
func loadDataset(cfg *config.Config, db *database.DB) error {
	start := time.Now()

	loader := &ingest.Loader{Policy: cfg.Dataset.OnParseError}
	result, err := loader.LoadFile(cfg.Dataset.Path)
	if err != nil {
		return err
	}

	logging.Info().
		Int("rows", len(result.Records)).
		Int("dropped", result.Dropped).
		Bool("edge_columns", result.HasEdgeColumns).
		Msg("CSV parsed")

	tweets := enrich.Dataset(result.Records, sentiment.NewAnalyzer())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()
	if err := db.LoadTweets(ctx, tweets, result.HasEdgeColumns, result.Dropped); err != nil {
		return err
	}

	metrics.RecordIngest(len(tweets), result.Dropped, time.Since(start))

	logging.Info().
		Int("tweets", len(tweets)).
		Dur("duration", time.Since(start)).
		Msg("Dataset ready")
	return nil
}
