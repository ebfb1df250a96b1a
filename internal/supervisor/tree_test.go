// Sentigraph - Tweet Sentiment Analytics and Geographic Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sentigraph

package supervisor

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"
)

// blockingService runs until its context is canceled.
type blockingService struct {
	started atomic.Bool
}

func (s *blockingService) Serve(ctx context.Context) error {
	s.started.Store(true)
	<-ctx.Done()
	return ctx.Err()
}

func (s *blockingService) String() string { return "blocking-service" }

func TestDefaultTreeConfig(t *testing.T) {
	cfg := DefaultTreeConfig()
	if cfg.FailureThreshold != 5.0 || cfg.FailureDecay != 30.0 {
		t.Errorf("unexpected failure parameters: %+v", cfg)
	}
	if cfg.FailureBackoff != 15*time.Second || cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("unexpected timing parameters: %+v", cfg)
	}
}

func TestTreeRunsAndStopsService(t *testing.T) {
	tree := NewSupervisorTree(slog.Default(), DefaultTreeConfig())

	svc := &blockingService{}
	tree.AddAPIService(svc)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	for i := 0; i < 100 && !svc.started.Load(); i++ {
		time.Sleep(10 * time.Millisecond)
	}
	if !svc.started.Load() {
		t.Fatal("service never started under supervision")
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("tree returned %v, want nil or context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("tree did not stop after cancellation")
	}
}

func TestTreeConfigZeroValuesGetDefaults(t *testing.T) {
	// A zero config must not produce a tree that restarts in a hot loop.
	tree := NewSupervisorTree(slog.Default(), TreeConfig{})
	if tree == nil {
		t.Fatal("NewSupervisorTree returned nil")
	}
}
