// Package refresh periodically regenerates every configured report while the
// API is serving.
package refresh

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jekabolt/grbpwr-pnl/internal/dependency"
)

// Config holds configuration for the refresh worker.
type Config struct {
	Enabled        bool          `mapstructure:"enabled"`
	WorkerInterval time.Duration `mapstructure:"interval"`
	RunOnStart     bool          `mapstructure:"run_on_start"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		WorkerInterval: time.Hour,
	}
}

// Worker re-runs all jobs on a ticker. A failed round is logged and retried
// on the next tick.
type Worker struct {
	gen  dependency.Generator
	c    *Config
	ctx  context.Context
	stop context.CancelFunc
	wg   sync.WaitGroup
}

// New creates a new refresh worker.
func New(c *Config, gen dependency.Generator) *Worker {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	if c.WorkerInterval <= 0 {
		c.WorkerInterval = time.Hour
	}
	return &Worker{
		gen: gen,
		c:   c,
	}
}

// Start starts the worker.
func (w *Worker) Start(ctx context.Context) error {
	if w.ctx != nil && w.stop != nil {
		return fmt.Errorf("refresh worker already started")
	}
	w.ctx, w.stop = context.WithCancel(ctx)
	w.wg.Add(1)
	go w.worker(w.ctx)
	return nil
}

// Stop stops the worker and waits for a running round to return.
func (w *Worker) Stop() error {
	if w.stop == nil {
		return fmt.Errorf("refresh worker already stopped or not started")
	}
	w.stop()
	w.stop = nil
	w.wg.Wait()
	w.ctx = nil
	return nil
}
