package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Sink receives each finished report of a batch. It may be called concurrently.
type Sink func(ctx context.Context, res Result) error

// RunAll runs jobs with at most limit in flight and hands every report to sink.
// A failing job does not stop the others; the errors of every failed job are
// joined and returned once all jobs are done.
func (p *Pipeline) RunAll(ctx context.Context, jobs []Job, limit int, sink Sink) error {
	if limit <= 0 {
		limit = 1
	}
	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs []error
	)
	g.SetLimit(limit)
	for _, job := range jobs {
		job := job
		g.Go(func() error {
			err := p.runOne(ctx, job, sink)
			if err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
			return nil
		})
	}
	g.Wait()
	return errors.Join(errs...)
}

func (p *Pipeline) runOne(ctx context.Context, job Job, sink Sink) error {
	rep, err := p.Run(ctx, job)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't run job",
			slog.String("job", job.Name),
			slog.String("err", err.Error()),
		)
		return err
	}
	if sink == nil {
		return nil
	}
	if err := sink(ctx, Result{Job: job, Report: rep}); err != nil {
		slog.Default().ErrorContext(ctx, "can't store report",
			slog.String("job", job.Name),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("job %s: %w", job.Name, err)
	}
	return nil
}
