package refresh

import (
	"context"
	"time"

	"log/slog"
)

func (w *Worker) worker(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.c.WorkerInterval)
	defer ticker.Stop()

	if w.c.RunOnStart {
		w.refresh(ctx)
	}
	for {
		select {
		case <-ticker.C:
			w.refresh(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (w *Worker) refresh(ctx context.Context) {
	start := time.Now()
	if err := w.gen.GenerateAll(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "can't refresh reports",
			slog.String("err", err.Error()),
		)
		return
	}
	slog.Default().InfoContext(ctx, "reports refreshed",
		slog.Duration("took", time.Since(start)),
	)
}
