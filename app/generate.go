package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jekabolt/grbpwr-pnl/internal/dto"
	"github.com/jekabolt/grbpwr-pnl/internal/entity"
	"github.com/jekabolt/grbpwr-pnl/internal/output"
	"github.com/jekabolt/grbpwr-pnl/internal/pipeline"
)

// Jobs returns the configured jobs.
func (a *App) Jobs() []pipeline.Job {
	return a.jobs
}

// GenerateAll runs every configured job.
func (a *App) GenerateAll(ctx context.Context) error {
	return a.Generate(ctx, a.jobs)
}

// Generate runs jobs through the pipeline and emits each report.
func (a *App) Generate(ctx context.Context, jobs []pipeline.Job) error {
	return a.p.RunAll(ctx, jobs, a.c.Batch.Concurrency, a.emit)
}

// emit writes the rendered document to disk, then archives and publishes it
// when those are configured.
func (a *App) emit(ctx context.Context, res pipeline.Result) error {
	doc, err := dto.Marshal(res.Report, a.c.Report.Unit)
	if err != nil {
		return fmt.Errorf("can't marshal report: %w", err)
	}

	path := output.ExpandPath(res.Job.Output, res.Job.Name, res.Job.Period)
	if err := output.WriteFileAtomic(path, doc); err != nil {
		return err
	}
	slog.Default().InfoContext(ctx, "report written",
		slog.String("job", res.Job.Name),
		slog.String("path", path),
		slog.Int("bytes", len(doc)),
	)

	if a.reports != nil {
		run, created, err := a.reports.SaveReport(ctx, entity.NewReportRun(res.Report, doc))
		if err != nil {
			return err
		}
		slog.Default().InfoContext(ctx, "report archived",
			slog.String("job", res.Job.Name),
			slog.String("uuid", run.UUID),
			slog.Bool("created", created),
		)
	}

	if a.fs != nil {
		url, err := a.fs.PublishReport(ctx, res.Job.Name, res.Job.Period, doc)
		if err != nil {
			return err
		}
		slog.Default().InfoContext(ctx, "report published",
			slog.String("job", res.Job.Name),
			slog.String("url", url),
		)
		if a.rv != nil {
			if err := a.rv.Revalidate(ctx, res.Job.Name, res.Job.Period, url); err != nil {
				slog.Default().ErrorContext(ctx, "can't revalidate dashboards",
					slog.String("job", res.Job.Name),
					slog.String("err", err.Error()),
				)
			}
		}
	}
	return nil
}
