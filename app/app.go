// Package app wires configuration, the pipeline and the optional archive,
// publisher, read API and refresh worker together.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jekabolt/grbpwr-pnl/config"
	"github.com/jekabolt/grbpwr-pnl/internal/accounts"
	httpapi "github.com/jekabolt/grbpwr-pnl/internal/api/http"
	"github.com/jekabolt/grbpwr-pnl/internal/dependency"
	"github.com/jekabolt/grbpwr-pnl/internal/ledger"
	"github.com/jekabolt/grbpwr-pnl/internal/pipeline"
	"github.com/jekabolt/grbpwr-pnl/internal/refresh"
	"github.com/jekabolt/grbpwr-pnl/internal/revalidation"
	"github.com/jekabolt/grbpwr-pnl/internal/store"
)

// App is the main application
type App struct {
	c    *config.Config
	p    *pipeline.Pipeline
	jobs []pipeline.Job

	db      dependency.Repository
	reports dependency.Reports
	fs      dependency.FileStore
	rv      dependency.Revalidator

	hs       *httpapi.Server
	rw       *refresh.Worker
	done     chan struct{}
	doneOnce sync.Once
}

// New builds the pipeline and parses the configured jobs.
func New(c *config.Config) (*App, error) {
	dict, err := accounts.New(c.Accounts)
	if err != nil {
		return nil, fmt.Errorf("can't build account dictionary: %w", err)
	}
	p := pipeline.New(c.Pipeline(), ledger.NewReader(c.Ledger), dict)
	at, err := c.GeneratedAt()
	if err != nil {
		return nil, err
	}
	if at != nil {
		pinned := at.UTC()
		p.WithClock(func() time.Time { return pinned })
	}

	jobs, err := ParseJobs(c.Jobs)
	if err != nil {
		return nil, err
	}
	return &App{
		c:    c,
		p:    p,
		jobs: jobs,
		done: make(chan struct{}),
	}, nil
}

// ParseJobs converts config entries into runnable jobs.
func ParseJobs(jcs []pipeline.JobConfig) ([]pipeline.Job, error) {
	jobs := make([]pipeline.Job, 0, len(jcs))
	for _, jc := range jcs {
		j, err := jc.Job()
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

// WithArchive stores every generated report in reports.
func (a *App) WithArchive(reports dependency.Reports) *App {
	a.reports = reports
	return a
}

// WithPublisher uploads every generated report through fs.
func (a *App) WithPublisher(fs dependency.FileStore) *App {
	a.fs = fs
	return a
}

// WithRevalidator notifies dashboards after every publish.
func (a *App) WithRevalidator(rv dependency.Revalidator) *App {
	a.rv = rv
	return a
}

// Open connects the archive database and the bucket when they are configured.
func (a *App) Open(ctx context.Context) error {
	if a.c.DB.Enabled() && a.db == nil {
		db, err := store.New(ctx, a.c.DB)
		if err != nil {
			slog.Default().ErrorContext(ctx, "couldn't connect to mysql",
				slog.String("err", err.Error()),
			)
			return err
		}
		a.db = db
		a.reports = db.Reports()
	}
	if a.c.Bucket.Enabled() && a.fs == nil {
		fs, err := a.c.Bucket.Init()
		if err != nil {
			slog.Default().ErrorContext(ctx, "couldn't init bucket",
				slog.String("err", err.Error()),
			)
			return err
		}
		a.fs = fs
	}
	if a.c.Revalidation.Enabled() && a.rv == nil {
		a.rv = revalidation.New(&a.c.Revalidation)
	}
	return nil
}

// Start serves the read API and, when enabled, refreshes reports on a timer.
func (a *App) Start(ctx context.Context) error {
	slog.Default().InfoContext(ctx, "starting report service")
	if err := a.Open(ctx); err != nil {
		return err
	}
	if a.reports == nil {
		return fmt.Errorf("serve needs the mysql report archive")
	}

	a.hs = httpapi.New(&a.c.HTTP, a.reports, a.c.JobNames())
	if a.db != nil {
		a.hs.WithHealthCheck(a.db.Ping)
	}
	if err := a.hs.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server",
			slog.String("err", err.Error()),
		)
		return err
	}

	if a.c.Refresh.Enabled {
		a.rw = refresh.New(&a.c.Refresh, a)
		if err := a.rw.Start(ctx); err != nil {
			return err
		}
	}
	go func() {
		<-a.hs.Done()
		a.closeDone()
	}()
	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.rw != nil {
		if err := a.rw.Stop(); err != nil {
			slog.Default().ErrorContext(ctx, "can't stop refresh worker",
				slog.String("err", err.Error()),
			)
		}
	}
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "can't stop http server",
				slog.String("err", err.Error()),
			)
		}
	}
	a.Close()
	a.closeDone()
}

// Close releases the archive connection.
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() <-chan struct{} {
	return a.done
}

func (a *App) closeDone() {
	a.doneOnce.Do(func() { close(a.done) })
}
