package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jekabolt/grbpwr-pnl/internal/entity"
	"github.com/jmoiron/sqlx"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks
type (
	ContextStore interface {
		Tx(ctx context.Context, fn func(ctx context.Context, store Repository) error) error
	}

	Reports interface {
		// SaveReport archives a rendered report. Saving identical content for the
		// same job, mode and period again returns the existing run and false.
		SaveReport(ctx context.Context, run *entity.ReportRunNew) (*entity.ReportRun, bool, error)
		// GetLatestReport returns the run of the job with the newest period.
		GetLatestReport(ctx context.Context, job string) (*entity.ReportRun, error)
		// GetReport returns the newest run of the job for a period.
		GetReport(ctx context.Context, job string, period entity.Period) (*entity.ReportRun, error)
		// ListReports returns runs of the job newest first, without documents.
		ListReports(ctx context.Context, job string, limit int) ([]entity.ReportRun, error)
	}

	Repository interface {
		Reports() Reports
		Tx(ctx context.Context, f func(context.Context, Repository) error) error
		TxBegin(ctx context.Context) (Repository, error)
		TxCommit(ctx context.Context) error
		TxRollback(ctx context.Context) error
		Now() time.Time
		InTx() bool
		Close()
		Ping(ctx context.Context) error
		IsErrUniqueViolation(err error) bool
		IsErrorRepeat(err error) bool
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
		PreparexContext(ctx context.Context, query string) (*sqlx.Stmt, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}

	FileStore interface {
		// PublishReport uploads the document under the job's period key and its
		// latest key, returning the public URL of the period object.
		PublishReport(ctx context.Context, job string, period entity.Period, data []byte) (string, error)
		// GetBaseFolder returns the base folder for the bucket
		GetBaseFolder() string
	}

	// Revalidator notifies dashboards about a newly published report.
	Revalidator interface {
		Revalidate(ctx context.Context, job string, period entity.Period, url string) error
	}

	// Generator regenerates every configured report.
	Generator interface {
		GenerateAll(ctx context.Context) error
	}
)
