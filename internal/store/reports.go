package store

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jekabolt/grbpwr-pnl/internal/dependency"
	"github.com/jekabolt/grbpwr-pnl/internal/entity"
	gerr "github.com/jekabolt/grbpwr-pnl/internal/errors"
)

const (
	reportRunColumns = `id, uuid, job, mode, period, previous_period, generated_at, store_count,
		total_net_sales, total_direct_profit, value_parse_errors, unmapped_rows, checksum, created_at`
	defaultListLimit = 50
	maxListLimit     = 500
)

type reportsStore struct {
	*MYSQLStore
}

// Reports returns an object implementing Reports interface
func (ms *MYSQLStore) Reports() dependency.Reports {
	return &reportsStore{
		MYSQLStore: ms,
	}
}

// Checksum identifies a rendered document.
func Checksum(doc []byte) string {
	sum := sha256.Sum256(doc)
	return hex.EncodeToString(sum[:])
}

// SaveReport archives run unless a run with the same job, mode, period and
// document checksum already exists.
func (ms *MYSQLStore) SaveReport(ctx context.Context, run *entity.ReportRunNew) (*entity.ReportRun, bool, error) {
	if run == nil {
		return nil, false, fmt.Errorf("report run is nil")
	}
	checksum := Checksum(run.Document)
	var (
		saved   entity.ReportRun
		created bool
	)
	err := ms.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		query := `
		INSERT INTO report_run (uuid, job, mode, period, previous_period, generated_at, store_count,
			total_net_sales, total_direct_profit, value_parse_errors, unmapped_rows, checksum, document)
		VALUES (:uuid, :job, :mode, :period, :previousPeriod, :generatedAt, :storeCount,
			:totalNetSales, :totalDirectProfit, :valueParseErrors, :unmappedRows, :checksum, :document)
		ON DUPLICATE KEY UPDATE id = id`
		n, err := ExecNamed(ctx, rep.DB(), query, map[string]any{
			"uuid":              uuid.New().String(),
			"job":               run.Job,
			"mode":              string(run.Mode),
			"period":            run.Period.Int(),
			"previousPeriod":    run.PreviousPeriod.Int(),
			"generatedAt":       run.GeneratedAt.UTC(),
			"storeCount":        run.StoreCount,
			"totalNetSales":     run.TotalNetSales,
			"totalDirectProfit": run.TotalDirectProfit,
			"valueParseErrors":  run.ValueParseErrors,
			"unmappedRows":      run.UnmappedRows,
			"checksum":          checksum,
			"document":          run.Document,
		})
		if err != nil {
			return fmt.Errorf("can't insert report run: %w", err)
		}
		created = n > 0

		saved, err = QueryNamedOne[entity.ReportRun](ctx, rep.DB(),
			`SELECT `+reportRunColumns+`, document FROM report_run
			WHERE job = :job AND mode = :mode AND period = :period AND checksum = :checksum`,
			map[string]any{
				"job":      run.Job,
				"mode":     string(run.Mode),
				"period":   run.Period.Int(),
				"checksum": checksum,
			})
		if err != nil {
			return fmt.Errorf("can't get saved report run: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, false, fmt.Errorf("can't save report %s %s: %w", run.Job, run.Period, err)
	}
	return &saved, created, nil
}

// GetLatestReport returns the newest run of the job's newest period.
func (ms *MYSQLStore) GetLatestReport(ctx context.Context, job string) (*entity.ReportRun, error) {
	run, err := QueryNamedOne[entity.ReportRun](ctx, ms.DB(),
		`SELECT `+reportRunColumns+`, document FROM report_run
		WHERE job = :job ORDER BY period DESC, id DESC LIMIT 1`,
		map[string]any{"job": job})
	if err != nil {
		return nil, notFound(err, "latest report of %s", job)
	}
	return &run, nil
}

// GetReport returns the newest run of the job for period.
func (ms *MYSQLStore) GetReport(ctx context.Context, job string, period entity.Period) (*entity.ReportRun, error) {
	run, err := QueryNamedOne[entity.ReportRun](ctx, ms.DB(),
		`SELECT `+reportRunColumns+`, document FROM report_run
		WHERE job = :job AND period = :period ORDER BY id DESC LIMIT 1`,
		map[string]any{"job": job, "period": period.Int()})
	if err != nil {
		return nil, notFound(err, "report %s %s", job, period)
	}
	return &run, nil
}

// ListReports returns up to limit runs of the job, newest period first.
func (ms *MYSQLStore) ListReports(ctx context.Context, job string, limit int) ([]entity.ReportRun, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	runs, err := QueryListNamed[entity.ReportRun](ctx, ms.DB(),
		`SELECT `+reportRunColumns+` FROM report_run
		WHERE job = :job ORDER BY period DESC, id DESC LIMIT :limit`,
		map[string]any{"job": job, "limit": limit})
	if err != nil {
		return nil, fmt.Errorf("can't list reports of %s: %w", job, err)
	}
	if runs == nil {
		runs = []entity.ReportRun{}
	}
	return runs, nil
}

func notFound(err error, format string, args ...any) error {
	what := fmt.Sprintf(format, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, gerr.ErrReportNotFound)
	}
	return fmt.Errorf("can't get %s: %w", what, err)
}
