// Package pipeline turns ledger rows into a classified store report:
// filter, aggregate, derive, compare year over year, classify and assemble.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jekabolt/grbpwr-pnl/internal/accounts"
	"github.com/jekabolt/grbpwr-pnl/internal/entity"
	"github.com/jekabolt/grbpwr-pnl/internal/ledger"
)

// Config holds the settings shared by every job.
type Config struct {
	Stores              StoresConfig
	DirectProfitFormula entity.DirectProfitFormula
	CategoryNames       map[string]string
}

// JobConfig is one [[jobs]] entry as written in the configuration file.
type JobConfig struct {
	Name          string          `mapstructure:"name"`
	Inputs        []ledger.Source `mapstructure:"inputs"`
	Countries     []string        `mapstructure:"countries"`
	Brands        []string        `mapstructure:"brands"`
	Period        string          `mapstructure:"period"`
	ComparePeriod string          `mapstructure:"compare_period"`
	Mode          string          `mapstructure:"mode"`
	Output        string          `mapstructure:"output"`
}

// Job is a parsed, ready-to-run JobConfig.
type Job struct {
	Name          string
	Inputs        []ledger.Source
	Countries     []string
	Brands        []string
	Period        entity.Period
	ComparePeriod entity.Period
	Mode          entity.ReportMode
	Output        string
}

// Job parses the periods and mode of the config entry. The comparison period
// defaults to the same month one year earlier, the mode to a single month.
func (jc JobConfig) Job() (Job, error) {
	p, err := entity.ParsePeriod(jc.Period)
	if err != nil {
		return Job{}, fmt.Errorf("job %s: period: %w", jc.Name, err)
	}
	cp := p.PrevYear()
	if strings.TrimSpace(jc.ComparePeriod) != "" {
		if cp, err = entity.ParsePeriod(jc.ComparePeriod); err != nil {
			return Job{}, fmt.Errorf("job %s: compare_period: %w", jc.Name, err)
		}
	}
	mode := entity.ReportMode(strings.ToLower(strings.TrimSpace(jc.Mode)))
	if mode == "" {
		mode = entity.ModeMonth
	}
	if !mode.Valid() {
		return Job{}, fmt.Errorf("job %s: unknown mode %q", jc.Name, jc.Mode)
	}
	return Job{
		Name:          jc.Name,
		Inputs:        jc.Inputs,
		Countries:     jc.Countries,
		Brands:        jc.Brands,
		Period:        p,
		ComparePeriod: cp,
		Mode:          mode,
		Output:        jc.Output,
	}, nil
}

// Result is a finished run.
type Result struct {
	Job    Job
	Report *entity.Report
}

// Pipeline runs jobs. It holds no per-run state and is safe for concurrent use.
type Pipeline struct {
	c      Config
	reader *ledger.Reader
	dict   *accounts.Dictionary
	asm    *Assembler
	now    func() time.Time
}

func New(c Config, reader *ledger.Reader, dict *accounts.Dictionary) *Pipeline {
	if c.DirectProfitFormula == "" {
		c.DirectProfitFormula = entity.FormulaGrossMinusSelling
	}
	return &Pipeline{
		c:      c,
		reader: reader,
		dict:   dict,
		asm:    NewAssembler(c.CategoryNames, c.Stores.TemporaryExclusions),
		now:    time.Now,
	}
}

// WithClock replaces the generation timestamp source.
func (p *Pipeline) WithClock(now func() time.Time) *Pipeline {
	p.now = now
	return p
}

// Run reads the job's inputs and builds its report.
func (p *Pipeline) Run(ctx context.Context, job Job) (*entity.Report, error) {
	res, err := p.reader.ReadAll(ctx, job.Inputs)
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", job.Name, err)
	}
	rep, err := p.Build(ctx, job, res.Rows)
	if err != nil {
		return nil, err
	}
	q := res.Quality
	q.RowsUsed = rep.Quality.RowsUsed
	q.UnmappedRows = rep.Quality.UnmappedRows
	q.UnmappedAccounts = rep.Quality.UnmappedAccounts
	rep.Quality = q
	return rep, nil
}

// Build runs the aggregation over rows already in memory.
func (p *Pipeline) Build(ctx context.Context, job Job, rows []entity.LedgerRow) (*entity.Report, error) {
	curPeriods := job.Mode.Periods(job.Period)
	prevPeriods := job.Mode.Periods(job.ComparePeriod)
	basePeriods := job.Mode.Periods(job.ComparePeriod.PrevYear())

	all := make([]entity.Period, 0, len(curPeriods)+len(prevPeriods)+len(basePeriods))
	all = append(all, curPeriods...)
	all = append(all, prevPeriods...)
	all = append(all, basePeriods...)
	read := len(rows)
	rows = NewFilter(job.Countries, job.Brands, all, p.c.Stores).Apply(rows)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cur, err := Aggregate(rows, p.dict, curPeriods)
	if err != nil {
		return nil, fmt.Errorf("job %s: aggregate %s: %w", job.Name, job.Period, err)
	}
	prev, err := Aggregate(rows, p.dict, prevPeriods)
	if err != nil {
		return nil, fmt.Errorf("job %s: aggregate %s: %w", job.Name, job.ComparePeriod, err)
	}
	base, err := Aggregate(rows, p.dict, basePeriods)
	if err != nil {
		return nil, fmt.Errorf("job %s: aggregate baseline: %w", job.Name, err)
	}
	for _, a := range []*Aggregation{cur, prev, base} {
		FinalizeAll(a, p.c.DirectProfitFormula)
	}

	meta := entity.ReportMetadata{
		Job:                 job.Name,
		Mode:                job.Mode,
		Period:              job.Period,
		PreviousPeriod:      job.ComparePeriod,
		Periods:             curPeriods,
		PreviousPeriods:     prevPeriods,
		Countries:           job.Countries,
		Brands:              job.Brands,
		DirectProfitFormula: p.c.DirectProfitFormula,
		GeneratedAt:         p.now().UTC(),
	}
	rep := p.asm.Assemble(meta, cur, prev, base)

	unmapped := make(map[string]struct{})
	for _, a := range []*Aggregation{cur, prev} {
		for k := range a.UnmappedAccounts {
			unmapped[k] = struct{}{}
		}
	}
	merged := &Aggregation{UnmappedAccounts: unmapped}
	rep.Quality = entity.Quality{
		RowsRead:         read,
		RowsUsed:         len(rows),
		UnmappedRows:     cur.UnmappedRows + prev.UnmappedRows,
		UnmappedAccounts: merged.unmappedList(),
	}
	if rep.Quality.UnmappedRows > 0 {
		slog.Default().WarnContext(ctx, "unmapped ledger accounts",
			slog.String("job", job.Name),
			slog.Int("rows", rep.Quality.UnmappedRows),
			slog.String("accounts", strings.Join(rep.Quality.UnmappedAccounts, "; ")),
		)
	}
	slog.Default().InfoContext(ctx, "report assembled",
		slog.String("job", job.Name),
		slog.String("period", job.Period.String()),
		slog.String("mode", string(job.Mode)),
		slog.Int("stores", rep.Summary.StoreCount),
		slog.Int("excluded", len(rep.Excluded)),
	)
	return rep, nil
}
