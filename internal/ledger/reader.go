// Package ledger reads store P&L exports (CSV or XLSX) into ledger rows.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jekabolt/grbpwr-pnl/internal/entity"
	gerr "github.com/jekabolt/grbpwr-pnl/internal/errors"
)

const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Config is the [ledger] section of the configuration.
type Config struct {
	Columns   Columns `mapstructure:"columns"`
	Delimiter string  `mapstructure:"delimiter"`
}

// Source is one input file of a job.
type Source struct {
	Path   string `mapstructure:"path"`
	Format string `mapstructure:"format"` // csv or xlsx, inferred from the extension when empty
	Sheet  string `mapstructure:"sheet"`  // xlsx only, first sheet when empty
}

func (s Source) format() string {
	if s.Format != "" {
		return strings.ToLower(s.Format)
	}
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	default:
		return FormatCSV
	}
}

// Result is the rows of one or more sources with the data-quality counters.
type Result struct {
	Rows    []entity.LedgerRow
	Quality entity.Quality
}

// Reader turns export files into ledger rows.
type Reader struct {
	cols  Columns
	delim rune
}

func NewReader(c Config) *Reader {
	r := &Reader{cols: c.Columns.merged(), delim: ','}
	if c.Delimiter != "" {
		r.delim = []rune(c.Delimiter)[0]
	}
	return r
}

// records abstracts row access over the supported file formats.
type records interface {
	Next() ([]string, error) // io.EOF after the last row
	Close() error
}

// ReadAll reads every source in order. A missing file or a missing required
// column aborts the read; unparseable cells are counted and coerced.
func (r *Reader) ReadAll(ctx context.Context, sources []Source) (*Result, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("%w: no input files configured", gerr.ErrInputNotFound)
	}
	res := &Result{}
	for _, src := range sources {
		if err := r.read(ctx, src, res); err != nil {
			return nil, err
		}
	}
	if res.Quality.ValueParseErrors > 0 || res.Quality.PeriodParseErrors > 0 {
		slog.Default().WarnContext(ctx, "ledger cells coerced",
			slog.Int("value_parse_errors", res.Quality.ValueParseErrors),
			slog.Int("period_parse_errors", res.Quality.PeriodParseErrors),
		)
	}
	return res, nil
}

// Read reads a single source.
func (r *Reader) Read(ctx context.Context, src Source) (*Result, error) {
	return r.ReadAll(ctx, []Source{src})
}

func (r *Reader) read(ctx context.Context, src Source, res *Result) error {
	if _, err := os.Stat(src.Path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", gerr.ErrInputNotFound, src.Path)
		}
		return fmt.Errorf("stat %s: %w", src.Path, err)
	}

	var (
		recs records
		err  error
	)
	switch f := src.format(); f {
	case FormatCSV:
		recs, err = openCSV(src.Path, r.delim)
	case FormatXLSX:
		recs, err = openXLSX(src.Path, src.Sheet)
	default:
		return fmt.Errorf("unsupported ledger format %q for %s", f, src.Path)
	}
	if err != nil {
		return err
	}
	defer recs.Close()

	header, err := recs.Next()
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %s: no header row", gerr.ErrSchemaMismatch, src.Path)
	}
	if err != nil {
		return fmt.Errorf("read header %s: %w", src.Path, err)
	}
	l, err := resolve(header, r.cols, src.Path)
	if err != nil {
		return err
	}

	line := 1
	for {
		rec, err := recs.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return fmt.Errorf("read %s line %d: %w", src.Path, line, err)
		}
		if line%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if blank(rec) {
			continue
		}
		res.Quality.RowsRead++

		p, err := entity.ParsePeriod(cell(rec, l.period))
		if err != nil {
			res.Quality.PeriodParseErrors++
			continue
		}
		v, ok := ParseAmount(cell(rec, l.value))
		if !ok {
			res.Quality.ValueParseErrors++
		}
		res.Rows = append(res.Rows, entity.LedgerRow{
			Period:      p,
			CountryCode: strings.ToUpper(cell(rec, l.country)),
			BrandCode:   strings.ToUpper(cell(rec, l.brand)),
			StoreCode:   strings.ToUpper(cell(rec, l.store)),
			StoreName:   cell(rec, l.storeName),
			AccountName: cell(rec, l.accountName),
			AccountCode: cell(rec, l.accountCode),
			Value:       v,
			Source:      src.Path,
			Line:        line,
		})
	}
	return nil
}

func blank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
