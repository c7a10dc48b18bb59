package entity

import (
	"fmt"
	"strconv"
	"strings"

	gerr "github.com/jekabolt/grbpwr-pnl/internal/errors"
)

// Period is a reporting month. Ledger exports carry it either as YYYYMM or YYMM,
// both are normalized into this value at the input boundary.
type Period struct {
	Year  int
	Month int
}

// NewPeriod returns a validated period.
func NewPeriod(year, month int) (Period, error) {
	if year < 1900 || year > 9999 {
		return Period{}, fmt.Errorf("%w: year %d out of range", gerr.ErrInvalidPeriod, year)
	}
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: month %d out of range", gerr.ErrInvalidPeriod, month)
	}
	return Period{Year: year, Month: month}, nil
}

// ParsePeriod accepts "202512", "2512", "2025-12", "2025/12", "2025.12" and
// spreadsheet float artefacts such as "202512.0".
func ParsePeriod(s string) (Period, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Period{}, fmt.Errorf("%w: empty", gerr.ErrInvalidPeriod)
	}
	if t := strings.TrimSuffix(raw, ".0"); t != raw && isDigits(t) {
		raw = t
	}

	if i := strings.IndexAny(raw, "-/."); i > 0 {
		ys, ms := raw[:i], raw[i+1:]
		if !isDigits(ys) || !isDigits(ms) {
			return Period{}, fmt.Errorf("%w: %q", gerr.ErrInvalidPeriod, s)
		}
		y, errY := strconv.Atoi(ys)
		m, errM := strconv.Atoi(ms)
		if errY != nil || errM != nil {
			return Period{}, fmt.Errorf("%w: %q", gerr.ErrInvalidPeriod, s)
		}
		if y < 100 {
			y += 2000
		}
		return NewPeriod(y, m)
	}

	if !isDigits(raw) {
		return Period{}, fmt.Errorf("%w: %q", gerr.ErrInvalidPeriod, s)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return Period{}, fmt.Errorf("%w: %q", gerr.ErrInvalidPeriod, s)
	}
	switch len(raw) {
	case 4:
		return NewPeriod(2000+n/100, n%100)
	case 6:
		return NewPeriod(n/100, n%100)
	default:
		return Period{}, fmt.Errorf("%w: %q must be YYMM or YYYYMM", gerr.ErrInvalidPeriod, s)
	}
}

// PeriodFromInt is ParsePeriod for numeric cells.
func PeriodFromInt(n int) (Period, error) {
	return ParsePeriod(strconv.Itoa(n))
}

// MustPeriod panics on invalid input. Intended for tests and constants.
func MustPeriod(s string) Period {
	p, err := ParsePeriod(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Period) String() string {
	return fmt.Sprintf("%04d%02d", p.Year, p.Month)
}

func (p Period) Int() int {
	return p.Year*100 + p.Month
}

func (p Period) IsZero() bool {
	return p.Year == 0 && p.Month == 0
}

// AddMonths shifts the period by n months, n may be negative.
func (p Period) AddMonths(n int) Period {
	idx := p.Year*12 + (p.Month - 1) + n
	return Period{Year: idx / 12, Month: idx%12 + 1}
}

func (p Period) PrevYear() Period {
	return Period{Year: p.Year - 1, Month: p.Month}
}

func (p Period) YearStart() Period {
	return Period{Year: p.Year, Month: 1}
}

// YTD returns every period from January of p's year through p, inclusive.
func (p Period) YTD() []Period {
	out := make([]Period, 0, p.Month)
	for q := p.YearStart(); !q.After(p); q = q.AddMonths(1) {
		out = append(out, q)
	}
	return out
}

func (p Period) Before(o Period) bool { return p.Int() < o.Int() }

func (p Period) After(o Period) bool { return p.Int() > o.Int() }

// MarshalText keeps periods readable as map keys and in config.
func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Period) UnmarshalText(b []byte) error {
	v, err := ParsePeriod(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// PeriodSet is a membership set of periods.
type PeriodSet map[Period]struct{}

func NewPeriodSet(ps ...Period) PeriodSet {
	s := make(PeriodSet, len(ps))
	for _, p := range ps {
		s[p] = struct{}{}
	}
	return s
}

func (s PeriodSet) Has(p Period) bool {
	_, ok := s[p]
	return ok
}

// ReportMode selects single-month or year-to-date aggregation.
type ReportMode string

const (
	ModeMonth ReportMode = "month"
	ModeYTD   ReportMode = "ytd"
)

// Periods expands the anchor period into the set of months aggregated for the mode.
func (m ReportMode) Periods(anchor Period) []Period {
	if m == ModeYTD {
		return anchor.YTD()
	}
	return []Period{anchor}
}

func (m ReportMode) Valid() bool {
	return m == ModeMonth || m == ModeYTD
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
