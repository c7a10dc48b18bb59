package pipeline

import (
	"strings"

	"github.com/jekabolt/grbpwr-pnl/internal/entity"
)

// StoresConfig is the [stores] section: which store codes never take part in
// store-level aggregation and which are reported apart for a reason.
type StoresConfig struct {
	HeadOffice          []string             `mapstructure:"head_office"`
	Online              []string             `mapstructure:"online"`
	ExcludeSuffixes     []string             `mapstructure:"exclude_suffixes"`
	TemporaryExclusions []TemporaryExclusion `mapstructure:"temporary_exclusions"`
}

// TemporaryExclusion moves a store out of the quadrants, e.g. during renovation.
// Periods restricts it to the listed report periods; empty means always.
type TemporaryExclusion struct {
	Code    string   `mapstructure:"code"`
	Reason  string   `mapstructure:"reason"`
	Periods []string `mapstructure:"periods"`
}

// DefaultStoresConfig holds the head office and online channel codes of the standard chart.
func DefaultStoresConfig() StoresConfig {
	return StoresConfig{
		HeadOffice: []string{"M99", "H99"},
		Online:     []string{"HE1", "HE2", "XE1"},
	}
}

// Filter selects ledger rows for store-level aggregation.
// Empty country or brand sets do not restrict.
type Filter struct {
	Countries        map[string]struct{}
	Brands           map[string]struct{}
	Periods          entity.PeriodSet
	ExcludedStores   map[string]struct{}
	ExcludedSuffixes []string
}

func NewFilter(countries, brands []string, periods []entity.Period, stores StoresConfig) Filter {
	excluded := upperSet(stores.HeadOffice)
	for k := range upperSet(stores.Online) {
		excluded[k] = struct{}{}
	}
	suffixes := make([]string, 0, len(stores.ExcludeSuffixes))
	for _, s := range stores.ExcludeSuffixes {
		if s = strings.ToUpper(strings.TrimSpace(s)); s != "" {
			suffixes = append(suffixes, s)
		}
	}
	return Filter{
		Countries:        upperSet(countries),
		Brands:           upperSet(brands),
		Periods:          entity.NewPeriodSet(periods...),
		ExcludedStores:   excluded,
		ExcludedSuffixes: suffixes,
	}
}

// Match reports whether r satisfies every predicate of the filter.
func (f Filter) Match(r entity.LedgerRow) bool {
	if r.StoreCode == "" {
		return false
	}
	if len(f.Countries) > 0 {
		if _, ok := f.Countries[r.CountryCode]; !ok {
			return false
		}
	}
	if len(f.Brands) > 0 {
		if _, ok := f.Brands[r.BrandCode]; !ok {
			return false
		}
	}
	if len(f.Periods) > 0 && !f.Periods.Has(r.Period) {
		return false
	}
	if f.Excluded(r.StoreCode) {
		return false
	}
	return true
}

// Excluded reports whether a store code is a head office or online channel code.
func (f Filter) Excluded(code string) bool {
	if _, ok := f.ExcludedStores[code]; ok {
		return true
	}
	for _, s := range f.ExcludedSuffixes {
		if strings.HasSuffix(code, s) {
			return true
		}
	}
	return false
}

// Apply returns the matching rows in input order.
func (f Filter) Apply(rows []entity.LedgerRow) []entity.LedgerRow {
	out := make([]entity.LedgerRow, 0, len(rows))
	for _, r := range rows {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

func upperSet(vs []string) map[string]struct{} {
	s := make(map[string]struct{}, len(vs))
	for _, v := range vs {
		if v = strings.ToUpper(strings.TrimSpace(v)); v != "" {
			s[v] = struct{}{}
		}
	}
	return s
}
