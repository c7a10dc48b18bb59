package pipeline

import (
	"fmt"
	"sort"

	"github.com/jekabolt/grbpwr-pnl/internal/accounts"
	"github.com/jekabolt/grbpwr-pnl/internal/entity"
)

// Aggregation is the per-store result of summing ledger rows over a period set.
type Aggregation struct {
	Periods          []entity.Period
	Stores           map[string]*entity.StoreAggregate
	UnmappedRows     int
	UnmappedAccounts map[string]struct{}
}

// Aggregate sums row values per (store, metric) over periods. Rows outside the
// periods are skipped; rows whose account maps to no metric land in the store's
// unmapped bucket.
func Aggregate(rows []entity.LedgerRow, dict *accounts.Dictionary, periods []entity.Period) (*Aggregation, error) {
	want := entity.NewPeriodSet(periods...)
	agg := &Aggregation{
		Periods:          periods,
		Stores:           make(map[string]*entity.StoreAggregate),
		UnmappedAccounts: make(map[string]struct{}),
	}
	for _, r := range rows {
		if !want.Has(r.Period) {
			continue
		}
		sa, ok := agg.Stores[r.StoreCode]
		if !ok {
			sa = entity.NewStoreAggregate(entity.StoreIdentity{
				Code:    r.StoreCode,
				Name:    r.StoreName,
				Country: r.CountryCode,
				Brand:   r.BrandCode,
			}, periods)
			agg.Stores[r.StoreCode] = sa
		}
		if sa.Store.Name == "" {
			sa.Store.Name = r.StoreName
		}
		sa.Rows++

		metrics := dict.Lookup(r.AccountName, r.AccountCode)
		if len(metrics) == 0 {
			agg.UnmappedRows++
			agg.UnmappedAccounts[r.AccountName] = struct{}{}
			if err := sa.AddUnmapped(r.AccountName, r.Value); err != nil {
				return nil, fmt.Errorf("%s line %d: %w", r.Source, r.Line, err)
			}
			continue
		}
		for _, m := range metrics {
			if err := sa.Add(m, r.Value); err != nil {
				return nil, fmt.Errorf("%s line %d: %w", r.Source, r.Line, err)
			}
		}
	}
	return agg, nil
}

// Get returns the aggregate of a store, nil when it had no rows.
func (a *Aggregation) Get(code string) *entity.StoreAggregate {
	if a == nil {
		return nil
	}
	return a.Stores[code]
}

func (a *Aggregation) unmappedList() []string {
	out := make([]string, 0, len(a.UnmappedAccounts))
	for k := range a.UnmappedAccounts {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
