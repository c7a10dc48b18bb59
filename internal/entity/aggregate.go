package entity

import (
	"fmt"

	gerr "github.com/jekabolt/grbpwr-pnl/internal/errors"
	"github.com/shopspring/decimal"
)

// StoreIdentity describes a store as seen in the ledger.
type StoreIdentity struct {
	Code    string
	Name    string
	Country string
	Brand   string
}

// Derived holds the figures computed from a store's summed metrics.
type Derived struct {
	DirectProfit   decimal.Decimal
	RentLaborRatio decimal.Decimal
	DiscountRate   decimal.Decimal
	GrossMargin    decimal.Decimal
	CostRatio      decimal.Decimal
}

// StoreAggregate accumulates one store's metrics over a set of periods.
// It is mutable until Finalize and read-only afterwards.
type StoreAggregate struct {
	Store    StoreIdentity
	Periods  []Period
	Sums     map[Metric]decimal.Decimal
	Unmapped map[string]decimal.Decimal
	Rows     int

	derived   Derived
	finalized bool
}

func NewStoreAggregate(store StoreIdentity, periods []Period) *StoreAggregate {
	return &StoreAggregate{
		Store:    store,
		Periods:  periods,
		Sums:     make(map[Metric]decimal.Decimal),
		Unmapped: make(map[string]decimal.Decimal),
	}
}

// Add sums v into metric m.
func (a *StoreAggregate) Add(m Metric, v decimal.Decimal) error {
	if a.finalized {
		return fmt.Errorf("%w: store %s", gerr.ErrFinalized, a.Store.Code)
	}
	a.Sums[m] = a.Sums[m].Add(v)
	return nil
}

// AddUnmapped keeps values of accounts no metric claims, for audit.
func (a *StoreAggregate) AddUnmapped(account string, v decimal.Decimal) error {
	if a.finalized {
		return fmt.Errorf("%w: store %s", gerr.ErrFinalized, a.Store.Code)
	}
	a.Unmapped[account] = a.Unmapped[account].Add(v)
	return nil
}

// Get returns the summed value of m, zero when no row contributed.
func (a *StoreAggregate) Get(m Metric) decimal.Decimal {
	if a == nil {
		return decimal.Zero
	}
	return a.Sums[m]
}

func (a *StoreAggregate) NetSales() decimal.Decimal { return a.Get(MetricNetSales) }

// Finalize freezes the aggregate with its derived figures. Subsequent calls are no-ops.
func (a *StoreAggregate) Finalize(d Derived) {
	if a.finalized {
		return
	}
	a.derived = d
	a.finalized = true
}

func (a *StoreAggregate) Finalized() bool {
	return a != nil && a.finalized
}

// Derived returns the figures set by Finalize. A nil aggregate yields zeros.
func (a *StoreAggregate) Derived() Derived {
	if a == nil {
		return Derived{}
	}
	return a.derived
}

func (a *StoreAggregate) DirectProfit() decimal.Decimal {
	return a.Derived().DirectProfit
}
