package entity

import (
	"github.com/shopspring/decimal"
)

// Category is the profitability quadrant of a store.
type Category string

const (
	CategoryNone                Category = ""
	CategoryProfitImproving     Category = "profit_improving"
	CategoryProfitDeteriorating Category = "profit_deteriorating"
	CategoryLossImproving       Category = "loss_improving"
	CategoryLossDeteriorating   Category = "loss_deteriorating"
)

// Categories lists the four quadrants in display order.
var Categories = []Category{
	CategoryProfitImproving,
	CategoryProfitDeteriorating,
	CategoryLossImproving,
	CategoryLossDeteriorating,
}

// DefaultCategoryNames are the display names used when config gives none.
var DefaultCategoryNames = map[Category]string{
	CategoryProfitImproving:     "Profit, improving",
	CategoryProfitDeteriorating: "Profit, deteriorating",
	CategoryLossImproving:       "Loss, improving",
	CategoryLossDeteriorating:   "Loss, deteriorating",
}

func (c Category) Valid() bool {
	for _, k := range Categories {
		if k == c {
			return true
		}
	}
	return false
}

// ClassifiedStore is a finalized store aggregate with its comparison and quadrants.
type ClassifiedStore struct {
	Current  *StoreAggregate
	Previous *StoreAggregate

	YOY      YOY
	Category Category

	PreviousYOY      YOY
	PreviousCategory Category
}

func (c *ClassifiedStore) Store() StoreIdentity {
	if c.Current != nil {
		return c.Current.Store
	}
	return c.Previous.Store
}

func (c *ClassifiedStore) NetSales() decimal.Decimal { return c.Current.NetSales() }

func (c *ClassifiedStore) PreviousNetSales() decimal.Decimal { return c.Previous.NetSales() }

func (c *ClassifiedStore) DirectProfit() decimal.Decimal { return c.Current.DirectProfit() }

// ExcludedStore is a store reported outside the quadrants, e.g. closed for renovation.
type ExcludedStore struct {
	Store  ClassifiedStore
	Reason string
}
