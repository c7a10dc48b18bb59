package pipeline

import (
	"github.com/jekabolt/grbpwr-pnl/internal/entity"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Ratio returns num/den*100, or 0 when den is zero.
func Ratio(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den).Mul(hundred)
}

// DirectProfit applies the configured formula to a store's sums.
func DirectProfit(a *entity.StoreAggregate, f entity.DirectProfitFormula) decimal.Decimal {
	gp := a.Get(entity.MetricGrossProfit)
	if f == entity.FormulaGrossMinusDirectCosts {
		return gp.Sub(a.Get(entity.MetricDirectCost))
	}
	return gp.Sub(a.Get(entity.MetricSellingExpense))
}

// Derive computes the derived figures of an aggregate without finalizing it.
func Derive(a *entity.StoreAggregate, f entity.DirectProfitFormula) entity.Derived {
	net := a.Get(entity.MetricNetSales)
	tag := a.Get(entity.MetricTagSales)
	return entity.Derived{
		DirectProfit:   DirectProfit(a, f),
		RentLaborRatio: Ratio(a.Get(entity.MetricRent).Add(a.Get(entity.MetricLaborCost)), net),
		DiscountRate:   Ratio(tag.Sub(net), tag),
		GrossMargin:    Ratio(a.Get(entity.MetricGrossProfit), net),
		CostRatio:      Ratio(a.Get(entity.MetricSellingExpense), net),
	}
}

// FinalizeAll derives and freezes every aggregate of agg.
func FinalizeAll(agg *Aggregation, f entity.DirectProfitFormula) {
	for _, sa := range agg.Stores {
		sa.Finalize(Derive(sa, f))
	}
}
