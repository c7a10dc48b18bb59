package pipeline

import (
	"github.com/jekabolt/grbpwr-pnl/internal/entity"
	"github.com/shopspring/decimal"
)

// Classify buckets a store: positive direct profit is the profit branch, a YOY
// of 100 or more is the improving branch. Exactly 100 counts as improving.
func Classify(directProfit, yoy decimal.Decimal) entity.Category {
	improving := yoy.GreaterThanOrEqual(hundred)
	if directProfit.IsPositive() {
		if improving {
			return entity.CategoryProfitImproving
		}
		return entity.CategoryProfitDeteriorating
	}
	if improving {
		return entity.CategoryLossImproving
	}
	return entity.CategoryLossDeteriorating
}

// ClassifyStore classifies an aggregate against its comparison base.
func ClassifyStore(current, base *entity.StoreAggregate) (entity.YOY, entity.Category) {
	y := CompareYOY(current.NetSales(), base.NetSales())
	return y, Classify(current.DirectProfit(), y.Percent())
}
