package pipeline

import (
	"testing"

	"github.com/jekabolt/grbpwr-pnl/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCompareYOY(t *testing.T) {
	tests := []struct {
		name    string
		cur     string
		prev    string
		status  entity.YOYStatus
		percent string
		finite  bool
	}{
		{"growth", "5000", "4000", entity.YOYFiniteStatus, "125", true},
		{"decline", "3000", "4000", entity.YOYFiniteStatus, "75", true},
		{"new store", "100", "0", entity.YOYNewStatus, "1000", false},
		{"no activity", "0", "0", entity.YOYNoneStatus, "0", false},
		{"discontinued", "0", "250", entity.YOYDiscontinuedStatus, "0", true},
		{"negative base", "-50", "-100", entity.YOYFiniteStatus, "50", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y := CompareYOY(d(tt.cur), d(tt.prev))
			assert.Equal(t, tt.status, y.Status)
			assert.Equal(t, tt.finite, y.Finite())
			assert.True(t, y.Percent().Equal(d(tt.percent)), y.Percent().String())
		})
	}
}

func TestRatio_ZeroDenominator(t *testing.T) {
	assert.True(t, Ratio(d("10"), decimal.Zero).IsZero())
	assert.True(t, Ratio(d("25"), d("200")).Equal(d("12.5")))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		profit string
		yoy    string
		want   entity.Category
	}{
		{"200", "125", entity.CategoryProfitImproving},
		{"200", "100", entity.CategoryProfitImproving},
		{"200", "99.9", entity.CategoryProfitDeteriorating},
		{"0", "130", entity.CategoryLossImproving},
		{"-1", "80", entity.CategoryLossDeteriorating},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(d(tt.profit), d(tt.yoy)), "%s/%s", tt.profit, tt.yoy)
	}
}

func TestDerive(t *testing.T) {
	a := entity.NewStoreAggregate(entity.StoreIdentity{Code: "A01"}, nil)
	for m, v := range map[entity.Metric]string{
		entity.MetricNetSales:       "800",
		entity.MetricTagSales:       "1000",
		entity.MetricGrossProfit:    "400",
		entity.MetricSellingExpense: "300",
		entity.MetricRent:           "80",
		entity.MetricLaborCost:      "120",
		entity.MetricDirectCost:     "150",
	} {
		assert.NoError(t, a.Add(m, d(v)))
	}

	got := Derive(a, entity.FormulaGrossMinusSelling)
	assert.True(t, got.DirectProfit.Equal(d("100")))
	assert.True(t, got.RentLaborRatio.Equal(d("25")))
	assert.True(t, got.DiscountRate.Equal(d("20")))
	assert.True(t, got.GrossMargin.Equal(d("50")))
	assert.True(t, got.CostRatio.Equal(d("37.5")))

	alt := Derive(a, entity.FormulaGrossMinusDirectCosts)
	assert.True(t, alt.DirectProfit.Equal(d("250")))
}
