package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jekabolt/grbpwr-pnl/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testReport() *entity.Report {
	cur := entity.NewStoreAggregate(entity.StoreIdentity{Code: "A01", Name: "Causeway Bay", Country: "HK", Brand: "M"}, nil)
	_ = cur.Add(entity.MetricNetSales, decimal.NewFromInt(5000))
	_ = cur.Add(entity.MetricGrossProfit, decimal.NewFromInt(1500))
	_ = cur.AddUnmapped("misc income", decimal.NewFromInt(5))
	cur.Finalize(entity.Derived{DirectProfit: decimal.NewFromInt(200), GrossMargin: decimal.RequireFromString("30.04")})
	prev := entity.NewStoreAggregate(cur.Store, nil)
	_ = prev.Add(entity.MetricNetSales, decimal.NewFromInt(4000))
	prev.Finalize(entity.Derived{})

	cs := &entity.ClassifiedStore{
		Current:  cur,
		Previous: prev,
		YOY:      entity.YOYFinite(decimal.NewFromInt(125)),
		Category: entity.CategoryProfitImproving,
	}
	fresh := entity.NewStoreAggregate(entity.StoreIdentity{Code: "A02", Country: "HK"}, nil)
	_ = fresh.Add(entity.MetricNetSales, decimal.NewFromInt(10))
	fresh.Finalize(entity.Derived{})
	newStore := &entity.ClassifiedStore{Current: fresh, YOY: entity.YOYNew(), Category: entity.CategoryLossImproving}

	avg := decimal.NewFromInt(125)
	rep := &entity.Report{
		Metadata: entity.ReportMetadata{
			Job:                 "hk",
			Mode:                entity.ModeMonth,
			Period:              entity.MustPeriod("202512"),
			PreviousPeriod:      entity.MustPeriod("202412"),
			Periods:             []entity.Period{entity.MustPeriod("202512")},
			Countries:           []string{"MC", "HK"},
			DirectProfitFormula: entity.FormulaGrossMinusSelling,
			GeneratedAt:         time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		},
		Summary: entity.ReportSummary{
			StoreCount:    2,
			TotalNetSales: decimal.NewFromInt(5010),
			YOY:           entity.YOYFinite(decimal.RequireFromString("125.25")),
		},
		Categories: map[entity.Category]*entity.CategoryGroup{
			entity.CategoryProfitImproving: {
				Category:    entity.CategoryProfitImproving,
				DisplayName: "Stars",
				GroupTotals: entity.GroupTotals{Count: 1, TotalNetSales: decimal.NewFromInt(5000), AverageYOY: &avg},
				Stores:      []*entity.ClassifiedStore{cs},
			},
			entity.CategoryLossImproving: {
				Category:    entity.CategoryLossImproving,
				GroupTotals: entity.GroupTotals{Count: 1, TotalNetSales: decimal.NewFromInt(10)},
				Stores:      []*entity.ClassifiedStore{newStore},
			},
		},
		Countries: map[string]*entity.CountryGroup{
			"HK": {Country: "HK", GroupTotals: entity.GroupTotals{Count: 2}, YOY: entity.YOYNone(),
				CategoryCounts: map[entity.Category]int{entity.CategoryProfitImproving: 1, entity.CategoryLossImproving: 1}},
		},
		Quality: entity.Quality{RowsRead: 4, RowsUsed: 4, UnmappedRows: 1, UnmappedAccounts: []string{"misc income"}},
	}
	return rep
}

func TestConvertEntityReportToDocument(t *testing.T) {
	doc := ConvertEntityReportToDocument(testReport(), DefaultUnit())
	require.NotNil(t, doc)

	assert.Equal(t, "202512", doc.Metadata.Period)
	assert.Equal(t, []string{"HK", "MC"}, doc.Metadata.Countries)
	assert.Equal(t, "2026-01-02T03:04:05Z", doc.Metadata.GeneratedAt)
	assert.Equal(t, "1K", doc.Metadata.Unit.Label)
	assert.Equal(t, "gross_minus_selling", doc.Metadata.DirectProfitFormula)

	require.Len(t, doc.Categories, 4)
	pi := doc.Categories["profit_improving"]
	assert.Equal(t, "Stars", pi.Name)
	require.Len(t, pi.Stores, 1)
	s := pi.Stores[0]
	assert.Equal(t, 5.0, s.NetSales)
	assert.Equal(t, 4.0, s.PreviousNetSales)
	assert.Equal(t, 0.2, s.DirectProfit)
	assert.Equal(t, 30.0, s.GrossMargin)
	require.NotNil(t, s.YOY)
	assert.Equal(t, 125.0, *s.YOY)
	assert.Equal(t, "finite", s.YOYStatus)
	assert.Nil(t, s.PreviousYOY)
	assert.Equal(t, map[string]float64{"misc income": 0}, s.Unmapped)
	require.NotNil(t, pi.AverageYOY)
	assert.Equal(t, 125.0, *pi.AverageYOY)

	li := doc.Categories["loss_improving"].Stores[0]
	assert.Nil(t, li.YOY)
	assert.Equal(t, "new", li.YOYStatus)

	empty := doc.Categories["loss_deteriorating"]
	assert.NotNil(t, empty.Stores)
	assert.Zero(t, empty.Count)

	require.NotNil(t, doc.Summary.YOY)
	assert.Equal(t, 125.3, *doc.Summary.YOY)
	assert.Nil(t, doc.CountrySummary["HK"].YOY)
	assert.Equal(t, "none", doc.CountrySummary["HK"].YOYStatus)
	assert.Equal(t, 0, doc.CountrySummary["HK"].CategoryCounts["loss_deteriorating"])
}

func TestConvert_LegacySentinel(t *testing.T) {
	u := DefaultUnit()
	u.LegacySentinel = true
	doc := ConvertEntityReportToDocument(testReport(), u)
	li := doc.Categories["loss_improving"].Stores[0]
	require.NotNil(t, li.YOY)
	assert.Equal(t, float64(entity.SentinelYOY), *li.YOY)
	assert.Equal(t, "new", li.YOYStatus)
}

func TestMarshal_Deterministic(t *testing.T) {
	a, err := Marshal(testReport(), DefaultUnit())
	require.NoError(t, err)
	b, err := Marshal(testReport(), DefaultUnit())
	require.NoError(t, err)
	assert.Equal(t, a, b)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(a, &raw))
	for _, k := range []string{"metadata", "summary", "categories", "country_summary", "excluded_stores", "quality"} {
		assert.Contains(t, raw, k)
	}
	assert.JSONEq(t, "[]", string(raw["excluded_stores"]))
}

func TestConvert_Nil(t *testing.T) {
	assert.Nil(t, ConvertEntityReportToDocument(nil, DefaultUnit()))
}

func TestConvert_TotalsMatchRoundedStores(t *testing.T) {
	var (
		stores []*entity.ClassifiedStore
		net    = decimal.Zero
	)
	for _, code := range []string{"H01", "H02", "H03"} {
		a := entity.NewStoreAggregate(entity.StoreIdentity{Code: code, Country: "HK"}, nil)
		_ = a.Add(entity.MetricNetSales, decimal.NewFromInt(40))
		_ = a.Add(entity.MetricGrossProfit, decimal.NewFromInt(10))
		a.Finalize(entity.Derived{DirectProfit: decimal.NewFromInt(10)})
		stores = append(stores, &entity.ClassifiedStore{Current: a, YOY: entity.YOYNew(), Category: entity.CategoryProfitImproving})
		net = net.Add(decimal.NewFromInt(40))
	}
	gt := entity.GroupTotals{Count: 3, TotalNetSales: net, TotalDirectProfit: decimal.NewFromInt(30)}
	rep := &entity.Report{
		Summary: entity.ReportSummary{StoreCount: 3, TotalNetSales: net, TotalDirectProfit: decimal.NewFromInt(30)},
		Categories: map[entity.Category]*entity.CategoryGroup{
			entity.CategoryProfitImproving: {Category: entity.CategoryProfitImproving, GroupTotals: gt, Stores: stores},
		},
		Countries: map[string]*entity.CountryGroup{
			"HK": {Country: "HK", GroupTotals: gt, YOY: entity.YOYNew()},
		},
	}

	doc := ConvertEntityReportToDocument(rep, DefaultUnit())

	var netSum, profitSum float64
	for _, cat := range doc.Categories {
		var catNet float64
		for _, s := range cat.Stores {
			catNet += s.NetSales
			netSum += s.NetSales
			profitSum += s.DirectProfit
		}
		assert.InDelta(t, catNet, cat.TotalNetSales, 1e-9)
	}
	assert.InDelta(t, netSum, doc.Summary.TotalNetSales, 1e-9)
	assert.InDelta(t, profitSum, doc.Summary.TotalDirectProfit, 1e-9)
	assert.InDelta(t, netSum, doc.CountrySummary["HK"].TotalNetSales, 1e-9)
	assert.Zero(t, doc.Summary.TotalNetSales)
	assert.Zero(t, doc.Summary.SalesPerStore)
}
