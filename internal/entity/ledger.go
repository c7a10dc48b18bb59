package entity

import (
	"github.com/shopspring/decimal"
)

// LedgerRow is one (store, period, account) observation from the accounting export.
// The (period, country, brand, store, account) key is not unique in source data,
// rows sharing it are summed.
type LedgerRow struct {
	Period      Period
	CountryCode string
	BrandCode   string
	StoreCode   string
	StoreName   string
	AccountName string
	AccountCode string
	Value       decimal.Decimal

	// Source and Line locate the row in its export for audit messages.
	Source string
	Line   int
}

// Metric is a canonical financial line item name.
type Metric string

const (
	MetricNetSales        Metric = "net_sales"
	MetricTagSales        Metric = "tag_sales"
	MetricCOGS            Metric = "cogs"
	MetricGrossProfit     Metric = "gross_profit"
	MetricSellingExpense  Metric = "selling_expense"
	MetricRent            Metric = "rent"
	MetricLaborCost       Metric = "labor_cost"
	MetricOperatingProfit Metric = "operating_profit"
	MetricDirectCost      Metric = "direct_cost"
)

// Metrics lists every canonical metric in output order.
var Metrics = []Metric{
	MetricNetSales,
	MetricTagSales,
	MetricCOGS,
	MetricGrossProfit,
	MetricSellingExpense,
	MetricRent,
	MetricLaborCost,
	MetricOperatingProfit,
	MetricDirectCost,
}

func (m Metric) Valid() bool {
	for _, k := range Metrics {
		if k == m {
			return true
		}
	}
	return false
}

// DirectProfitFormula names how direct profit is derived. Source workbooks disagree,
// so the formula is always chosen explicitly and echoed into report metadata.
type DirectProfitFormula string

const (
	// FormulaGrossMinusSelling is gross_profit - selling_expense.
	FormulaGrossMinusSelling DirectProfitFormula = "gross_minus_selling"
	// FormulaGrossMinusDirectCosts is gross_profit - sum of accounts mapped to direct_cost.
	FormulaGrossMinusDirectCosts DirectProfitFormula = "gross_minus_direct_costs"
)

func (f DirectProfitFormula) Valid() bool {
	return f == FormulaGrossMinusSelling || f == FormulaGrossMinusDirectCosts
}
