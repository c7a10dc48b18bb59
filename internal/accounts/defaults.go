package accounts

import "github.com/jekabolt/grbpwr-pnl/internal/entity"

// DefaultConfig is the mapping shipped for the standard store P&L export.
// Salary sub-accounts (bonus, severance) count as labor cost, and rent and
// labor are also part of selling expense in the ledger hierarchy.
func DefaultConfig() Config {
	return Config{
		string(entity.MetricNetSales): {
			Names: []string{"net sales", "net sale", "actual sales", "sales (net)"},
			Codes: []string{"4100"},
		},
		string(entity.MetricTagSales): {
			Names: []string{"tag sales", "gross sales", "tag price sales"},
			Codes: []string{"4000"},
		},
		string(entity.MetricCOGS): {
			Names: []string{"cogs", "cost of goods sold", "cost of sales"},
			Codes: []string{"5000"},
		},
		string(entity.MetricGrossProfit): {
			Names: []string{"gross profit"},
			Codes: []string{"5900"},
		},
		string(entity.MetricSellingExpense): {
			Names: []string{"selling expense", "selling expenses", "selling & admin expense"},
			Codes: []string{"6000"},
		},
		string(entity.MetricRent): {
			Names: []string{"rent", "rental expense", "store rent", "6. rent"},
			Codes: []string{"6200"},
		},
		string(entity.MetricLaborCost): {
			Names: []string{"salary", "salaries", "labor cost", "1. salary", "bonus", "severance pay", "retirement benefits"},
			Codes: []string{"6100", "6110", "6120"},
		},
		string(entity.MetricOperatingProfit): {
			Names: []string{"operating profit", "operating income"},
			Codes: []string{"7000"},
		},
	}
}

// Default returns the dictionary built from DefaultConfig.
func Default() *Dictionary {
	return MustNew(DefaultConfig())
}
