package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Report is the assembled result of one pipeline run.
type Report struct {
	Metadata   ReportMetadata
	Summary    ReportSummary
	Categories map[Category]*CategoryGroup
	Countries  map[string]*CountryGroup
	Excluded   []ExcludedStore
	Quality    Quality
}

type ReportMetadata struct {
	Job                 string
	Mode                ReportMode
	Period              Period
	PreviousPeriod      Period
	Periods             []Period
	PreviousPeriods     []Period
	Countries           []string
	Brands              []string
	DirectProfitFormula DirectProfitFormula
	GeneratedAt         time.Time
}

type ReportSummary struct {
	StoreCount            int
	TotalNetSales         decimal.Decimal
	PreviousTotalNetSales decimal.Decimal
	TotalDirectProfit     decimal.Decimal
	PreviousDirectProfit  decimal.Decimal
	SalesPerStore         decimal.Decimal
	YOY                   YOY
}

// GroupTotals are the figures shared by category and country groups.
type GroupTotals struct {
	Count                int
	TotalNetSales        decimal.Decimal
	TotalDirectProfit    decimal.Decimal
	AverageYOY           *decimal.Decimal
	AverageRentLabor     decimal.Decimal
	PreviousNetSales     decimal.Decimal
	PreviousDirectProfit decimal.Decimal
}

type CategoryGroup struct {
	Category    Category
	DisplayName string
	GroupTotals
	Stores []*ClassifiedStore
}

type CountryGroup struct {
	Country string
	GroupTotals
	YOY            YOY
	CategoryCounts map[Category]int
}

// Quality counts recoverable input problems of a run.
type Quality struct {
	RowsRead          int
	RowsUsed          int
	ValueParseErrors  int
	PeriodParseErrors int
	UnmappedRows      int
	UnmappedAccounts  []string
}

// HasWarnings reports whether any recoverable problem was seen.
func (q Quality) HasWarnings() bool {
	return q.ValueParseErrors > 0 || q.PeriodParseErrors > 0 || q.UnmappedRows > 0
}
