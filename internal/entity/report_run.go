package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportRunNew is a rendered report about to be archived.
type ReportRunNew struct {
	Job               string
	Mode              ReportMode
	Period            Period
	PreviousPeriod    Period
	GeneratedAt       time.Time
	StoreCount        int
	TotalNetSales     decimal.Decimal
	TotalDirectProfit decimal.Decimal
	ValueParseErrors  int
	UnmappedRows      int
	Document          []byte
}

// ReportRun is an archived report. Document is empty in listings.
type ReportRun struct {
	ID                int             `db:"id"`
	UUID              string          `db:"uuid"`
	Job               string          `db:"job"`
	Mode              string          `db:"mode"`
	Period            int             `db:"period"`
	PreviousPeriod    int             `db:"previous_period"`
	GeneratedAt       time.Time       `db:"generated_at"`
	StoreCount        int             `db:"store_count"`
	TotalNetSales     decimal.Decimal `db:"total_net_sales"`
	TotalDirectProfit decimal.Decimal `db:"total_direct_profit"`
	ValueParseErrors  int             `db:"value_parse_errors"`
	UnmappedRows      int             `db:"unmapped_rows"`
	Checksum          string          `db:"checksum"`
	Document          []byte          `db:"document"`
	CreatedAt         time.Time       `db:"created_at"`
}

// NewReportRun summarizes a report and its rendered document for the archive.
func NewReportRun(rep *Report, doc []byte) *ReportRunNew {
	return &ReportRunNew{
		Job:               rep.Metadata.Job,
		Mode:              rep.Metadata.Mode,
		Period:            rep.Metadata.Period,
		PreviousPeriod:    rep.Metadata.PreviousPeriod,
		GeneratedAt:       rep.Metadata.GeneratedAt,
		StoreCount:        rep.Summary.StoreCount,
		TotalNetSales:     rep.Summary.TotalNetSales,
		TotalDirectProfit: rep.Summary.TotalDirectProfit,
		ValueParseErrors:  rep.Quality.ValueParseErrors,
		UnmappedRows:      rep.Quality.UnmappedRows,
		Document:          doc,
	}
}
