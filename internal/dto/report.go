package dto

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/jekabolt/grbpwr-pnl/internal/entity"
	"github.com/shopspring/decimal"
)

// Unit controls how figures are scaled and rounded in the document.
type Unit struct {
	Divisor        int64  `mapstructure:"divisor"`
	Label          string `mapstructure:"label"`
	MoneyPrecision int32  `mapstructure:"money_precision"`
	PctPrecision   int32  `mapstructure:"pct_precision"`
	LegacySentinel bool   `mapstructure:"legacy_yoy_sentinel"`
}

// DefaultUnit reports money in thousands with one decimal place.
func DefaultUnit() Unit {
	return Unit{Divisor: 1000, Label: "1K", MoneyPrecision: 1, PctPrecision: 1}
}

type Document struct {
	Metadata       Metadata            `json:"metadata"`
	Summary        Summary             `json:"summary"`
	Categories     map[string]Category `json:"categories"`
	CountrySummary map[string]Country  `json:"country_summary"`
	ExcludedStores []ExcludedStore     `json:"excluded_stores"`
	Quality        Quality             `json:"quality"`
}

type UnitInfo struct {
	Label   string `json:"label"`
	Divisor int64  `json:"divisor"`
}

type Metadata struct {
	Job                 string   `json:"job"`
	Mode                string   `json:"mode"`
	Period              string   `json:"period"`
	PreviousPeriod      string   `json:"previous_period"`
	Periods             []string `json:"periods"`
	PreviousPeriods     []string `json:"previous_periods"`
	Countries           []string `json:"countries"`
	Brands              []string `json:"brands"`
	DirectProfitFormula string   `json:"direct_profit_formula"`
	Unit                UnitInfo `json:"unit"`
	GeneratedAt         string   `json:"generated_at"`
}

type Summary struct {
	StoreCount            int      `json:"store_count"`
	TotalNetSales         float64  `json:"total_net_sales"`
	PreviousTotalNetSales float64  `json:"previous_total_net_sales"`
	TotalDirectProfit     float64  `json:"total_direct_profit"`
	PreviousDirectProfit  float64  `json:"previous_direct_profit"`
	SalesPerStore         float64  `json:"sales_per_store"`
	YOY                   *float64 `json:"yoy"`
	YOYStatus             string   `json:"yoy_status"`
}

type Totals struct {
	Count                int      `json:"count"`
	TotalNetSales        float64  `json:"total_net_sales"`
	PreviousNetSales     float64  `json:"previous_net_sales"`
	TotalDirectProfit    float64  `json:"total_direct_profit"`
	PreviousDirectProfit float64  `json:"previous_direct_profit"`
	AverageYOY           *float64 `json:"avg_yoy"`
	AverageRentLabor     float64  `json:"avg_rent_labor_ratio"`
}

type Category struct {
	Name string `json:"name"`
	Totals
	Stores []Store `json:"stores"`
}

type Country struct {
	Totals
	YOY            *float64       `json:"yoy"`
	YOYStatus      string         `json:"yoy_status"`
	CategoryCounts map[string]int `json:"category_counts"`
}

type Store struct {
	Code                 string             `json:"code"`
	Name                 string             `json:"name"`
	Country              string             `json:"country"`
	Brand                string             `json:"brand"`
	NetSales             float64            `json:"net_sales"`
	PreviousNetSales     float64            `json:"previous_net_sales"`
	TagSales             float64            `json:"tag_sales"`
	GrossProfit          float64            `json:"gross_profit"`
	SellingExpense       float64            `json:"selling_expense"`
	Rent                 float64            `json:"rent"`
	LaborCost            float64            `json:"labor_cost"`
	DirectProfit         float64            `json:"direct_profit"`
	PreviousDirectProfit float64            `json:"previous_direct_profit"`
	RentLaborRatio       float64            `json:"rent_labor_ratio"`
	DiscountRate         float64            `json:"discount_rate"`
	GrossMargin          float64            `json:"gross_margin"`
	CostRatio            float64            `json:"cost_ratio"`
	YOY                  *float64           `json:"yoy"`
	YOYStatus            string             `json:"yoy_status"`
	Category             string             `json:"category"`
	PreviousYOY          *float64           `json:"previous_yoy"`
	PreviousYOYStatus    string             `json:"previous_yoy_status,omitempty"`
	PreviousCategory     string             `json:"previous_category,omitempty"`
	Unmapped             map[string]float64 `json:"unmapped,omitempty"`
}

type ExcludedStore struct {
	Store
	Reason string `json:"reason"`
}

type Quality struct {
	RowsRead          int      `json:"rows_read"`
	RowsUsed          int      `json:"rows_used"`
	ValueParseErrors  int      `json:"value_parse_errors"`
	PeriodParseErrors int      `json:"period_parse_errors"`
	UnmappedRows      int      `json:"unmapped_rows"`
	UnmappedAccounts  []string `json:"unmapped_accounts"`
}

// converter carries the unit through the conversion helpers.
type converter struct {
	u       Unit
	divisor decimal.Decimal
}

func newConverter(u Unit) converter {
	if u.Divisor <= 0 {
		u.Divisor = 1
	}
	return converter{u: u, divisor: decimal.NewFromInt(u.Divisor)}
}

func (c converter) round(v decimal.Decimal) decimal.Decimal {
	return v.Div(c.divisor).Round(c.u.MoneyPrecision)
}

func (c converter) money(v decimal.Decimal) float64 {
	return c.round(v).InexactFloat64()
}

func (c converter) pct(v decimal.Decimal) float64 {
	return v.Round(c.u.PctPrecision).InexactFloat64()
}

func (c converter) yoy(y entity.YOY) (*float64, string) {
	switch {
	case y.Status == "":
		return nil, ""
	case y.Finite():
		v := c.pct(y.Value)
		return &v, string(y.Status)
	case y.Status == entity.YOYNewStatus && c.u.LegacySentinel:
		v := float64(entity.SentinelYOY)
		return &v, string(y.Status)
	}
	return nil, string(y.Status)
}

// ConvertEntityReportToDocument renders a report into its JSON document form.
func ConvertEntityReportToDocument(rep *entity.Report, u Unit) *Document {
	if rep == nil {
		return nil
	}
	c := newConverter(u)
	doc := &Document{
		Metadata:       c.metadata(rep.Metadata),
		Categories:     make(map[string]Category, len(rep.Categories)),
		CountrySummary: make(map[string]Country, len(rep.Countries)),
		ExcludedStores: make([]ExcludedStore, 0, len(rep.Excluded)),
		Quality:        quality(rep.Quality),
	}
	var all []*entity.ClassifiedStore
	byCountry := make(map[string][]*entity.ClassifiedStore)
	for _, cat := range entity.Categories {
		g, ok := rep.Categories[cat]
		if !ok {
			doc.Categories[string(cat)] = Category{Name: entity.DefaultCategoryNames[cat], Stores: []Store{}}
			continue
		}
		stores := make([]Store, 0, len(g.Stores))
		for _, cs := range g.Stores {
			stores = append(stores, c.store(cs))
		}
		doc.Categories[string(cat)] = Category{Name: g.DisplayName, Totals: c.totals(g.GroupTotals, g.Stores), Stores: stores}
		all = append(all, g.Stores...)
		for _, cs := range g.Stores {
			country := cs.Store().Country
			byCountry[country] = append(byCountry[country], cs)
		}
	}
	doc.Summary = c.summary(rep.Summary, all)
	for code, g := range rep.Countries {
		counts := make(map[string]int, len(g.CategoryCounts))
		for k, n := range g.CategoryCounts {
			counts[string(k)] = n
		}
		yoy, status := c.yoy(g.YOY)
		doc.CountrySummary[code] = Country{
			Totals:         c.totals(g.GroupTotals, byCountry[code]),
			YOY:            yoy,
			YOYStatus:      status,
			CategoryCounts: counts,
		}
	}
	for _, ex := range rep.Excluded {
		cs := ex.Store
		doc.ExcludedStores = append(doc.ExcludedStores, ExcludedStore{Store: c.store(&cs), Reason: ex.Reason})
	}
	return doc
}

// Marshal renders the report as indented JSON. The same report and unit always
// produce the same bytes.
func Marshal(rep *entity.Report, u Unit) ([]byte, error) {
	b, err := json.MarshalIndent(ConvertEntityReportToDocument(rep, u), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

func (c converter) metadata(m entity.ReportMetadata) Metadata {
	return Metadata{
		Job:                 m.Job,
		Mode:                string(m.Mode),
		Period:              m.Period.String(),
		PreviousPeriod:      m.PreviousPeriod.String(),
		Periods:             periodsToStrings(m.Periods),
		PreviousPeriods:     periodsToStrings(m.PreviousPeriods),
		Countries:           sortedCopy(m.Countries),
		Brands:              sortedCopy(m.Brands),
		DirectProfitFormula: string(m.DirectProfitFormula),
		Unit:                UnitInfo{Label: c.u.Label, Divisor: c.u.Divisor},
		GeneratedAt:         m.GeneratedAt.UTC().Format(time.RFC3339),
	}
}

func (c converter) summary(s entity.ReportSummary, stores []*entity.ClassifiedStore) Summary {
	sum := c.sums(stores)
	yoy, status := c.yoy(s.YOY)
	out := Summary{
		StoreCount:            s.StoreCount,
		TotalNetSales:         sum.net.InexactFloat64(),
		PreviousTotalNetSales: sum.prevNet.InexactFloat64(),
		TotalDirectProfit:     sum.profit.InexactFloat64(),
		PreviousDirectProfit:  sum.prevProfit.InexactFloat64(),
		YOY:                   yoy,
		YOYStatus:             status,
	}
	if s.StoreCount > 0 {
		out.SalesPerStore = sum.net.Div(decimal.NewFromInt(int64(s.StoreCount))).Round(c.u.MoneyPrecision).InexactFloat64()
	}
	return out
}

// groupSums holds money totals built from the rounded store figures, so a
// group total always equals the sum of the stores listed under it.
type groupSums struct {
	net, prevNet, profit, prevProfit decimal.Decimal
}

func (c converter) sums(stores []*entity.ClassifiedStore) groupSums {
	var s groupSums
	for _, cs := range stores {
		s.net = s.net.Add(c.round(cs.NetSales()))
		s.prevNet = s.prevNet.Add(c.round(cs.PreviousNetSales()))
		s.profit = s.profit.Add(c.round(cs.DirectProfit()))
		s.prevProfit = s.prevProfit.Add(c.round(cs.Previous.DirectProfit()))
	}
	return s
}

func (c converter) totals(t entity.GroupTotals, stores []*entity.ClassifiedStore) Totals {
	sum := c.sums(stores)
	out := Totals{
		Count:                t.Count,
		TotalNetSales:        sum.net.InexactFloat64(),
		PreviousNetSales:     sum.prevNet.InexactFloat64(),
		TotalDirectProfit:    sum.profit.InexactFloat64(),
		PreviousDirectProfit: sum.prevProfit.InexactFloat64(),
		AverageRentLabor:     c.pct(t.AverageRentLabor),
	}
	if t.AverageYOY != nil {
		v := c.pct(*t.AverageYOY)
		out.AverageYOY = &v
	}
	return out
}

func (c converter) store(cs *entity.ClassifiedStore) Store {
	id := cs.Store()
	cur := cs.Current
	der := cur.Derived()
	s := Store{
		Code:                 id.Code,
		Name:                 id.Name,
		Country:              id.Country,
		Brand:                id.Brand,
		NetSales:             c.money(cur.NetSales()),
		PreviousNetSales:     c.money(cs.PreviousNetSales()),
		TagSales:             c.money(cur.Get(entity.MetricTagSales)),
		GrossProfit:          c.money(cur.Get(entity.MetricGrossProfit)),
		SellingExpense:       c.money(cur.Get(entity.MetricSellingExpense)),
		Rent:                 c.money(cur.Get(entity.MetricRent)),
		LaborCost:            c.money(cur.Get(entity.MetricLaborCost)),
		DirectProfit:         c.money(der.DirectProfit),
		PreviousDirectProfit: c.money(cs.Previous.DirectProfit()),
		RentLaborRatio:       c.pct(der.RentLaborRatio),
		DiscountRate:         c.pct(der.DiscountRate),
		GrossMargin:          c.pct(der.GrossMargin),
		CostRatio:            c.pct(der.CostRatio),
		Category:             string(cs.Category),
		PreviousCategory:     string(cs.PreviousCategory),
	}
	s.YOY, s.YOYStatus = c.yoy(cs.YOY)
	s.PreviousYOY, s.PreviousYOYStatus = c.yoy(cs.PreviousYOY)
	if cur != nil && len(cur.Unmapped) > 0 {
		s.Unmapped = make(map[string]float64, len(cur.Unmapped))
		for k, v := range cur.Unmapped {
			s.Unmapped[k] = c.money(v)
		}
	}
	return s
}

func quality(q entity.Quality) Quality {
	accounts := q.UnmappedAccounts
	if accounts == nil {
		accounts = []string{}
	}
	return Quality{
		RowsRead:          q.RowsRead,
		RowsUsed:          q.RowsUsed,
		ValueParseErrors:  q.ValueParseErrors,
		PeriodParseErrors: q.PeriodParseErrors,
		UnmappedRows:      q.UnmappedRows,
		UnmappedAccounts:  accounts,
	}
}

func periodsToStrings(ps []entity.Period) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}
	return out
}

func sortedCopy(vs []string) []string {
	out := make([]string, len(vs))
	copy(out, vs)
	sort.Strings(out)
	return out
}
