package pipeline

import (
	"sort"
	"strings"

	"github.com/jekabolt/grbpwr-pnl/internal/entity"
	"github.com/shopspring/decimal"
)

// Assembler groups classified stores into the report document.
type Assembler struct {
	names      map[entity.Category]string
	exclusions map[string][]TemporaryExclusion
}

// NewAssembler builds an assembler. names overrides the default display name of
// a category keyed by its identifier.
func NewAssembler(names map[string]string, exclusions []TemporaryExclusion) *Assembler {
	a := &Assembler{
		names:      make(map[entity.Category]string, len(entity.Categories)),
		exclusions: make(map[string][]TemporaryExclusion),
	}
	for c, n := range entity.DefaultCategoryNames {
		a.names[c] = n
	}
	for k, n := range names {
		if c := entity.Category(k); c.Valid() && n != "" {
			a.names[c] = n
		}
	}
	for _, e := range exclusions {
		code := strings.ToUpper(strings.TrimSpace(e.Code))
		a.exclusions[code] = append(a.exclusions[code], e)
	}
	return a
}

// exclusion returns the reason a store is set aside for period p.
func (a *Assembler) exclusion(code string, p entity.Period) (string, bool) {
	for _, e := range a.exclusions[code] {
		if len(e.Periods) == 0 {
			return e.Reason, true
		}
		for _, s := range e.Periods {
			if ep, err := entity.ParsePeriod(s); err == nil && ep == p {
				return e.Reason, true
			}
		}
	}
	return "", false
}

// Assemble classifies every store seen in the current or comparison aggregation
// and builds the grouped report. Stores without net sales on both sides are
// dropped as non-operating unless explicitly excluded, in which case they are
// listed with their reason. prevPrev is the baseline for the previous-period
// classification and may be nil.
func (a *Assembler) Assemble(meta entity.ReportMetadata, cur, prev, prevPrev *Aggregation) *entity.Report {
	if cur == nil {
		cur = &Aggregation{Periods: meta.Periods}
	}
	rep := &entity.Report{
		Metadata:   meta,
		Categories: make(map[entity.Category]*entity.CategoryGroup, len(entity.Categories)),
		Countries:  make(map[string]*entity.CountryGroup),
	}
	for _, c := range entity.Categories {
		rep.Categories[c] = &entity.CategoryGroup{Category: c, DisplayName: a.names[c]}
	}

	var stores []*entity.ClassifiedStore
	for _, code := range unionCodes(cur, prev) {
		c, p := cur.Get(code), prev.Get(code)
		reason, excluded := a.exclusion(code, meta.Period)
		if !excluded && c.NetSales().IsZero() && p.NetSales().IsZero() {
			continue
		}
		if c == nil {
			c = entity.NewStoreAggregate(p.Store, cur.Periods)
			c.Finalize(entity.Derived{})
		}
		cs := &entity.ClassifiedStore{Current: c, Previous: p}
		cs.YOY, cs.Category = ClassifyStore(c, p)
		if p != nil && p.Rows > 0 {
			cs.PreviousYOY, cs.PreviousCategory = ClassifyStore(p, prevPrev.Get(code))
		}

		if excluded {
			cs.Category = entity.CategoryNone
			rep.Excluded = append(rep.Excluded, entity.ExcludedStore{Store: *cs, Reason: reason})
			continue
		}
		stores = append(stores, cs)
	}

	byCountry := make(map[string][]*entity.ClassifiedStore)
	for _, cs := range stores {
		g := rep.Categories[cs.Category]
		g.Stores = append(g.Stores, cs)
		country := cs.Store().Country
		byCountry[country] = append(byCountry[country], cs)
	}
	for _, g := range rep.Categories {
		sortStores(g.Stores)
		g.GroupTotals = totals(g.Stores)
	}
	for country, list := range byCountry {
		cg := &entity.CountryGroup{
			Country:        country,
			GroupTotals:    totals(list),
			CategoryCounts: make(map[entity.Category]int, len(entity.Categories)),
		}
		for _, c := range entity.Categories {
			cg.CategoryCounts[c] = 0
		}
		for _, cs := range list {
			cg.CategoryCounts[cs.Category]++
		}
		cg.YOY = CompareYOY(cg.TotalNetSales, cg.PreviousNetSales)
		rep.Countries[country] = cg
	}

	all := totals(stores)
	rep.Summary = entity.ReportSummary{
		StoreCount:            all.Count,
		TotalNetSales:         all.TotalNetSales,
		PreviousTotalNetSales: all.PreviousNetSales,
		TotalDirectProfit:     all.TotalDirectProfit,
		PreviousDirectProfit:  all.PreviousDirectProfit,
		YOY:                   CompareYOY(all.TotalNetSales, all.PreviousNetSales),
	}
	if all.Count > 0 {
		rep.Summary.SalesPerStore = all.TotalNetSales.Div(decimal.NewFromInt(int64(all.Count)))
	}

	sort.Slice(rep.Excluded, func(i, j int) bool {
		return rep.Excluded[i].Store.Store().Code < rep.Excluded[j].Store.Store().Code
	})
	return rep
}

func totals(list []*entity.ClassifiedStore) entity.GroupTotals {
	t := entity.GroupTotals{Count: len(list)}
	var (
		yoySum    decimal.Decimal
		yoyCount  int64
		rentLabor decimal.Decimal
	)
	for _, cs := range list {
		t.TotalNetSales = t.TotalNetSales.Add(cs.NetSales())
		t.TotalDirectProfit = t.TotalDirectProfit.Add(cs.DirectProfit())
		t.PreviousNetSales = t.PreviousNetSales.Add(cs.PreviousNetSales())
		t.PreviousDirectProfit = t.PreviousDirectProfit.Add(cs.Previous.DirectProfit())
		rentLabor = rentLabor.Add(cs.Current.Derived().RentLaborRatio)
		if cs.YOY.Finite() {
			yoySum = yoySum.Add(cs.YOY.Value)
			yoyCount++
		}
	}
	if yoyCount > 0 {
		avg := yoySum.Div(decimal.NewFromInt(yoyCount))
		t.AverageYOY = &avg
	}
	if t.Count > 0 {
		t.AverageRentLabor = rentLabor.Div(decimal.NewFromInt(int64(t.Count)))
	}
	return t
}

// sortStores orders by direct profit descending, then store code.
func sortStores(list []*entity.ClassifiedStore) {
	sort.SliceStable(list, func(i, j int) bool {
		di, dj := list[i].DirectProfit(), list[j].DirectProfit()
		if !di.Equal(dj) {
			return di.GreaterThan(dj)
		}
		return list[i].Store().Code < list[j].Store().Code
	})
}

func unionCodes(aggs ...*Aggregation) []string {
	seen := make(map[string]struct{})
	for _, a := range aggs {
		if a == nil {
			continue
		}
		for k := range a.Stores {
			seen[k] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
