package pipeline

import (
	"testing"

	"github.com/jekabolt/grbpwr-pnl/internal/entity"
	"github.com/stretchr/testify/assert"
)

func row(period, country, brand, store, account, value string) entity.LedgerRow {
	return entity.LedgerRow{
		Period:      entity.MustPeriod(period),
		CountryCode: country,
		BrandCode:   brand,
		StoreCode:   store,
		StoreName:   "Store " + store,
		AccountName: account,
		Value:       d(value),
	}
}

func TestFilter_Apply(t *testing.T) {
	rows := []entity.LedgerRow{
		row("202512", "HK", "M", "A01", "net sales", "1"),
		row("202512", "MC", "M", "B01", "net sales", "1"),
		row("202512", "HK", "X", "A02", "net sales", "1"),
		row("202511", "HK", "M", "A03", "net sales", "1"),
		row("202512", "HK", "M", "M99", "net sales", "1"),
		row("202512", "HK", "M", "HE1", "net sales", "1"),
		row("202512", "HK", "M", "A04W", "net sales", "1"),
		row("202512", "HK", "M", "", "net sales", "1"),
	}
	stores := DefaultStoresConfig()
	stores.ExcludeSuffixes = []string{"w"}
	f := NewFilter([]string{"hk", "MC"}, []string{"M"}, []entity.Period{entity.MustPeriod("202512")}, stores)

	got := f.Apply(rows)
	codes := make([]string, 0, len(got))
	for _, r := range got {
		codes = append(codes, r.StoreCode)
	}
	assert.Equal(t, []string{"A01", "B01"}, codes)
}

func TestFilter_EmptySetsDoNotRestrict(t *testing.T) {
	f := NewFilter(nil, nil, nil, StoresConfig{})
	assert.True(t, f.Match(row("201001", "JP", "Z", "Q1", "x", "0")))
	assert.False(t, f.Excluded("Q1"))
}
