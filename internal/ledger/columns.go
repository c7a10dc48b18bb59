package ledger

import (
	"fmt"
	"strings"

	gerr "github.com/jekabolt/grbpwr-pnl/internal/errors"
	"golang.org/x/text/cases"
)

// Columns lists the accepted header aliases of each logical ledger field.
type Columns struct {
	Period      []string `mapstructure:"period"`
	Country     []string `mapstructure:"country"`
	Brand       []string `mapstructure:"brand"`
	Store       []string `mapstructure:"store"`
	StoreName   []string `mapstructure:"store_name"`
	AccountName []string `mapstructure:"account_name"`
	AccountCode []string `mapstructure:"account_code"`
	Value       []string `mapstructure:"value"`
}

// DefaultColumns covers the header spellings seen across the POS and P&L exports.
func DefaultColumns() Columns {
	return Columns{
		Period:      []string{"period", "yyyymm", "yymm", "month", "fiscal_period", "ym"},
		Country:     []string{"country", "country_code", "cntry", "nation"},
		Brand:       []string{"brand", "brand_code", "brd", "brd_cd"},
		Store:       []string{"store", "store_code", "shop", "shop_code", "shop_cd"},
		StoreName:   []string{"store_name", "shop_name", "shop_nm"},
		AccountName: []string{"account_name", "account", "acct_name", "item", "account_nm"},
		AccountCode: []string{"account_code", "acct_code", "account_cd"},
		Value:       []string{"value", "amount", "amt", "val"},
	}
}

// merged fills empty alias lists from the defaults.
func (c Columns) merged() Columns {
	d := DefaultColumns()
	pick := func(a, b []string) []string {
		if len(a) == 0 {
			return b
		}
		return a
	}
	return Columns{
		Period:      pick(c.Period, d.Period),
		Country:     pick(c.Country, d.Country),
		Brand:       pick(c.Brand, d.Brand),
		Store:       pick(c.Store, d.Store),
		StoreName:   pick(c.StoreName, d.StoreName),
		AccountName: pick(c.AccountName, d.AccountName),
		AccountCode: pick(c.AccountCode, d.AccountCode),
		Value:       pick(c.Value, d.Value),
	}
}

// layout holds resolved column positions, -1 for an absent optional column.
type layout struct {
	period, country, brand, store, storeName, accountName, accountCode, value int
}

func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-', '\t', '\n', '\r', '.':
			return -1
		}
		return r
	}, h)
	return cases.Fold().String(h)
}

func resolve(header []string, c Columns, source string) (layout, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		k := normalizeHeader(h)
		if _, dup := idx[k]; !dup {
			idx[k] = i
		}
	}
	find := func(aliases []string) int {
		for _, a := range aliases {
			if i, ok := idx[normalizeHeader(a)]; ok {
				return i
			}
		}
		return -1
	}

	l := layout{
		period:      find(c.Period),
		country:     find(c.Country),
		brand:       find(c.Brand),
		store:       find(c.Store),
		storeName:   find(c.StoreName),
		accountName: find(c.AccountName),
		accountCode: find(c.AccountCode),
		value:       find(c.Value),
	}
	required := []struct {
		name    string
		pos     int
		aliases []string
	}{
		{"period", l.period, c.Period},
		{"country", l.country, c.Country},
		{"brand", l.brand, c.Brand},
		{"store", l.store, c.Store},
		{"account_name", l.accountName, c.AccountName},
		{"value", l.value, c.Value},
	}
	for _, r := range required {
		if r.pos < 0 {
			return l, fmt.Errorf("%w: %s: column %q not found (tried %s)",
				gerr.ErrSchemaMismatch, source, r.name, strings.Join(r.aliases, ", "))
		}
	}
	return l, nil
}

func cell(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}
