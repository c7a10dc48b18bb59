package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a ledger cell. Thousands separators, surrounding
// whitespace and accounting negatives "(1,234)" are accepted; an empty cell or
// a lone dash is zero. ok is false when the cell holds something non-numeric,
// in which case the value is zero.
func ParseAmount(s string) (v decimal.Decimal, ok bool) {
	raw := strings.TrimSpace(s)
	if raw == "" || raw == "-" {
		return decimal.Zero, true
	}
	neg := false
	if strings.HasPrefix(raw, "(") && strings.HasSuffix(raw, ")") {
		neg = true
		raw = strings.TrimSpace(raw[1 : len(raw)-1])
	}
	raw = strings.ReplaceAll(raw, ",", "")
	raw = strings.ReplaceAll(raw, " ", "")
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	if neg {
		d = d.Neg()
	}
	return d, true
}

// MustAmount is ParseAmount for tests and fixtures.
func MustAmount(s string) decimal.Decimal {
	v, ok := ParseAmount(s)
	if !ok {
		panic(fmt.Sprintf("bad amount %q", s))
	}
	return v
}
