package entity

import "github.com/shopspring/decimal"

// SentinelYOY is the percentage legacy dashboards expect when the comparison
// base is zero but the current value is not.
const SentinelYOY = 1000

// YOYStatus tags how a year-over-year ratio was obtained.
type YOYStatus string

const (
	YOYFiniteStatus       YOYStatus = "finite"
	YOYNewStatus          YOYStatus = "new"
	YOYNoneStatus         YOYStatus = "none"
	YOYDiscontinuedStatus YOYStatus = "discontinued"
)

// YOY is a year-over-year comparison. Value is meaningful only when Finite reports true.
type YOY struct {
	Status YOYStatus
	Value  decimal.Decimal
}

func YOYFinite(pct decimal.Decimal) YOY {
	return YOY{Status: YOYFiniteStatus, Value: pct}
}

func YOYNew() YOY {
	return YOY{Status: YOYNewStatus}
}

func YOYNone() YOY {
	return YOY{Status: YOYNoneStatus}
}

// YOYDiscontinued is a finite 0% kept apart so renderers can show the store as closed.
func YOYDiscontinued() YOY {
	return YOY{Status: YOYDiscontinuedStatus}
}

// Finite reports whether Value is a real percentage.
func (y YOY) Finite() bool {
	return y.Status == YOYFiniteStatus || y.Status == YOYDiscontinuedStatus
}

// Percent returns the comparable number: the ratio itself, SentinelYOY for
// newly appeared values and 0 when both sides are zero.
func (y YOY) Percent() decimal.Decimal {
	switch y.Status {
	case YOYFiniteStatus:
		return y.Value
	case YOYNewStatus:
		return decimal.NewFromInt(SentinelYOY)
	default:
		return decimal.Zero
	}
}
