package pipeline

import (
	"github.com/jekabolt/grbpwr-pnl/internal/entity"
	"github.com/shopspring/decimal"
)

// CompareYOY returns current/previous*100 as a tagged result:
// both zero is none, a zero base with a non-zero current value is new, and a
// zero current value against a non-zero base is discontinued (0%).
func CompareYOY(current, previous decimal.Decimal) entity.YOY {
	switch {
	case previous.IsZero() && current.IsZero():
		return entity.YOYNone()
	case previous.IsZero():
		return entity.YOYNew()
	case current.IsZero():
		return entity.YOYDiscontinued()
	}
	return entity.YOYFinite(current.Div(previous).Mul(hundred))
}
