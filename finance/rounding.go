package finance

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// RoundHalfEven rounds to the given decimal places, ties to even.
func RoundHalfEven(d decimal.Decimal, places int32) decimal.Decimal {
	return d.RoundBank(places)
}

// CeilUnit rounds up to the next whole currency unit.
func CeilUnit(d decimal.Decimal) decimal.Decimal {
	return d.Ceil()
}

// FloorUnit rounds down to a whole currency unit.
func FloorUnit(d decimal.Decimal) decimal.Decimal {
	return d.Floor()
}

// Truncate drops the fractional part, rounding toward zero.
func Truncate(d decimal.Decimal) decimal.Decimal {
	return d.Truncate(0)
}

// FloorToMultiple rounds down to the nearest multiple of step.
func FloorToMultiple(d decimal.Decimal, step int64) decimal.Decimal {
	s := decimal.NewFromInt(step)
	return d.Div(s).Floor().Mul(s)
}

// CeilToMultiple rounds up to the nearest multiple of step.
func CeilToMultiple(d decimal.Decimal, step int64) decimal.Decimal {
	s := decimal.NewFromInt(step)
	return d.Div(s).Ceil().Mul(s)
}

// Dec converts a float amount into a decimal. Non-finite values become zero;
// callers validate their inputs before converting.
func Dec(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

// exactDigits covers every fractional bit of a float64 of magnitude 2^-11 or more.
const exactDigits = 64

// RoundCents rounds the exact binary value of v half-to-even to the cent.
// Dec would round the shortest round-trip form instead, which turns
// 2.67499999... (written 2.675) into a tie.
func RoundCents(v float64) float64 {
	d, err := decimal.NewFromString(strconv.FormatFloat(v, 'f', exactDigits, 64))
	if err != nil {
		return v
	}
	return RoundHalfEven(d, 2).InexactFloat64()
}
