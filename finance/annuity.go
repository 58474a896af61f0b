// Package finance holds the fixed-rate annuity formulas and the rounding rules
// applied to currency amounts.
package finance

import (
	"math"

	"mortgage-affordability/domain"
)

// Payment returns the periodic instalment that amortizes pv over periods at
// the periodic rate:
//
//	pv * r * (1+r)^n / ((1+r)^n - 1)
//
// The result is rounded half-to-even to the cent.
func Payment(rate float64, periods int, pv float64) (float64, error) {
	const op = "finance.payment"
	if err := validateTerms(op, rate, periods); err != nil {
		return 0, err
	}
	if pv < 0 || !isFinite(pv) {
		return 0, domain.InvalidInput(op, "present_value", "must be a finite non-negative amount, got %v", pv)
	}

	factor := math.Pow(1+rate, float64(periods))
	raw := pv * rate * factor / (factor - 1)
	if !isFinite(raw) {
		return 0, domain.InvalidInput(op, "periods", "payment overflows for %d periods at rate %v", periods, rate)
	}

	return RoundCents(raw), nil
}

// PresentValue returns the largest principal a fixed periodic payment can
// amortize. No rounding is applied; callers round for their own purpose.
func PresentValue(rate float64, periods int, payment float64) (float64, error) {
	const op = "finance.present_value"
	if err := validateTerms(op, rate, periods); err != nil {
		return 0, err
	}
	if payment < 0 || !isFinite(payment) {
		return 0, domain.InvalidInput(op, "payment", "must be a finite non-negative amount, got %v", payment)
	}

	factor := math.Pow(1+rate, float64(periods))
	pv := payment / rate * (factor - 1) / factor
	if !isFinite(pv) {
		return 0, domain.InvalidInput(op, "periods", "present value overflows for %d periods at rate %v", periods, rate)
	}
	return pv, nil
}

// PeriodicRate converts an annual percentage into a monthly fraction.
func PeriodicRate(annualPercent float64) float64 {
	return annualPercent / 12 / 100
}

// Periods converts a years + months term into a number of monthly periods.
func Periods(years, months int) int {
	return years*12 + months
}

// Zero rates are rejected rather than special-cased to a linear split.
func validateTerms(op string, rate float64, periods int) error {
	if !isFinite(rate) || rate <= 0 {
		return domain.InvalidInput(op, "rate", "periodic rate must be positive, got %v", rate)
	}
	if periods <= 0 {
		return domain.InvalidInput(op, "periods", "number of periods must be positive, got %d", periods)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
