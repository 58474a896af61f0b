// Package tables holds the immutable, validated rate tables behind the stamp
// duty, loan-to-value and down-payment rules.
package tables

import (
	"github.com/shopspring/decimal"

	"mortgage-affordability/domain"
	"mortgage-affordability/finance"
)

// AVDBand is one row of the ad valorem duty schedule. Bands alternate between
// flat tiers (even index: Rate applied to the whole price, plus Amount) and
// marginal tiers (odd index: Amount plus Rate on the excess over the previous
// band's UpTo).
type AVDBand struct {
	UpTo   decimal.Decimal
	Amount decimal.Decimal
	Rate   decimal.Decimal
}

// AVDTable computes Hong Kong ad valorem stamp duty.
type AVDTable struct {
	bands        []AVDBand
	fallbackRate decimal.Decimal
}

// NewAVDTable validates the band layout. fallbackRate is the flat rate charged
// when the buyer is not a first-time resident purchaser.
func NewAVDTable(bands []AVDBand, fallbackRate decimal.Decimal) (AVDTable, error) {
	const op = "tables.new_avd"
	if len(bands) == 0 {
		return AVDTable{}, domain.TableConfig(op, "avd", "at least one band is required")
	}
	if !isFraction(fallbackRate) {
		return AVDTable{}, domain.TableConfig(op, "avd", "fallback rate %s outside [0,1]", fallbackRate)
	}
	for i, b := range bands {
		if !b.UpTo.IsPositive() {
			return AVDTable{}, domain.TableConfig(op, "avd", "band %d: upper bound must be positive", i)
		}
		if i > 0 && !b.UpTo.GreaterThan(bands[i-1].UpTo) {
			return AVDTable{}, domain.TableConfig(op, "avd", "band %d: upper bound %s not above %s", i, b.UpTo, bands[i-1].UpTo)
		}
		if b.Amount.IsNegative() {
			return AVDTable{}, domain.TableConfig(op, "avd", "band %d: negative amount", i)
		}
		if !isFraction(b.Rate) {
			return AVDTable{}, domain.TableConfig(op, "avd", "band %d: rate %s outside [0,1]", i, b.Rate)
		}
	}

	return AVDTable{
		bands:        append([]AVDBand(nil), bands...),
		fallbackRate: fallbackRate,
	}, nil
}

// Duty returns the duty rounded up to a whole unit. Only a first property
// bought by a tax resident uses the banded schedule.
func (t AVDTable) Duty(price decimal.Decimal, firstProperty, taxResident bool) decimal.Decimal {
	if !firstProperty || !taxResident {
		return finance.CeilUnit(price.Mul(t.fallbackRate))
	}

	// Prices beyond every bound fall into the final band.
	idx := len(t.bands) - 1
	for i, b := range t.bands {
		if price.LessThanOrEqual(b.UpTo) {
			idx = i
			break
		}
	}

	band := t.bands[idx]
	if idx%2 == 1 {
		excess := price.Sub(t.bands[idx-1].UpTo)
		return finance.CeilUnit(band.Amount.Add(band.Rate.Mul(excess)))
	}
	return finance.CeilUnit(price.Mul(band.Rate).Add(band.Amount))
}

// Bands returns a copy of the schedule.
func (t AVDTable) Bands() []AVDBand {
	return append([]AVDBand(nil), t.bands...)
}

func (t AVDTable) FallbackRate() decimal.Decimal {
	return t.fallbackRate
}

func isFraction(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(1))
}
