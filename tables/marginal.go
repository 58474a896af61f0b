package tables

import (
	"github.com/shopspring/decimal"

	"mortgage-affordability/domain"
)

// MarginalBand taxes the next Width of the price at Rate.
type MarginalBand struct {
	Width decimal.Decimal
	Rate  decimal.Decimal
}

// MarginalBands is a cumulative progressive schedule; whatever remains after
// the last band is taxed at the remainder rate.
type MarginalBands struct {
	bands         []MarginalBand
	remainderRate decimal.Decimal
}

func NewMarginalBands(bands []MarginalBand, remainderRate decimal.Decimal) (MarginalBands, error) {
	const op = "tables.new_marginal_bands"
	if !isFraction(remainderRate) {
		return MarginalBands{}, domain.TableConfig(op, "sg_bsd", "remainder rate %s outside [0,1]", remainderRate)
	}
	for i, b := range bands {
		if !b.Width.IsPositive() {
			return MarginalBands{}, domain.TableConfig(op, "sg_bsd", "band %d: width must be positive", i)
		}
		if !isFraction(b.Rate) {
			return MarginalBands{}, domain.TableConfig(op, "sg_bsd", "band %d: rate %s outside [0,1]", i, b.Rate)
		}
	}
	return MarginalBands{
		bands:         append([]MarginalBand(nil), bands...),
		remainderRate: remainderRate,
	}, nil
}

// Duty walks the bands in order. The result is not rounded.
func (m MarginalBands) Duty(price decimal.Decimal) decimal.Decimal {
	tax := decimal.Zero
	remain := price
	for _, b := range m.bands {
		if !remain.IsPositive() {
			return tax
		}
		tax = tax.Add(b.Rate.Mul(decimal.Min(b.Width, remain)))
		remain = remain.Sub(b.Width)
	}
	if remain.IsPositive() {
		tax = tax.Add(m.remainderRate.Mul(remain))
	}
	return tax
}

func (m MarginalBands) Bands() []MarginalBand {
	return append([]MarginalBand(nil), m.bands...)
}

func (m MarginalBands) RemainderRate() decimal.Decimal {
	return m.remainderRate
}
