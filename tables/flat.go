package tables

import (
	"github.com/shopspring/decimal"

	"mortgage-affordability/domain"
	"mortgage-affordability/finance"
)

// FlatRate is a single-rate levy waived for exempt buyers, such as the Hong
// Kong buyer's stamp duty for non-residents.
type FlatRate struct {
	rate decimal.Decimal
}

func NewFlatRate(rate decimal.Decimal) (FlatRate, error) {
	if !isFraction(rate) {
		return FlatRate{}, domain.TableConfig("tables.new_flat_rate", "hk_bsd", "rate %s outside [0,1]", rate)
	}
	return FlatRate{rate: rate}, nil
}

// Duty returns zero for exempt buyers, otherwise the rate applied to price
// rounded up to a whole unit.
func (f FlatRate) Duty(price decimal.Decimal, exempt bool) decimal.Decimal {
	if exempt {
		return decimal.Zero
	}
	return finance.CeilUnit(price.Mul(f.rate))
}

func (f FlatRate) Rate() decimal.Decimal {
	return f.rate
}
