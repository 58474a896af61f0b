package tables

import (
	"github.com/shopspring/decimal"

	"mortgage-affordability/domain"
)

// LTVTiers maps the number of outstanding property loans (clamped to 2) to the
// maximum loan-to-value percentage.
type LTVTiers struct {
	percents [maxCountIndex + 1]decimal.Decimal
}

func NewLTVTiers(percents []decimal.Decimal) (LTVTiers, error) {
	const op = "tables.new_ltv"
	if len(percents) != maxCountIndex+1 {
		return LTVTiers{}, domain.TableConfig(op, "ltv", "got %d tiers, want %d", len(percents), maxCountIndex+1)
	}
	var t LTVTiers
	hundred := decimal.NewFromInt(100)
	for i, p := range percents {
		if !p.IsPositive() || p.GreaterThan(hundred) {
			return LTVTiers{}, domain.TableConfig(op, "ltv", "tier %d: %s%% outside (0,100]", i, p)
		}
		t.percents[i] = p
	}
	return t, nil
}

// Percent returns the LTV ceiling in percent.
func (t LTVTiers) Percent(existingLoanCount int) (decimal.Decimal, error) {
	if existingLoanCount < 0 {
		return decimal.Zero, domain.InvalidInput("tables.ltv_percent", "existing_property_loans", "must not be negative, got %d", existingLoanCount)
	}
	return t.percents[min(existingLoanCount, maxCountIndex)], nil
}

func (t LTVTiers) Percents() []decimal.Decimal {
	return t.percents[:]
}
