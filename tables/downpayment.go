package tables

import (
	"fmt"

	"github.com/shopspring/decimal"

	"mortgage-affordability/domain"
)

// LoanRule says how a down-payment band turns the down payment into a loan cap.
type LoanRule string

const (
	// RuleMultiple lends Value times the down payment.
	RuleMultiple LoanRule = "multiple"
	// RuleCap lends a fixed Value regardless of the down payment.
	RuleCap LoanRule = "cap"
	// RuleImpliedLTV back-solves the loan from a minimum down-payment share:
	// dp / Value * (1 - Value).
	RuleImpliedLTV LoanRule = "implied_ltv"
	// RuleComplement lends Value minus the down payment.
	RuleComplement LoanRule = "complement"
)

// DownPaymentBand covers down payments up to and including UpTo. A nil UpTo
// marks the unbounded catch-all band, which must come last.
type DownPaymentBand struct {
	UpTo  *decimal.Decimal
	Rule  LoanRule
	Value decimal.Decimal
}

// DownPaymentTiers is the piecewise down-payment to maximum-loan function.
type DownPaymentTiers struct {
	bands []DownPaymentBand
}

func NewDownPaymentTiers(bands []DownPaymentBand) (DownPaymentTiers, error) {
	const op = "tables.new_down_payment_tiers"
	if len(bands) == 0 {
		return DownPaymentTiers{}, domain.TableConfig(op, "down_payment", "at least one band is required")
	}
	for i, b := range bands {
		if err := validateLoanRule(b); err != nil {
			return DownPaymentTiers{}, domain.TableConfig(op, "down_payment", "band %d: %v", i, err)
		}
		if b.UpTo == nil {
			if i != len(bands)-1 {
				return DownPaymentTiers{}, domain.TableConfig(op, "down_payment", "band %d: only the last band may be unbounded", i)
			}
			continue
		}
		if !b.UpTo.IsPositive() {
			return DownPaymentTiers{}, domain.TableConfig(op, "down_payment", "band %d: upper bound must be positive", i)
		}
		if i > 0 && !b.UpTo.GreaterThan(*bands[i-1].UpTo) {
			return DownPaymentTiers{}, domain.TableConfig(op, "down_payment", "band %d: upper bound %s not above %s", i, b.UpTo, bands[i-1].UpTo)
		}
	}

	copied := make([]DownPaymentBand, len(bands))
	for i, b := range bands {
		copied[i] = b
		if b.UpTo != nil {
			upTo := *b.UpTo
			copied[i].UpTo = &upTo
		}
	}
	return DownPaymentTiers{bands: copied}, nil
}

func validateLoanRule(b DownPaymentBand) error {
	switch b.Rule {
	case RuleMultiple, RuleCap, RuleComplement:
		if !b.Value.IsPositive() {
			return fmt.Errorf("%s value must be positive", b.Rule)
		}
	case RuleImpliedLTV:
		if !b.Value.IsPositive() || !b.Value.LessThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("implied_ltv value %s outside (0,1)", b.Value)
		}
	default:
		return fmt.Errorf("unknown rule %q", b.Rule)
	}
	return nil
}

// MaxLoan returns the loan cap for a down payment. A down payment above every
// bounded band of a table without a catch-all is a table configuration error.
func (t DownPaymentTiers) MaxLoan(downPayment decimal.Decimal) (decimal.Decimal, error) {
	const op = "tables.max_loan"
	if downPayment.IsNegative() {
		return decimal.Zero, domain.InvalidInput(op, "down_payment", "must not be negative, got %s", downPayment)
	}
	for _, b := range t.bands {
		if b.UpTo != nil && downPayment.GreaterThan(*b.UpTo) {
			continue
		}
		return b.apply(downPayment), nil
	}
	return decimal.Zero, domain.TableConfig(op, "down_payment", "no band covers down payment %s", downPayment)
}

func (b DownPaymentBand) apply(dp decimal.Decimal) decimal.Decimal {
	switch b.Rule {
	case RuleMultiple:
		return dp.Mul(b.Value)
	case RuleCap:
		return b.Value
	case RuleImpliedLTV:
		return dp.Div(b.Value).Mul(decimal.NewFromInt(1).Sub(b.Value))
	case RuleComplement:
		return b.Value.Sub(dp)
	}
	return decimal.Zero
}

func (t DownPaymentTiers) Bands() []DownPaymentBand {
	return append([]DownPaymentBand(nil), t.bands...)
}
