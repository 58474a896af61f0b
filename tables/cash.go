package tables

import (
	"github.com/shopspring/decimal"

	"mortgage-affordability/domain"
)

// CashRules splits the purchase price into the minimum cash portion and the
// share that may come from the CPF ordinary account.
type CashRules struct {
	withLoanRate    decimal.Decimal
	withoutLoanRate decimal.Decimal
	cpfRate         decimal.Decimal
}

func NewCashRules(withLoanRate, withoutLoanRate, cpfRate decimal.Decimal) (CashRules, error) {
	const op = "tables.new_cash_rules"
	for name, r := range map[string]decimal.Decimal{
		"with_loan_rate":    withLoanRate,
		"without_loan_rate": withoutLoanRate,
		"cpf_rate":          cpfRate,
	} {
		if !isFraction(r) {
			return CashRules{}, domain.TableConfig(op, "cash", "%s %s outside [0,1]", name, r)
		}
	}
	return CashRules{withLoanRate: withLoanRate, withoutLoanRate: withoutLoanRate, cpfRate: cpfRate}, nil
}

// MandatoryCashRate is higher when any borrower still has a property loan.
func (c CashRules) MandatoryCashRate(maxExistingLoans int) decimal.Decimal {
	if maxExistingLoans > 0 {
		return c.withLoanRate
	}
	return c.withoutLoanRate
}

func (c CashRules) CPFRate() decimal.Decimal {
	return c.cpfRate
}

func (c CashRules) WithLoanRate() decimal.Decimal    { return c.withLoanRate }
func (c CashRules) WithoutLoanRate() decimal.Decimal { return c.withoutLoanRate }
