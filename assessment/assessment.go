// Package assessment normalises a borrower's raw income and debt line items
// into the monthly figures used by the servicing-ratio tests.
package assessment

import (
	"math"

	"github.com/shopspring/decimal"

	"mortgage-affordability/domain"
	"mortgage-affordability/finance"
)

var (
	twelve        = decimal.NewFromInt(12)
	depositMonths = decimal.NewFromInt(48)
	// Variable and rental income only count at 70%.
	variableHaircut = decimal.RequireFromString("0.7")
	// Unpledged deposits only count at 30%.
	unpledgedHaircut = decimal.RequireFromString("0.3")
)

// Income converts annual income and deposits into monthly income. Each
// component is floored to a whole unit, and the sum is floored to a multiple
// of ten for ratio tests.
func Income(in domain.IncomeInput) (domain.IncomeAssessment, error) {
	const op = "assessment.income"
	fields := []struct {
		name  string
		value float64
	}{
		{"annual_fixed_income", in.AnnualFixedIncome},
		{"annual_variable_income", in.AnnualVariableIncome},
		{"annual_rental_income", in.AnnualRentalIncome},
		{"pledged_deposit", in.PledgedDeposit},
		{"unpledged_deposit", in.UnpledgedDeposit},
	}
	for _, f := range fields {
		if err := nonNegative(op, f.name, f.value); err != nil {
			return domain.IncomeAssessment{}, err
		}
	}

	// Haircuts are applied before dividing so exact results stay exact.
	fixed := finance.FloorUnit(finance.Dec(in.AnnualFixedIncome).Div(twelve))
	variable := finance.FloorUnit(finance.Dec(in.AnnualVariableIncome).Mul(variableHaircut).Div(twelve))
	rental := finance.FloorUnit(finance.Dec(in.AnnualRentalIncome).Mul(variableHaircut).Div(twelve))
	pledged := finance.FloorUnit(finance.Dec(in.PledgedDeposit).Div(depositMonths))
	unpledged := finance.FloorUnit(finance.Dec(in.UnpledgedDeposit).Mul(unpledgedHaircut).Div(depositMonths))

	subtotal := fixed.Add(variable).Add(rental).Add(pledged).Add(unpledged)

	return domain.IncomeAssessment{
		Subtotal:              subtotal.InexactFloat64(),
		RoundedForCalculation: finance.FloorToMultiple(subtotal, 10).InexactFloat64(),
	}, nil
}

// Debt sums monthly obligations, each rounded up to a whole unit, and rounds
// the total up to a multiple of ten for ratio tests.
func Debt(in domain.DebtInput) (domain.DebtAssessment, error) {
	const op = "assessment.debt"
	fields := []struct {
		name  string
		value float64
	}{
		{"monthly_property_loan_instalment", in.MonthlyPropertyLoanInstalment},
		{"monthly_car_loan", in.MonthlyCarLoan},
		{"monthly_unsecured_credit", in.MonthlyUnsecuredCredit},
		{"monthly_secured_revolving_debt", in.MonthlySecuredRevolvingDebt},
		{"guarantor_debt", in.GuarantorDebt},
	}

	subtotal := decimal.Zero
	for _, f := range fields {
		if err := nonNegative(op, f.name, f.value); err != nil {
			return domain.DebtAssessment{}, err
		}
		subtotal = subtotal.Add(finance.CeilUnit(finance.Dec(f.value)))
	}

	return domain.DebtAssessment{
		Subtotal:              subtotal.InexactFloat64(),
		RoundedForCalculation: finance.CeilToMultiple(subtotal, 10).InexactFloat64(),
	}, nil
}

func nonNegative(op, field string, v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return domain.InvalidInput(op, field, "must be a non-negative amount, got %v", v)
	}
	return nil
}
