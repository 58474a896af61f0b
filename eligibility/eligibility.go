// Package eligibility derives the borrowing ceilings: loan tenure from the
// income-weighted age, loan-to-value from existing loans, and the servicing
// ceilings from aggregated income and debt.
package eligibility

import (
	"github.com/shopspring/decimal"

	"mortgage-affordability/domain"
	"mortgage-affordability/finance"
	"mortgage-affordability/tables"
)

const (
	RetirementAge = 65

	// Tenure caps in years.
	HDBMaxTenure   = 25
	OtherMaxTenure = 30
)

var (
	// DefaultLTVPercent applies to every property type except private.
	DefaultLTVPercent = decimal.NewFromInt(75)

	msrRatio  = decimal.RequireFromString("0.3")
	tdsrRatio = decimal.RequireFromString("0.55")
)

// IncomeWeightedAge returns Σ(age × income) / Σ(income), rounded up to a whole year.
func IncomeWeightedAge(borrowers []domain.Borrower) (int, error) {
	const op = "eligibility.income_weighted_age"
	if len(borrowers) == 0 {
		return 0, domain.InvalidInput(op, "borrowers", "at least one borrower is required")
	}

	weighted, total := decimal.Zero, decimal.Zero
	for i, b := range borrowers {
		if b.Age <= 0 {
			return 0, domain.InvalidInput(op, "age", "borrower %d: age must be positive, got %d", i, b.Age)
		}
		if b.IncomeUsedForCalculation < 0 {
			return 0, domain.InvalidInput(op, "income_used_for_calculation", "borrower %d: must not be negative", i)
		}
		income := finance.Dec(b.IncomeUsedForCalculation)
		weighted = weighted.Add(income.Mul(decimal.NewFromInt(int64(b.Age))))
		total = total.Add(income)
	}
	if !total.IsPositive() {
		return 0, domain.InvalidInput(op, "income_used_for_calculation", "total income must be positive")
	}

	return int(finance.CeilUnit(weighted.Div(total)).IntPart()), nil
}

// MaxTenure caps the loan tenure by property type and by the years left until
// retirement age. The result may be zero or negative for older borrowers.
func MaxTenure(propertyType domain.PropertyType, incomeWeightedAge int) int {
	limit := OtherMaxTenure
	if propertyType == domain.PropertyHDB {
		limit = HDBMaxTenure
	}
	return min(limit, RetirementAge-incomeWeightedAge)
}

// MaxExistingLoans returns the highest outstanding property-loan count.
func MaxExistingLoans(borrowers []domain.Borrower) int {
	n := 0
	for _, b := range borrowers {
		n = max(n, b.ExistingPropertyLoans)
	}
	return n
}

// LTVPercent returns the loan-to-value ceiling in percent. Only private
// property is tiered by the borrowers' existing loans.
func LTVPercent(propertyType domain.PropertyType, borrowers []domain.Borrower, tiers tables.LTVTiers) (decimal.Decimal, error) {
	if propertyType != domain.PropertyPrivate {
		return DefaultLTVPercent, nil
	}
	if len(borrowers) == 0 {
		return decimal.Zero, domain.InvalidInput("eligibility.ltv_percent", "borrowers", "at least one borrower is required")
	}
	for _, b := range borrowers {
		if b.ExistingPropertyLoans < 0 {
			return decimal.Zero, domain.InvalidInput("eligibility.ltv_percent", "existing_property_loans", "must not be negative, got %d", b.ExistingPropertyLoans)
		}
	}
	return tiers.Percent(MaxExistingLoans(borrowers))
}

// Servicing holds both servicing ceilings and the instalment they leave room for.
type Servicing struct {
	MSRCeiling                   decimal.Decimal
	TDSRCeiling                  decimal.Decimal
	AmountAvailableForInstalment decimal.Decimal
}

// ServicingCeiling applies the total-debt-servicing test to private property
// (TDSR less existing debt, never below zero) and the mortgage-servicing
// ceiling to every other property type.
func ServicingCeiling(propertyType domain.PropertyType, totalIncome, totalDebt decimal.Decimal) Servicing {
	s := Servicing{
		MSRCeiling:  totalIncome.Mul(msrRatio),
		TDSRCeiling: finance.FloorUnit(totalIncome.Mul(tdsrRatio)),
	}
	if propertyType == domain.PropertyPrivate {
		s.AmountAvailableForInstalment = decimal.Max(s.TDSRCeiling.Sub(totalDebt), decimal.Zero)
	} else {
		s.AmountAvailableForInstalment = s.MSRCeiling
	}
	return s
}
