package service

import (
	"github.com/shopspring/decimal"

	"mortgage-affordability/domain"
	"mortgage-affordability/eligibility"
	"mortgage-affordability/finance"
)

var hundred = decimal.NewFromInt(100)

// SummaryService produces the two summaries of the Singapore assessment:
// the buyers' financial position and the loan and property options it allows.
type SummaryService struct {
	deps Dependencies
}

func NewSummaryService(deps Dependencies) *SummaryService {
	return &SummaryService{deps: deps.withDefaults()}
}

// SummarizeFinancialPosition aggregates assessed borrowers into tenure, LTV
// and servicing ceilings.
func (s *SummaryService) SummarizeFinancialPosition(input domain.FinancialPositionInput) (domain.FinancialPositionSummary, error) {
	return cached(s.deps, OpFinancialPosition, input, func() (domain.FinancialPositionSummary, error) {
		return s.financialPosition(input)
	})
}

func (s *SummaryService) financialPosition(input domain.FinancialPositionInput) (domain.FinancialPositionSummary, error) {
	const op = OpFinancialPosition
	if !input.PropertyType.Valid() {
		return domain.FinancialPositionSummary{}, domain.InvalidInput(op, "property_type", "unknown property type %q", input.PropertyType)
	}
	if err := validateBorrowers(op, input.Borrowers); err != nil {
		return domain.FinancialPositionSummary{}, err
	}

	iwaa, err := eligibility.IncomeWeightedAge(input.Borrowers)
	if err != nil {
		return domain.FinancialPositionSummary{}, err
	}
	ltv, err := eligibility.LTVPercent(input.PropertyType, input.Borrowers, s.deps.Tables.LTV)
	if err != nil {
		return domain.FinancialPositionSummary{}, err
	}

	income, debt := decimal.Zero, decimal.Zero
	for _, b := range input.Borrowers {
		income = income.Add(finance.Dec(b.IncomeUsedForCalculation))
		debt = debt.Add(finance.Dec(b.DebtUsedForCalculation))
	}
	servicing := eligibility.ServicingCeiling(input.PropertyType, income, debt)

	return domain.FinancialPositionSummary{
		IncomeWeightedAge:            iwaa,
		MaxLoanTenure:                eligibility.MaxTenure(input.PropertyType, iwaa),
		TotalIncome:                  income.InexactFloat64(),
		TotalDebt:                    debt.InexactFloat64(),
		MSRCeiling:                   servicing.MSRCeiling.InexactFloat64(),
		TDSRCeiling:                  servicing.TDSRCeiling.InexactFloat64(),
		LoanToValueRatio:             ltv.InexactFloat64(),
		AmountAvailableForInstalment: servicing.AmountAvailableForInstalment.InexactFloat64(),
	}, nil
}

// SummarizeLoanAndPropertyOptions turns the available instalment into a loan
// and a price, both floored to the thousand, and prices the cash and duties
// due at that price.
func (s *SummaryService) SummarizeLoanAndPropertyOptions(input domain.LoanOptionsInput) (domain.LoanAndPropertyOptions, error) {
	return cached(s.deps, OpLoanOptions, input, func() (domain.LoanAndPropertyOptions, error) {
		return s.loanOptions(input)
	})
}

func (s *SummaryService) loanOptions(input domain.LoanOptionsInput) (domain.LoanAndPropertyOptions, error) {
	const op = OpLoanOptions
	if input.LoanTenure <= 0 {
		return domain.LoanAndPropertyOptions{}, domain.InvalidInput(op, "loan_tenure", "must be at least one year, got %d", input.LoanTenure)
	}
	if err := validateAmount(op, "amount_available_for_instalment", input.AmountAvailableForInstalment); err != nil {
		return domain.LoanAndPropertyOptions{}, err
	}
	ltv := finance.Dec(input.LTVRatio)
	if !ltv.IsPositive() || ltv.GreaterThan(hundred) {
		return domain.LoanAndPropertyOptions{}, domain.InvalidInput(op, "ltv_ratio", "must be within (0,100], got %v", input.LTVRatio)
	}
	periods, err := validateRateAndTerm(op, input.MediumTermRate, input.LoanTenure, 0)
	if err != nil {
		return domain.LoanAndPropertyOptions{}, err
	}
	if err := validateBorrowers(op, input.Borrowers); err != nil {
		return domain.LoanAndPropertyOptions{}, err
	}

	pv, err := finance.PresentValue(finance.PeriodicRate(input.MediumTermRate), periods, input.AmountAvailableForInstalment)
	if err != nil {
		return domain.LoanAndPropertyOptions{}, err
	}
	loan := finance.FloorToMultiple(finance.Dec(pv), 1000)
	price := finance.FloorToMultiple(loan.Mul(hundred).Div(ltv), 1000)

	holdings := make([]domain.Holding, len(input.Borrowers))
	for i, b := range input.Borrowers {
		holdings[i] = domain.Holding{Residency: b.Residency, ExistingPropertyCount: b.ExistingPropertyCount}
	}
	absdRate, err := s.deps.Tables.ABSD.TransactionRate(holdings)
	if err != nil {
		return domain.LoanAndPropertyOptions{}, err
	}

	cash := s.deps.Tables.Cash
	cashRate := cash.MandatoryCashRate(eligibility.MaxExistingLoans(input.Borrowers))

	return domain.LoanAndPropertyOptions{
		MaxLoanAmount:            loan.InexactFloat64(),
		HighestAffordablePrice:   price.InexactFloat64(),
		MandatoryCash:            rateAmount(cashRate, price),
		CPFContribution:          rateAmount(cash.CPFRate(), price),
		BuyerStampDuty:           s.deps.Tables.SGBuyer.Duty(price).InexactFloat64(),
		AdditionalBuyerStampDuty: rateAmount(absdRate, price),
	}, nil
}

func rateAmount(rate, base decimal.Decimal) domain.RateAmount {
	return domain.RateAmount{Rate: rate.InexactFloat64(), Amount: rate.Mul(base).InexactFloat64()}
}

func validateBorrowers(op string, borrowers []domain.Borrower) error {
	if len(borrowers) == 0 {
		return domain.InvalidInput(op, "borrowers", "at least one borrower is required")
	}
	if len(borrowers) > MaxBorrowers {
		return domain.InvalidInput(op, "borrowers", "at most %d borrowers are allowed", MaxBorrowers)
	}
	for i, b := range borrowers {
		if b.ExistingPropertyLoans < 0 || b.ExistingPropertyCount < 0 {
			return domain.InvalidInput(op, "existing_property_count", "borrower %d: counts must not be negative", i)
		}
		if err := validateAmount(op, "debt_used_for_calculation", b.DebtUsedForCalculation); err != nil {
			return err
		}
	}
	return nil
}
