package service

import (
	"math"

	"github.com/shopspring/decimal"

	"mortgage-affordability/domain"
	"mortgage-affordability/eligibility"
	"mortgage-affordability/finance"
)

// AffordabilityService resolves the largest loan a buyer can carry and runs
// the debt-to-income and stress tests against it.
type AffordabilityService struct {
	deps Dependencies
	dti  eligibility.DTITest
}

func NewAffordabilityService(deps Dependencies) *AffordabilityService {
	return &AffordabilityService{deps: deps.withDefaults(), dti: eligibility.DefaultDTITest}
}

// CalculateAffordability takes the smaller of the loan the payment ceiling
// amortizes and the loan the down payment unlocks, truncated to a whole unit.
func (s *AffordabilityService) CalculateAffordability(input domain.AffordabilityInput) (domain.AffordabilityResult, error) {
	return cached(s.deps, OpAffordability, input, func() (domain.AffordabilityResult, error) {
		return s.calculate(input)
	})
}

func (s *AffordabilityService) calculate(input domain.AffordabilityInput) (domain.AffordabilityResult, error) {
	const op = OpAffordability
	if err := validateBuyer(op, input.MonthlyIncome, input.OtherMonthlyDebt, input.DownPayment); err != nil {
		return domain.AffordabilityResult{}, err
	}
	if err := validateAmount(op, "affordable_monthly_payment", input.AffordableMonthlyPayment); err != nil {
		return domain.AffordabilityResult{}, err
	}
	periods, err := validateRateAndTerm(op, input.InterestRate, input.TermYears, input.TermMonths)
	if err != nil {
		return domain.AffordabilityResult{}, err
	}

	byPayment, err := finance.PresentValue(finance.PeriodicRate(input.InterestRate), periods, input.AffordableMonthlyPayment)
	if err != nil {
		return domain.AffordabilityResult{}, err
	}
	byDownPayment, err := s.deps.Tables.DownPayment.MaxLoan(finance.Dec(input.DownPayment))
	if err != nil {
		return domain.AffordabilityResult{}, err
	}
	loan := finance.Truncate(decimal.Min(finance.Dec(byPayment), byDownPayment))

	return s.evaluate(op, loan.InexactFloat64(), input.MonthlyIncome, input.OtherMonthlyDebt, input.DownPayment, input.InterestRate, periods)
}

// AssessLoan runs the same tests against a loan amount picked by the caller.
func (s *AffordabilityService) AssessLoan(input domain.LoanAssessmentInput) (domain.AffordabilityResult, error) {
	return cached(s.deps, OpAssessLoan, input, func() (domain.AffordabilityResult, error) {
		const op = OpAssessLoan
		if err := validateBuyer(op, input.MonthlyIncome, input.OtherMonthlyDebt, input.DownPayment); err != nil {
			return domain.AffordabilityResult{}, err
		}
		if err := validateAmount(op, "loan_amount", input.LoanAmount); err != nil {
			return domain.AffordabilityResult{}, err
		}
		periods, err := validateRateAndTerm(op, input.InterestRate, input.TermYears, input.TermMonths)
		if err != nil {
			return domain.AffordabilityResult{}, err
		}
		return s.evaluate(op, input.LoanAmount, input.MonthlyIncome, input.OtherMonthlyDebt, input.DownPayment, input.InterestRate, periods)
	})
}

func (s *AffordabilityService) evaluate(op string, loan, income, otherDebt, downPayment, annualRate float64, periods int) (domain.AffordabilityResult, error) {
	repayment, err := finance.Payment(finance.PeriodicRate(annualRate), periods, loan)
	if err != nil {
		return domain.AffordabilityResult{}, err
	}
	stressRepayment, err := finance.Payment(finance.PeriodicRate(s.dti.StressRate(annualRate)), periods, loan)
	if err != nil {
		return domain.AffordabilityResult{}, err
	}

	ratio, err := s.dti.Ratio(repayment, income, otherDebt)
	if err != nil {
		return domain.AffordabilityResult{}, err
	}
	stressRatio, err := s.dti.Ratio(stressRepayment, income, otherDebt)
	if err != nil {
		return domain.AffordabilityResult{}, err
	}

	s.deps.Logger.Debug("affordability resolved",
		"operation", op,
		"loan", loan,
		"repayment", repayment,
		"dti", ratio,
	)

	return domain.AffordabilityResult{
		MaxLoanAmount:               loan,
		PropertyValue:               finance.Dec(loan).Add(finance.Dec(downPayment)).InexactFloat64(),
		MonthlyRepayment:            repayment,
		DebtToIncomeRatio:           ratio,
		PassDTI:                     s.dti.Pass(ratio),
		StressTestMonthlyRepayment:  stressRepayment,
		StressTestDebtToIncomeRatio: stressRatio,
		PassStressTest:              s.dti.PassStress(stressRatio),
	}, nil
}

func validateBuyer(op string, income, otherDebt, downPayment float64) error {
	if err := validateAmount(op, "monthly_income", income); err != nil {
		return err
	}
	if err := validateAmount(op, "other_monthly_debt", otherDebt); err != nil {
		return err
	}
	if income-otherDebt <= 0 {
		return domain.InvalidInput(op, "monthly_income", "income must exceed other monthly debt")
	}
	return validateAmount(op, "down_payment", downPayment)
}

func validateAmount(op, field string, v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return domain.InvalidInput(op, field, "must be a non-negative amount, got %v", v)
	}
	if v > MaxAmount {
		return domain.InvalidInput(op, field, "exceeds the maximum of %.0f", MaxAmount)
	}
	return nil
}

func validateRateAndTerm(op string, annualRate float64, years, months int) (int, error) {
	if annualRate <= 0 || math.IsNaN(annualRate) {
		return 0, domain.InvalidInput(op, "interest_rate", "must be positive, got %v", annualRate)
	}
	if annualRate > MaxInterestRate {
		return 0, domain.InvalidInput(op, "interest_rate", "exceeds the maximum of %.2f%%", MaxInterestRate)
	}
	if years < 0 || months < 0 {
		return 0, domain.InvalidInput(op, "term_years", "term must not be negative")
	}
	periods := finance.Periods(years, months)
	if periods <= 0 {
		return 0, domain.InvalidInput(op, "term_years", "term must be at least one month")
	}
	if periods > MaxTermMonths {
		return 0, domain.InvalidInput(op, "term_years", "term exceeds the maximum of %d months", MaxTermMonths)
	}
	return periods, nil
}
