package service

import (
	"mortgage-affordability/assessment"
	"mortgage-affordability/domain"
	"mortgage-affordability/finance"
)

// ScenarioService chains the building blocks into one report per
// jurisdiction.
type ScenarioService struct {
	deps          Dependencies
	affordability *AffordabilityService
	stampDuty     *StampDutyService
	summary       *SummaryService
}

func NewScenarioService(deps Dependencies) *ScenarioService {
	deps = deps.withDefaults()
	return &ScenarioService{
		deps:          deps,
		affordability: NewAffordabilityService(deps),
		stampDuty:     NewStampDutyService(deps),
		summary:       NewSummaryService(deps),
	}
}

// SGReport assesses each borrower's raw income and debt, summarizes the
// financial position and derives the loan and property options from it.
func (s *ScenarioService) SGReport(input domain.SGScenarioInput) (domain.SGScenarioReport, error) {
	return cached(s.deps, OpSGScenario, input, func() (domain.SGScenarioReport, error) {
		const op = OpSGScenario
		if len(input.Borrowers) == 0 {
			return domain.SGScenarioReport{}, domain.InvalidInput(op, "borrowers", "at least one borrower is required")
		}
		if len(input.Borrowers) > MaxBorrowers {
			return domain.SGScenarioReport{}, domain.InvalidInput(op, "borrowers", "at most %d borrowers are allowed", MaxBorrowers)
		}

		report := domain.SGScenarioReport{Assessments: make([]domain.BorrowerAssessment, 0, len(input.Borrowers))}
		borrowers := make([]domain.Borrower, 0, len(input.Borrowers))
		for _, p := range input.Borrowers {
			income, err := assessment.Income(p.Income)
			if err != nil {
				return domain.SGScenarioReport{}, err
			}
			debt, err := assessment.Debt(p.Debt)
			if err != nil {
				return domain.SGScenarioReport{}, err
			}
			report.Assessments = append(report.Assessments, domain.BorrowerAssessment{Income: income, Debt: debt})
			borrowers = append(borrowers, domain.Borrower{
				Age:                      p.Age,
				Residency:                p.Residency,
				ExistingPropertyLoans:    p.ExistingPropertyLoans,
				ExistingPropertyCount:    p.ExistingPropertyCount,
				IncomeUsedForCalculation: income.RoundedForCalculation,
				DebtUsedForCalculation:   debt.RoundedForCalculation,
			})
		}

		position, err := s.summary.financialPosition(domain.FinancialPositionInput{
			PropertyType: input.PropertyType,
			Borrowers:    borrowers,
		})
		if err != nil {
			return domain.SGScenarioReport{}, err
		}
		report.FinancialPosition = position

		if position.MaxLoanTenure <= 0 {
			return domain.SGScenarioReport{}, domain.InvalidInput(op, "age", "income-weighted age %d leaves no loan tenure", position.IncomeWeightedAge)
		}

		options, err := s.summary.loanOptions(domain.LoanOptionsInput{
			LoanTenure:                   position.MaxLoanTenure,
			AmountAvailableForInstalment: position.AmountAvailableForInstalment,
			LTVRatio:                     position.LoanToValueRatio,
			MediumTermRate:               input.MediumTermRate,
			Borrowers:                    borrowers,
		})
		if err != nil {
			return domain.SGScenarioReport{}, err
		}
		report.LoanOptions = options

		s.deps.Logger.Debug("sg scenario evaluated",
			"borrowers", len(borrowers),
			"max_loan", options.MaxLoanAmount,
			"highest_price", options.HighestAffordablePrice,
		)
		return report, nil
	})
}

// HKReport resolves affordability and prices the stamp duties due on the
// resulting property value.
func (s *ScenarioService) HKReport(input domain.HKScenarioInput) (domain.HKScenarioReport, error) {
	return cached(s.deps, OpHKScenario, input, func() (domain.HKScenarioReport, error) {
		result, err := s.affordability.calculate(input.Affordability)
		if err != nil {
			return domain.HKScenarioReport{}, err
		}
		avd, err := s.stampDuty.hkStampDuty(domain.HKStampDutyInput{
			PropertyPrice:   result.PropertyValue,
			IsFirstProperty: input.IsFirstProperty,
			IsTaxResident:   input.IsTaxResident,
		})
		if err != nil {
			return domain.HKScenarioReport{}, err
		}
		bsd, err := s.stampDuty.hkBuyerStampDuty(domain.HKBuyerStampDutyInput{
			PropertyPrice: result.PropertyValue,
			IsTaxResident: input.IsTaxResident,
		})
		if err != nil {
			return domain.HKScenarioReport{}, err
		}

		upfront := finance.Dec(input.Affordability.DownPayment).
			Add(finance.Dec(avd.Amount)).
			Add(finance.Dec(bsd.Amount))

		return domain.HKScenarioReport{
			Affordability:    result,
			AdValoremDuty:    avd.Amount,
			BuyerStampDuty:   bsd.Amount,
			TotalUpfrontCost: upfront.InexactFloat64(),
		}, nil
	})
}
