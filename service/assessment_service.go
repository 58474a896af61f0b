package service

import (
	"mortgage-affordability/assessment"
	"mortgage-affordability/domain"
)

// AssessmentService exposes the per-borrower income and debt assessments.
type AssessmentService struct {
	deps Dependencies
}

func NewAssessmentService(deps Dependencies) *AssessmentService {
	return &AssessmentService{deps: deps.withDefaults()}
}

func (s *AssessmentService) AssessIncome(input domain.IncomeInput) (domain.IncomeAssessment, error) {
	return cached(s.deps, OpIncomeAssessment, input, func() (domain.IncomeAssessment, error) {
		return assessment.Income(input)
	})
}

func (s *AssessmentService) AssessDebt(input domain.DebtInput) (domain.DebtAssessment, error) {
	return cached(s.deps, OpDebtAssessment, input, func() (domain.DebtAssessment, error) {
		return assessment.Debt(input)
	})
}
