package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-affordability/domain"
)

func TestAssessIncomeAndDebt(t *testing.T) {
	svc := NewAssessmentService(newDeps())

	income, err := svc.AssessIncome(domain.IncomeInput{
		AnnualFixedIncome:    60_000,
		AnnualVariableIncome: 6_000,
		PledgedDeposit:       50_000,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.IncomeAssessment{Subtotal: 6391, RoundedForCalculation: 6390}, income)

	debt, err := svc.AssessDebt(domain.DebtInput{MonthlyCarLoan: 1555.2, GuarantorDebt: 684.1})
	require.NoError(t, err)
	assert.Equal(t, domain.DebtAssessment{Subtotal: 2241, RoundedForCalculation: 2250}, debt)

	_, err = svc.AssessDebt(domain.DebtInput{MonthlyCarLoan: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
