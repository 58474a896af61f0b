package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-affordability/domain"
)

func TestIncome(t *testing.T) {
	tests := []struct {
		name         string
		in           domain.IncomeInput
		wantSubtotal float64
		wantRounded  float64
	}{
		{
			name: "fixed variable and both deposits",
			in: domain.IncomeInput{
				AnnualFixedIncome:    52_000,
				AnnualVariableIncome: 8_000,
				PledgedDeposit:       50_000,
				UnpledgedDeposit:     50_000,
			},
			// 4333 + 466 + 0 + 1041 + 312
			wantSubtotal: 6152,
			wantRounded:  6150,
		},
		{
			name: "fixed variable and pledged deposit",
			in: domain.IncomeInput{
				AnnualFixedIncome:    60_000,
				AnnualVariableIncome: 6_000,
				PledgedDeposit:       50_000,
			},
			// 5000 + 350 + 0 + 1041 + 0
			wantSubtotal: 6391,
			wantRounded:  6390,
		},
		{
			name:         "rental income haircut",
			in:           domain.IncomeInput{AnnualRentalIncome: 24_000},
			wantSubtotal: 1400,
			wantRounded:  1400,
		},
		{
			name:         "haircut that lands on a whole unit",
			in:           domain.IncomeInput{UnpledgedDeposit: 160},
			wantSubtotal: 1,
			wantRounded:  0,
		},
		{
			name:         "nothing",
			in:           domain.IncomeInput{},
			wantSubtotal: 0,
			wantRounded:  0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Income(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.wantSubtotal, got.Subtotal)
			assert.Equal(t, tc.wantRounded, got.RoundedForCalculation)
		})
	}
}

func TestIncome_Negative(t *testing.T) {
	_, err := Income(domain.IncomeInput{AnnualFixedIncome: -1})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var oe *domain.OpError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, "annual_fixed_income", oe.Field)
}

func TestDebt(t *testing.T) {
	tests := []struct {
		name         string
		in           domain.DebtInput
		wantSubtotal float64
		wantRounded  float64
	}{
		{
			name:         "car loan and guarantor debt",
			in:           domain.DebtInput{MonthlyCarLoan: 1556, GuarantorDebt: 685},
			wantSubtotal: 2241,
			wantRounded:  2250,
		},
		{
			name: "fractions rounded up per item",
			in: domain.DebtInput{
				MonthlyPropertyLoanInstalment: 1000.2,
				MonthlyCarLoan:                0.1,
				MonthlyUnsecuredCredit:        8.9,
				MonthlySecuredRevolvingDebt:   0,
				GuarantorDebt:                 0,
			},
			wantSubtotal: 1011,
			wantRounded:  1020,
		},
		{
			name:         "already a multiple of ten",
			in:           domain.DebtInput{MonthlyCarLoan: 500},
			wantSubtotal: 500,
			wantRounded:  500,
		},
		{
			name: "no debt",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Debt(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.wantSubtotal, got.Subtotal)
			assert.Equal(t, tc.wantRounded, got.RoundedForCalculation)
		})
	}
}

func TestDebt_Negative(t *testing.T) {
	_, err := Debt(domain.DebtInput{GuarantorDebt: -5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAssessment_Deterministic(t *testing.T) {
	in := domain.IncomeInput{AnnualFixedIncome: 123_457, AnnualVariableIncome: 9_999, UnpledgedDeposit: 77_777}
	a, err := Income(in)
	require.NoError(t, err)
	b, err := Income(in)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
