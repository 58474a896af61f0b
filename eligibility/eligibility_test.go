package eligibility

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-affordability/domain"
	"mortgage-affordability/tables"
)

func borrowers() []domain.Borrower {
	return []domain.Borrower{
		{Age: 30, Residency: domain.Citizen, IncomeUsedForCalculation: 6150, DebtUsedForCalculation: 2250},
		{Age: 28, Residency: domain.Citizen, IncomeUsedForCalculation: 6390},
	}
}

func TestIncomeWeightedAge(t *testing.T) {
	iwaa, err := IncomeWeightedAge(borrowers())
	require.NoError(t, err)
	// (30*6150 + 28*6390) / 12540 = 28.98 -> 29
	assert.Equal(t, 29, iwaa)

	iwaa, err = IncomeWeightedAge([]domain.Borrower{{Age: 40, IncomeUsedForCalculation: 5000}})
	require.NoError(t, err)
	assert.Equal(t, 40, iwaa)
}

func TestIncomeWeightedAge_Invalid(t *testing.T) {
	_, err := IncomeWeightedAge(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = IncomeWeightedAge([]domain.Borrower{{Age: 30}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = IncomeWeightedAge([]domain.Borrower{{Age: 0, IncomeUsedForCalculation: 10}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMaxTenure(t *testing.T) {
	assert.Equal(t, 30, MaxTenure(domain.PropertyPrivate, 29))
	assert.Equal(t, 25, MaxTenure(domain.PropertyHDB, 29))
	assert.Equal(t, 30, MaxTenure(domain.PropertyEC, 35))
	assert.Equal(t, 15, MaxTenure(domain.PropertyPrivate, 50))
	assert.Equal(t, 0, MaxTenure(domain.PropertyHDB, 65))
	assert.Equal(t, -5, MaxTenure(domain.PropertyHDB, 70))
}

func TestLTVPercent(t *testing.T) {
	tiers := tables.Default().LTV

	got, err := LTVPercent(domain.PropertyPrivate, borrowers(), tiers)
	require.NoError(t, err)
	assert.Equal(t, "75", got.String())

	withLoans := borrowers()
	withLoans[1].ExistingPropertyLoans = 1
	got, err = LTVPercent(domain.PropertyPrivate, withLoans, tiers)
	require.NoError(t, err)
	assert.Equal(t, "45", got.String())

	withLoans[0].ExistingPropertyLoans = 4
	got, err = LTVPercent(domain.PropertyPrivate, withLoans, tiers)
	require.NoError(t, err)
	assert.Equal(t, "35", got.String())

	got, err = LTVPercent(domain.PropertyHDB, withLoans, tiers)
	require.NoError(t, err)
	assert.Equal(t, "75", got.String())

	withLoans[0].ExistingPropertyLoans = -1
	_, err = LTVPercent(domain.PropertyPrivate, withLoans, tiers)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestServicingCeiling(t *testing.T) {
	income := decimal.NewFromInt(12540)

	private := ServicingCeiling(domain.PropertyPrivate, income, decimal.NewFromInt(2250))
	assert.Equal(t, "3762", private.MSRCeiling.String())
	assert.Equal(t, "6897", private.TDSRCeiling.String())
	assert.Equal(t, "4647", private.AmountAvailableForInstalment.String())

	hdb := ServicingCeiling(domain.PropertyHDB, income, decimal.NewFromInt(2250))
	assert.Equal(t, "3762", hdb.AmountAvailableForInstalment.String())

	overLeveraged := ServicingCeiling(domain.PropertyPrivate, income, decimal.NewFromInt(10_000))
	assert.True(t, overLeveraged.AmountAvailableForInstalment.IsZero())
}

func TestDTITest(t *testing.T) {
	dti := DefaultDTITest

	ratio, err := dti.Ratio(4104.46, 50_000, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.0820892, ratio, 1e-12)
	assert.True(t, dti.Pass(ratio))

	ratio, err = dti.Ratio(25_000, 60_000, 10_000)
	require.NoError(t, err)
	assert.Equal(t, 0.5, ratio)
	assert.True(t, dti.Pass(ratio))
	assert.True(t, dti.PassStress(0.6))
	assert.False(t, dti.Pass(0.5000001))
	assert.False(t, dti.PassStress(0.61))

	assert.Equal(t, 5.625, dti.StressRate(3.625))

	_, err = dti.Ratio(100, 1_000, 1_000)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
