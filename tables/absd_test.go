package tables

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-affordability/domain"
)

func TestABSD_Rate(t *testing.T) {
	absd := Default().ABSD

	tests := []struct {
		class domain.ResidencyClass
		count int
		want  string
	}{
		{domain.Citizen, 0, "0"},
		{domain.Citizen, 1, "0.17"},
		{domain.Citizen, 2, "0.25"},
		{domain.Citizen, 7, "0.25"},
		{domain.PermanentResident, 0, "0.05"},
		{domain.PermanentResident, 1, "0.25"},
		{domain.PermanentResident, 3, "0.3"},
		{domain.Foreigner, 0, "0.3"},
		{domain.Foreigner, 2, "0.3"},
	}

	for _, tc := range tests {
		got, err := absd.Rate(tc.class, tc.count)
		require.NoError(t, err)
		assert.True(t, got.Equal(decimal.RequireFromString(tc.want)), "%s/%d: got %s", tc.class, tc.count, got)
	}
}

func TestABSD_TransactionRateIsWorstCase(t *testing.T) {
	absd := Default().ABSD

	holdings := []domain.Holding{
		{Residency: domain.Citizen, ExistingPropertyCount: 0},
		{Residency: domain.PermanentResident, ExistingPropertyCount: 1},
	}
	rate, err := absd.TransactionRate(holdings)
	require.NoError(t, err)
	assert.Equal(t, "0.25", rate.String())

	for _, extra := range []int{2, 3, 10} {
		with := append(append([]domain.Holding(nil), holdings...), domain.Holding{Residency: domain.Foreigner, ExistingPropertyCount: extra})
		rate, err := absd.TransactionRate(with)
		require.NoError(t, err)
		assert.Equal(t, "0.3", rate.String())
	}
}

func TestABSD_Errors(t *testing.T) {
	absd := Default().ABSD

	_, err := absd.TransactionRate(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = absd.Rate("martian", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = absd.Rate(domain.Citizen, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewABSDTable(map[domain.ResidencyClass][]decimal.Decimal{
		domain.Citizen: {d("0"), d("0.1")},
	})
	assert.ErrorIs(t, err, domain.ErrTableConfig)
}

func TestLTVTiers(t *testing.T) {
	ltv := Default().LTV
	for count, want := range map[int]string{0: "75", 1: "45", 2: "35", 5: "35"} {
		got, err := ltv.Percent(count)
		require.NoError(t, err)
		assert.Equal(t, want, got.String())
	}

	_, err := ltv.Percent(-1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = NewLTVTiers([]decimal.Decimal{d("75"), d("45")})
	assert.ErrorIs(t, err, domain.ErrTableConfig)

	_, err = NewLTVTiers([]decimal.Decimal{d("75"), d("145"), d("35")})
	assert.ErrorIs(t, err, domain.ErrTableConfig)
}

func TestCashRules(t *testing.T) {
	cash := Default().Cash
	assert.Equal(t, "0.05", cash.MandatoryCashRate(0).String())
	assert.Equal(t, "0.25", cash.MandatoryCashRate(2).String())
	assert.Equal(t, "0.2", cash.CPFRate().String())

	_, err := NewCashRules(d("1.2"), d("0.05"), d("0.2"))
	assert.ErrorIs(t, err, domain.ErrTableConfig)
}
