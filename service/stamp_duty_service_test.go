package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-affordability/domain"
)

func TestHKStampDuty(t *testing.T) {
	svc := NewStampDutyService(newDeps())

	tests := []struct {
		name  string
		input domain.HKStampDutyInput
		want  float64
	}{
		{"first home resident", domain.HKStampDutyInput{PropertyPrice: 3_000_000, IsFirstProperty: true, IsTaxResident: true}, 100},
		{"non resident", domain.HKStampDutyInput{PropertyPrice: 3_000_000, IsFirstProperty: true}, 450_000},
		{"second home resident", domain.HKStampDutyInput{PropertyPrice: 3_000_000, IsTaxResident: true}, 450_000},
		{"marginal band", domain.HKStampDutyInput{PropertyPrice: 3_500_000, IsFirstProperty: true, IsTaxResident: true}, 50_100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.HKStampDuty(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Amount)
			assert.Equal(t, tc.input.PropertyPrice, got.PropertyPrice)
		})
	}
}

func TestHKStampDuty_NegativePrice(t *testing.T) {
	svc := NewStampDutyService(newDeps())

	_, err := svc.HKStampDuty(domain.HKStampDutyInput{PropertyPrice: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHKBuyerStampDuty(t *testing.T) {
	svc := NewStampDutyService(newDeps())

	resident, err := svc.HKBuyerStampDuty(domain.HKBuyerStampDutyInput{PropertyPrice: 1_000_000, IsTaxResident: true})
	require.NoError(t, err)
	assert.Zero(t, resident.Amount)

	foreign, err := svc.HKBuyerStampDuty(domain.HKBuyerStampDutyInput{PropertyPrice: 1_000_000})
	require.NoError(t, err)
	assert.Equal(t, 150_000.0, foreign.Amount)
}

func TestSGBuyerStampDuty(t *testing.T) {
	svc := NewStampDutyService(newDeps())

	got, err := svc.SGBuyerStampDuty(domain.SGBuyerStampDutyInput{PropertyPrice: 1_297_000})
	require.NoError(t, err)
	// 1,800 + 3,600 + 19,200 + 297,000 × 4%
	assert.Equal(t, 36_480.0, got.Amount)
}

func TestAdditionalBuyerStampDuty(t *testing.T) {
	svc := NewStampDutyService(newDeps())

	tests := []struct {
		name      string
		borrowers []domain.Holding
		wantRate  float64
	}{
		{"first citizen", []domain.Holding{{Residency: domain.Citizen}}, 0},
		{"permanent resident", []domain.Holding{{Residency: domain.PermanentResident}}, 0.05},
		{"citizen third home", []domain.Holding{{Residency: domain.Citizen, ExistingPropertyCount: 5}}, 0.25},
		{
			"joint buyers take the highest rate",
			[]domain.Holding{{Residency: domain.Citizen}, {Residency: domain.PermanentResident, ExistingPropertyCount: 1}},
			0.25,
		},
		{
			"foreigner forces the top rate",
			[]domain.Holding{{Residency: domain.Citizen}, {Residency: domain.Foreigner, ExistingPropertyCount: 2}},
			0.3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.AdditionalBuyerStampDuty(domain.ABSDInput{PropertyPrice: 1_000_000, Borrowers: tc.borrowers})
			require.NoError(t, err)
			assert.Equal(t, tc.wantRate, got.Rate)
			assert.InDelta(t, tc.wantRate*1_000_000, got.Amount, 1e-6)
		})
	}
}

func TestAdditionalBuyerStampDuty_Invalid(t *testing.T) {
	svc := NewStampDutyService(newDeps())

	_, err := svc.AdditionalBuyerStampDuty(domain.ABSDInput{PropertyPrice: 1_000_000})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.AdditionalBuyerStampDuty(domain.ABSDInput{
		PropertyPrice: 1_000_000,
		Borrowers:     []domain.Holding{{Residency: "martian"}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
