package finance

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-affordability/domain"
)

func TestPayment_KnownValues(t *testing.T) {
	tests := []struct {
		name          string
		annualPercent float64
		years         int
		pv            float64
		want          float64
	}{
		{"contract rate 900k", 3.625, 30, 900_000, 4104.46},
		{"stress rate 900k", 5.625, 30, 900_000, 5180.91},
		{"contract rate 12m", 3.625, 30, 12_000_000, 54726.16},
		{"contract rate 9m", 3.625, 30, 9_000_000, 41044.62},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Payment(PeriodicRate(tc.annualPercent), Periods(tc.years, 0), tc.pv)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPayment_ZeroRateRejected(t *testing.T) {
	_, err := Payment(0, 360, 100_000)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.True(t, domain.IsKind(err, domain.KindInvalidInput))

	_, err = PresentValue(0, 360, 1_000)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPayment_InvalidPeriods(t *testing.T) {
	_, err := Payment(0.003, 0, 100_000)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = Payment(0.003, 12, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = PresentValue(math.NaN(), 12, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPresentValue_RoundTrip(t *testing.T) {
	rates := []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.015, 0.02}
	terms := []int{12, 60, 120, 240, 360, 480}
	pv := 1_000_000.0

	for _, r := range rates {
		for _, n := range terms {
			factor := math.Pow(1+r, float64(n))
			pmt := pv * r * factor / (factor - 1)

			got, err := PresentValue(r, n, pmt)
			require.NoError(t, err)
			assert.InEpsilon(t, pv, got, 1e-6, "rate=%v n=%d", r, n)
		}
	}
}

func TestPresentValue_RoundTripThroughRoundedPayment(t *testing.T) {
	pmt, err := Payment(0.004, 300, 2_500_000)
	require.NoError(t, err)

	got, err := PresentValue(0.004, 300, pmt)
	require.NoError(t, err)
	// The cent rounding of the payment bounds the drift.
	assert.InDelta(t, 2_500_000, got, 1)
}

func TestPayment_Monotonic(t *testing.T) {
	const n = 360

	prev := 0.0
	for pv := 100_000.0; pv <= 2_000_000; pv += 100_000 {
		got, err := Payment(0.003, n, pv)
		require.NoError(t, err)
		assert.Greater(t, got, prev, "pv=%v", pv)
		prev = got
	}

	prev = 0
	for r := 0.001; r <= 0.02; r += 0.001 {
		got, err := Payment(r, n, 500_000)
		require.NoError(t, err)
		assert.Greater(t, got, prev, "rate=%v", r)
		prev = got
	}
}

func TestRoundingHelpers(t *testing.T) {
	d := decimal.RequireFromString

	assert.True(t, RoundHalfEven(d("2.345"), 2).Equal(d("2.34")))
	assert.True(t, RoundHalfEven(d("2.355"), 2).Equal(d("2.36")))
	assert.True(t, CeilUnit(d("10.01")).Equal(d("11")))
	assert.True(t, FloorUnit(d("10.99")).Equal(d("10")))
	assert.True(t, Truncate(d("-3.7")).Equal(d("-3")))
	assert.True(t, FloorToMultiple(d("9149"), 10).Equal(d("9140")))
	assert.True(t, CeilToMultiple(d("2241"), 10).Equal(d("2250")))
	assert.True(t, CeilToMultiple(d("2240"), 10).Equal(d("2240")))
	assert.True(t, FloorToMultiple(d("1234567.89"), 1000).Equal(d("1234000")))
	assert.True(t, Dec(math.Inf(1)).IsZero())
}

func TestRoundCents_UsesExactBinaryValue(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{2.675, 2.67},       // stored just below the tie
		{1.005, 1.0},        // stored just below the tie
		{1234.565, 1234.57}, // stored just above the tie
		{0.125, 0.12},       // exact tie, to even
		{0.375, 0.38},       // exact tie, to even
		{4104.4612, 4104.46},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, RoundCents(tc.in), "in=%v", tc.in)
	}
}
