package eligibility

import "mortgage-affordability/domain"

// DTITest is the direct debt-to-income test: the repayment over disposable
// monthly income must stay within Limit at the contract rate and within
// StressLimit at the contract rate plus StressSpread percentage points.
type DTITest struct {
	Limit        float64
	StressLimit  float64
	StressSpread float64
}

// DefaultDTITest is the Hong Kong style test.
var DefaultDTITest = DTITest{
	Limit:        0.5,
	StressLimit:  0.6,
	StressSpread: 2,
}

// Ratio divides the repayment by monthly income net of other debt.
func (t DTITest) Ratio(repayment, monthlyIncome, otherMonthlyDebt float64) (float64, error) {
	disposable := monthlyIncome - otherMonthlyDebt
	if disposable <= 0 {
		return 0, domain.InvalidInput("eligibility.dti_ratio", "monthly_income", "income net of other debt must be positive, got %v", disposable)
	}
	return repayment / disposable, nil
}

func (t DTITest) Pass(ratio float64) bool {
	return ratio <= t.Limit
}

func (t DTITest) PassStress(ratio float64) bool {
	return ratio <= t.StressLimit
}

// StressRate returns the annual stress-test rate for a contract rate, both in percent.
func (t DTITest) StressRate(annualPercent float64) float64 {
	return annualPercent + t.StressSpread
}
