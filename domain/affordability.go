package domain

// AffordabilityInput drives the payment-ceiling affordability resolver.
// InterestRate is an annual percentage; the term is TermYears*12 + TermMonths.
type AffordabilityInput struct {
	MonthlyIncome            float64 `json:"monthly_income"`
	OtherMonthlyDebt         float64 `json:"other_monthly_debt"`
	DownPayment              float64 `json:"down_payment"`
	AffordableMonthlyPayment float64 `json:"affordable_monthly_payment"`
	InterestRate             float64 `json:"interest_rate"`
	TermYears                int     `json:"term_years"`
	TermMonths               int     `json:"term_months"`
}

// LoanAssessmentInput evaluates a loan amount chosen by the caller.
type LoanAssessmentInput struct {
	MonthlyIncome    float64 `json:"monthly_income"`
	OtherMonthlyDebt float64 `json:"other_monthly_debt"`
	DownPayment      float64 `json:"down_payment"`
	LoanAmount       float64 `json:"loan_amount"`
	InterestRate     float64 `json:"interest_rate"`
	TermYears        int     `json:"term_years"`
	TermMonths       int     `json:"term_months"`
}

type AffordabilityResult struct {
	MaxLoanAmount               float64 `json:"max_loan_amount"`
	PropertyValue               float64 `json:"property_value"`
	MonthlyRepayment            float64 `json:"monthly_repayment"`
	DebtToIncomeRatio           float64 `json:"debt_to_income_ratio"`
	PassDTI                     bool    `json:"pass_dti"`
	StressTestMonthlyRepayment  float64 `json:"stress_test_monthly_repayment"`
	StressTestDebtToIncomeRatio float64 `json:"stress_test_debt_to_income_ratio"`
	PassStressTest              bool    `json:"pass_stress_test"`
}
