package domain

type FinancialPositionSummary struct {
	IncomeWeightedAge            int     `json:"income_weighted_age"`
	MaxLoanTenure                int     `json:"max_loan_tenure"`
	TotalIncome                  float64 `json:"total_income"`
	TotalDebt                    float64 `json:"total_debt"`
	MSRCeiling                   float64 `json:"msr_ceiling"`
	TDSRCeiling                  float64 `json:"tdsr_ceiling"`
	LoanToValueRatio             float64 `json:"loan_to_value_ratio"`
	AmountAvailableForInstalment float64 `json:"amount_available_for_instalment"`
}

// LoanOptionsInput feeds the loan and property options summary.
// LTVRatio is a percentage, MediumTermRate an annual percentage.
type LoanOptionsInput struct {
	LoanTenure                   int        `json:"loan_tenure"`
	AmountAvailableForInstalment float64    `json:"amount_available_for_instalment"`
	LTVRatio                     float64    `json:"ltv_ratio"`
	MediumTermRate               float64    `json:"medium_term_rate"`
	Borrowers                    []Borrower `json:"borrowers"`
}

// RateAmount pairs an applied rate with the resulting amount.
type RateAmount struct {
	Rate   float64 `json:"rate"`
	Amount float64 `json:"amount"`
}

type LoanAndPropertyOptions struct {
	MaxLoanAmount            float64    `json:"max_loan_amount"`
	HighestAffordablePrice   float64    `json:"highest_affordable_price"`
	MandatoryCash            RateAmount `json:"mandatory_cash"`
	CPFContribution          RateAmount `json:"cpf_contribution"`
	BuyerStampDuty           float64    `json:"buyer_stamp_duty"`
	AdditionalBuyerStampDuty RateAmount `json:"additional_buyer_stamp_duty"`
}
