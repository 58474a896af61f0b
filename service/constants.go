package service

const (
	MaxAmount       = 10_000_000_000.0 // 10 billion
	MaxInterestRate = 100.0            // annual %
	MaxTermMonths   = 600              // 50 years
	MaxBorrowers    = 10
)

// Operation names, used as cache-key prefixes and metric labels.
const (
	OpAffordability     = "affordability.calculate"
	OpAssessLoan        = "affordability.assess_loan"
	OpHKStampDuty       = "stamp_duty.hk"
	OpHKBuyerStampDuty  = "stamp_duty.hk_buyer"
	OpSGBuyerStampDuty  = "stamp_duty.sg_buyer"
	OpABSD              = "stamp_duty.sg_additional"
	OpIncomeAssessment  = "assessment.income"
	OpDebtAssessment    = "assessment.debt"
	OpFinancialPosition = "summary.financial_position"
	OpLoanOptions       = "summary.loan_options"
	OpSGScenario        = "scenario.sg"
	OpHKScenario        = "scenario.hk"
)
