package domain

// HKStampDutyInput selects the AVD schedule through the two buyer flags.
type HKStampDutyInput struct {
	PropertyPrice   float64 `json:"property_price"`
	IsFirstProperty bool    `json:"is_first_property"`
	IsTaxResident   bool    `json:"is_tax_resident"`
}

type HKBuyerStampDutyInput struct {
	PropertyPrice float64 `json:"property_price"`
	IsTaxResident bool    `json:"is_tax_resident"`
}

type SGBuyerStampDutyInput struct {
	PropertyPrice float64 `json:"property_price"`
}

type ABSDInput struct {
	PropertyPrice float64   `json:"property_price"`
	Borrowers     []Holding `json:"borrowers"`
}

type StampDutyResult struct {
	PropertyPrice float64 `json:"property_price"`
	Amount        float64 `json:"amount"`
}

type ABSDResult struct {
	PropertyPrice float64 `json:"property_price"`
	Rate          float64 `json:"rate"`
	Amount        float64 `json:"amount"`
}

// FinancialPositionInput lists already-assessed borrowers for one purchase.
type FinancialPositionInput struct {
	PropertyType PropertyType `json:"property_type"`
	Borrowers    []Borrower   `json:"borrowers"`
}

// SGScenarioInput runs the full assessment pipeline from raw borrower data.
type SGScenarioInput struct {
	PropertyType   PropertyType      `json:"property_type"`
	MediumTermRate float64           `json:"medium_term_rate"`
	Borrowers      []BorrowerProfile `json:"borrowers"`
}

type BorrowerAssessment struct {
	Income IncomeAssessment `json:"income"`
	Debt   DebtAssessment   `json:"debt"`
}

type SGScenarioReport struct {
	Assessments       []BorrowerAssessment     `json:"assessments"`
	FinancialPosition FinancialPositionSummary `json:"financial_position"`
	LoanOptions       LoanAndPropertyOptions   `json:"loan_options"`
}

type HKScenarioInput struct {
	Affordability   AffordabilityInput `json:"affordability"`
	IsFirstProperty bool               `json:"is_first_property"`
	IsTaxResident   bool               `json:"is_tax_resident"`
}

type HKScenarioReport struct {
	Affordability    AffordabilityResult `json:"affordability"`
	AdValoremDuty    float64             `json:"ad_valorem_duty"`
	BuyerStampDuty   float64             `json:"buyer_stamp_duty"`
	TotalUpfrontCost float64             `json:"total_upfront_cost"`
}
