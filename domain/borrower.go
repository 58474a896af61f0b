package domain

import "strings"

// ResidencyClass selects the row of the additional buyer's stamp duty table.
type ResidencyClass string

const (
	Citizen           ResidencyClass = "citizen"
	PermanentResident ResidencyClass = "permanent_resident"
	Foreigner         ResidencyClass = "foreigner"
)

// ParseResidencyClass accepts the canonical names plus the short forms used in
// scenario files ("Singaporean", "SPR", "PR").
func ParseResidencyClass(s string) (ResidencyClass, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "citizen", "singaporean":
		return Citizen, true
	case "permanent_resident", "spr", "pr":
		return PermanentResident, true
	case "foreigner":
		return Foreigner, true
	}
	return "", false
}

// UnmarshalText canonicalises the accepted aliases. Unknown names are kept
// verbatim so the rate lookup can report them.
func (r *ResidencyClass) UnmarshalText(b []byte) error {
	if c, ok := ParseResidencyClass(string(b)); ok {
		*r = c
		return nil
	}
	*r = ResidencyClass(b)
	return nil
}

// PropertyType classifies the purchase for tenure, LTV and servicing rules.
type PropertyType string

const (
	PropertyHDB     PropertyType = "HDB"
	PropertyEC      PropertyType = "EC"
	PropertyPrivate PropertyType = "private"
)

func (p PropertyType) Valid() bool {
	switch p {
	case PropertyHDB, PropertyEC, PropertyPrivate:
		return true
	}
	return false
}

// IncomeInput holds one borrower's raw income components.
type IncomeInput struct {
	AnnualFixedIncome    float64 `json:"annual_fixed_income"`
	AnnualVariableIncome float64 `json:"annual_variable_income"`
	AnnualRentalIncome   float64 `json:"annual_rental_income"`
	PledgedDeposit       float64 `json:"pledged_deposit"`
	UnpledgedDeposit     float64 `json:"unpledged_deposit"`
}

type IncomeAssessment struct {
	Subtotal              float64 `json:"subtotal"`
	RoundedForCalculation float64 `json:"rounded_for_calculation"`
}

// DebtInput holds one borrower's monthly recurring debts.
type DebtInput struct {
	MonthlyPropertyLoanInstalment float64 `json:"monthly_property_loan_instalment"`
	MonthlyCarLoan                float64 `json:"monthly_car_loan"`
	MonthlyUnsecuredCredit        float64 `json:"monthly_unsecured_credit"`
	MonthlySecuredRevolvingDebt   float64 `json:"monthly_secured_revolving_debt"`
	GuarantorDebt                 float64 `json:"guarantor_debt"`
}

type DebtAssessment struct {
	Subtotal              float64 `json:"subtotal"`
	RoundedForCalculation float64 `json:"rounded_for_calculation"`
}

// Borrower is a borrower whose income and debt have already been assessed.
type Borrower struct {
	Age                      int            `json:"age"`
	Residency                ResidencyClass `json:"residency"`
	ExistingPropertyLoans    int            `json:"existing_property_loans"`
	ExistingPropertyCount    int            `json:"existing_property_count"`
	IncomeUsedForCalculation float64        `json:"income_used_for_calculation"`
	DebtUsedForCalculation   float64        `json:"debt_used_for_calculation"`
}

// BorrowerProfile is a borrower with raw income and debt line items.
type BorrowerProfile struct {
	Age                   int            `json:"age"`
	Residency             ResidencyClass `json:"residency"`
	ExistingPropertyLoans int            `json:"existing_property_loans"`
	ExistingPropertyCount int            `json:"existing_property_count"`
	Income                IncomeInput    `json:"income"`
	Debt                  DebtInput      `json:"debt"`
}

// Holding is the minimal borrower view used by the additional buyer's stamp duty.
type Holding struct {
	Residency             ResidencyClass `json:"residency"`
	ExistingPropertyCount int            `json:"existing_property_count"`
}
