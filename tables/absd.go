package tables

import (
	"github.com/shopspring/decimal"

	"mortgage-affordability/domain"
)

// maxCountIndex is the highest existing-property bucket; larger counts clamp to it.
const maxCountIndex = 2

// ABSDTable maps residency class and existing property count to the
// additional buyer's stamp duty rate.
type ABSDTable struct {
	rates map[domain.ResidencyClass][maxCountIndex + 1]decimal.Decimal
}

var residencyClasses = []domain.ResidencyClass{domain.Citizen, domain.PermanentResident, domain.Foreigner}

// NewABSDTable requires a row with one rate per count bucket for every class.
func NewABSDTable(rows map[domain.ResidencyClass][]decimal.Decimal) (ABSDTable, error) {
	const op = "tables.new_absd"
	rates := make(map[domain.ResidencyClass][maxCountIndex + 1]decimal.Decimal, len(residencyClasses))
	for _, class := range residencyClasses {
		row, ok := rows[class]
		if !ok {
			return ABSDTable{}, domain.TableConfig(op, "absd", "missing row for %s", class)
		}
		if len(row) != maxCountIndex+1 {
			return ABSDTable{}, domain.TableConfig(op, "absd", "row %s has %d rates, want %d", class, len(row), maxCountIndex+1)
		}
		var fixed [maxCountIndex + 1]decimal.Decimal
		for i, r := range row {
			if !isFraction(r) {
				return ABSDTable{}, domain.TableConfig(op, "absd", "row %s: rate %s outside [0,1]", class, r)
			}
			fixed[i] = r
		}
		rates[class] = fixed
	}
	for class := range rows {
		if _, ok := rates[class]; !ok {
			return ABSDTable{}, domain.TableConfig(op, "absd", "unknown residency class %q", class)
		}
	}
	return ABSDTable{rates: rates}, nil
}

// Rate returns the rate for one buyer.
func (t ABSDTable) Rate(class domain.ResidencyClass, existingPropertyCount int) (decimal.Decimal, error) {
	const op = "tables.absd_rate"
	row, ok := t.rates[class]
	if !ok {
		return decimal.Zero, domain.InvalidInput(op, "residency", "unknown residency class %q", class)
	}
	if existingPropertyCount < 0 {
		return decimal.Zero, domain.InvalidInput(op, "existing_property_count", "must not be negative, got %d", existingPropertyCount)
	}
	return row[min(existingPropertyCount, maxCountIndex)], nil
}

// TransactionRate applies the worst case across joint buyers.
func (t ABSDTable) TransactionRate(holdings []domain.Holding) (decimal.Decimal, error) {
	if len(holdings) == 0 {
		return decimal.Zero, domain.InvalidInput("tables.absd_transaction_rate", "borrowers", "at least one borrower is required")
	}
	rate := decimal.Zero
	for _, h := range holdings {
		r, err := t.Rate(h.Residency, h.ExistingPropertyCount)
		if err != nil {
			return decimal.Zero, err
		}
		rate = decimal.Max(rate, r)
	}
	return rate, nil
}

// Row returns the rates for one class, in count-bucket order.
func (t ABSDTable) Row(class domain.ResidencyClass) []decimal.Decimal {
	row := t.rates[class]
	return row[:]
}
