package service

import (
	"github.com/shopspring/decimal"

	"mortgage-affordability/domain"
	"mortgage-affordability/finance"
	"mortgage-affordability/tables"
)

// StampDutyService prices the transfer taxes of both jurisdictions.
type StampDutyService struct {
	deps Dependencies
}

func NewStampDutyService(deps Dependencies) *StampDutyService {
	return &StampDutyService{deps: deps.withDefaults()}
}

// HKStampDuty returns the ad valorem stamp duty. First-time resident buyers
// use the banded scale, everyone else the flat rate.
func (s *StampDutyService) HKStampDuty(input domain.HKStampDutyInput) (domain.StampDutyResult, error) {
	return cached(s.deps, OpHKStampDuty, input, func() (domain.StampDutyResult, error) {
		return s.hkStampDuty(input)
	})
}

func (s *StampDutyService) hkStampDuty(input domain.HKStampDutyInput) (domain.StampDutyResult, error) {
	if err := validateAmount(OpHKStampDuty, "property_price", input.PropertyPrice); err != nil {
		return domain.StampDutyResult{}, err
	}
	duty := s.deps.Tables.AVD.Duty(finance.Dec(input.PropertyPrice), input.IsFirstProperty, input.IsTaxResident)
	return domain.StampDutyResult{PropertyPrice: input.PropertyPrice, Amount: duty.InexactFloat64()}, nil
}

// HKBuyerStampDuty is only charged to non-residents.
func (s *StampDutyService) HKBuyerStampDuty(input domain.HKBuyerStampDutyInput) (domain.StampDutyResult, error) {
	return cached(s.deps, OpHKBuyerStampDuty, input, func() (domain.StampDutyResult, error) {
		return s.hkBuyerStampDuty(input)
	})
}

func (s *StampDutyService) hkBuyerStampDuty(input domain.HKBuyerStampDutyInput) (domain.StampDutyResult, error) {
	if err := validateAmount(OpHKBuyerStampDuty, "property_price", input.PropertyPrice); err != nil {
		return domain.StampDutyResult{}, err
	}
	duty := s.deps.Tables.HKBuyer.Duty(finance.Dec(input.PropertyPrice), input.IsTaxResident)
	return domain.StampDutyResult{PropertyPrice: input.PropertyPrice, Amount: duty.InexactFloat64()}, nil
}

// SGBuyerStampDuty is left unrounded.
func (s *StampDutyService) SGBuyerStampDuty(input domain.SGBuyerStampDutyInput) (domain.StampDutyResult, error) {
	return cached(s.deps, OpSGBuyerStampDuty, input, func() (domain.StampDutyResult, error) {
		if err := validateAmount(OpSGBuyerStampDuty, "property_price", input.PropertyPrice); err != nil {
			return domain.StampDutyResult{}, err
		}
		duty := s.deps.Tables.SGBuyer.Duty(finance.Dec(input.PropertyPrice))
		return domain.StampDutyResult{PropertyPrice: input.PropertyPrice, Amount: duty.InexactFloat64()}, nil
	})
}

// AdditionalBuyerStampDuty charges the highest rate among the joint buyers
// on the full price.
func (s *StampDutyService) AdditionalBuyerStampDuty(input domain.ABSDInput) (domain.ABSDResult, error) {
	return cached(s.deps, OpABSD, input, func() (domain.ABSDResult, error) {
		if err := validateAmount(OpABSD, "property_price", input.PropertyPrice); err != nil {
			return domain.ABSDResult{}, err
		}
		if len(input.Borrowers) > MaxBorrowers {
			return domain.ABSDResult{}, domain.InvalidInput(OpABSD, "borrowers", "at most %d borrowers are allowed", MaxBorrowers)
		}
		rate, amount, err := absd(s.deps.Tables.ABSD, input.Borrowers, finance.Dec(input.PropertyPrice))
		if err != nil {
			return domain.ABSDResult{}, err
		}
		return domain.ABSDResult{
			PropertyPrice: input.PropertyPrice,
			Rate:          rate.InexactFloat64(),
			Amount:        amount.InexactFloat64(),
		}, nil
	})
}

func absd(table tables.ABSDTable, holdings []domain.Holding, price decimal.Decimal) (rate, amount decimal.Decimal, err error) {
	rate, err = table.TransactionRate(holdings)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return rate, rate.Mul(price), nil
}
