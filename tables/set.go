package tables

import (
	"github.com/shopspring/decimal"

	"mortgage-affordability/domain"
)

// Set bundles every table a calculation may consult.
type Set struct {
	AVD         AVDTable
	HKBuyer     FlatRate
	SGBuyer     MarginalBands
	ABSD        ABSDTable
	LTV         LTVTiers
	DownPayment DownPaymentTiers
	Cash        CashRules
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func bound(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func defaultAVDBands() []AVDBand {
	return []AVDBand{
		{UpTo: d("3000000"), Amount: d("100"), Rate: d("0")},
		{UpTo: d("3528240"), Amount: d("100"), Rate: d("0.1")},
		{UpTo: d("4500000"), Amount: d("0"), Rate: d("0.015")},
		{UpTo: d("4935480"), Amount: d("67500"), Rate: d("0.1")},
		{UpTo: d("6000000"), Amount: d("0"), Rate: d("0.0225")},
		{UpTo: d("6642860"), Amount: d("135000"), Rate: d("0.1")},
		{UpTo: d("9000000"), Amount: d("0"), Rate: d("0.03")},
		{UpTo: d("10080000"), Amount: d("270000"), Rate: d("0.1")},
		{UpTo: d("20000000"), Amount: d("0"), Rate: d("0.0375")},
		{UpTo: d("21739120"), Amount: d("750000"), Rate: d("0.1")},
		{UpTo: d("21739121"), Amount: d("0"), Rate: d("0.0425")},
	}
}

func defaultSGBuyerBands() []MarginalBand {
	return []MarginalBand{
		{Width: d("180000"), Rate: d("0.01")},
		{Width: d("180000"), Rate: d("0.02")},
		{Width: d("640000"), Rate: d("0.03")},
		{Width: d("500000"), Rate: d("0.04")},
		{Width: d("1500000"), Rate: d("0.05")},
	}
}

func defaultABSDRows() map[domain.ResidencyClass][]decimal.Decimal {
	return map[domain.ResidencyClass][]decimal.Decimal{
		domain.Citizen:           {d("0"), d("0.17"), d("0.25")},
		domain.PermanentResident: {d("0.05"), d("0.25"), d("0.3")},
		domain.Foreigner:         {d("0.3"), d("0.3"), d("0.3")},
	}
}

func defaultDownPaymentBands() []DownPaymentBand {
	return []DownPaymentBand{
		{UpTo: bound("1000000"), Rule: RuleMultiple, Value: d("9")},
		{UpTo: bound("2250000"), Rule: RuleCap, Value: d("9000000")},
		{UpTo: bound("3000000"), Rule: RuleImpliedLTV, Value: d("0.2")},
		{UpTo: bound("5150000"), Rule: RuleCap, Value: d("12000000")},
		{UpTo: bound("9000000"), Rule: RuleImpliedLTV, Value: d("0.3")},
		{UpTo: bound("12000000"), Rule: RuleComplement, Value: d("30000000")},
		{UpTo: bound("18000000"), Rule: RuleCap, Value: d("18000000")},
		{Rule: RuleMultiple, Value: d("1")},
	}
}

// Default returns the compiled-in tables.
func Default() Set {
	return must(build(defaultDraft()))
}

func must(s Set, err error) Set {
	if err != nil {
		panic(err)
	}
	return s
}

// draft is the unvalidated form of a Set, shared by the defaults and the YAML loader.
type draft struct {
	avdBands        []AVDBand
	avdFallback     decimal.Decimal
	hkBuyerRate     decimal.Decimal
	sgBands         []MarginalBand
	sgRemainder     decimal.Decimal
	absdRows        map[domain.ResidencyClass][]decimal.Decimal
	ltvPercents     []decimal.Decimal
	downPayment     []DownPaymentBand
	cashWithLoan    decimal.Decimal
	cashWithoutLoan decimal.Decimal
	cpfRate         decimal.Decimal
}

func defaultDraft() draft {
	return draft{
		avdBands:        defaultAVDBands(),
		avdFallback:     d("0.15"),
		hkBuyerRate:     d("0.15"),
		sgBands:         defaultSGBuyerBands(),
		sgRemainder:     d("0.06"),
		absdRows:        defaultABSDRows(),
		ltvPercents:     []decimal.Decimal{d("75"), d("45"), d("35")},
		downPayment:     defaultDownPaymentBands(),
		cashWithLoan:    d("0.25"),
		cashWithoutLoan: d("0.05"),
		cpfRate:         d("0.2"),
	}
}

func build(s draft) (Set, error) {
	var (
		set Set
		err error
	)
	if set.AVD, err = NewAVDTable(s.avdBands, s.avdFallback); err != nil {
		return Set{}, err
	}
	if set.HKBuyer, err = NewFlatRate(s.hkBuyerRate); err != nil {
		return Set{}, err
	}
	if set.SGBuyer, err = NewMarginalBands(s.sgBands, s.sgRemainder); err != nil {
		return Set{}, err
	}
	if set.ABSD, err = NewABSDTable(s.absdRows); err != nil {
		return Set{}, err
	}
	if set.LTV, err = NewLTVTiers(s.ltvPercents); err != nil {
		return Set{}, err
	}
	if set.DownPayment, err = NewDownPaymentTiers(s.downPayment); err != nil {
		return Set{}, err
	}
	if set.Cash, err = NewCashRules(s.cashWithLoan, s.cashWithoutLoan, s.cpfRate); err != nil {
		return Set{}, err
	}
	return set, nil
}
