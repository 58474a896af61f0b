package tables

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"mortgage-affordability/domain"
)

// YAMLTables is the on-disk form of a Set. Every section is optional; a
// missing section keeps the compiled-in default.
type YAMLTables struct {
	AVD         *YAMLAVD              `yaml:"avd"`
	HKBuyer     *YAMLFlatRate         `yaml:"hk_bsd"`
	SGBuyer     *YAMLMarginal         `yaml:"sg_bsd"`
	ABSD        map[string][]float64  `yaml:"absd"`
	LTV         []float64             `yaml:"ltv"`
	DownPayment []YAMLDownPaymentBand `yaml:"down_payment"`
	Cash        *YAMLCash             `yaml:"cash"`
}

type YAMLAVD struct {
	FallbackRate float64       `yaml:"fallback_rate"`
	Bands        []YAMLAVDBand `yaml:"bands"`
}

type YAMLAVDBand struct {
	UpTo   float64 `yaml:"up_to"`
	Amount float64 `yaml:"amount"`
	Rate   float64 `yaml:"rate"`
}

type YAMLFlatRate struct {
	Rate float64 `yaml:"rate"`
}

type YAMLMarginal struct {
	RemainderRate float64            `yaml:"remainder_rate"`
	Bands         []YAMLMarginalBand `yaml:"bands"`
}

type YAMLMarginalBand struct {
	Width float64 `yaml:"width"`
	Rate  float64 `yaml:"rate"`
}

type YAMLDownPaymentBand struct {
	UpTo  *float64 `yaml:"up_to"`
	Rule  string   `yaml:"rule"`
	Value float64  `yaml:"value"`
}

type YAMLCash struct {
	WithLoanRate    float64 `yaml:"with_loan_rate"`
	WithoutLoanRate float64 `yaml:"without_loan_rate"`
	CPFRate         float64 `yaml:"cpf_rate"`
}

// LoadFile reads and validates a YAML rate-table override.
func LoadFile(path string) (Set, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Set{}, &domain.OpError{
			Op:    "tables.load_file",
			Kind:  domain.KindTableConfig,
			Field: path,
			Err:   err,
		}
	}
	return Parse(b)
}

// Parse decodes a YAML document on top of the default tables.
func Parse(b []byte) (Set, error) {
	const op = "tables.parse"

	var dto YAMLTables
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return Set{}, &domain.OpError{Op: op, Kind: domain.KindTableConfig, Err: err}
	}

	s, err := dto.merge(defaultDraft())
	if err != nil {
		return Set{}, err
	}
	return build(s)
}

func (y YAMLTables) merge(s draft) (draft, error) {
	if y.AVD != nil {
		s.avdFallback = decimal.NewFromFloat(y.AVD.FallbackRate)
		s.avdBands = make([]AVDBand, 0, len(y.AVD.Bands))
		for _, b := range y.AVD.Bands {
			s.avdBands = append(s.avdBands, AVDBand{
				UpTo:   decimal.NewFromFloat(b.UpTo),
				Amount: decimal.NewFromFloat(b.Amount),
				Rate:   decimal.NewFromFloat(b.Rate),
			})
		}
	}
	if y.HKBuyer != nil {
		s.hkBuyerRate = decimal.NewFromFloat(y.HKBuyer.Rate)
	}
	if y.SGBuyer != nil {
		s.sgRemainder = decimal.NewFromFloat(y.SGBuyer.RemainderRate)
		s.sgBands = make([]MarginalBand, 0, len(y.SGBuyer.Bands))
		for _, b := range y.SGBuyer.Bands {
			s.sgBands = append(s.sgBands, MarginalBand{
				Width: decimal.NewFromFloat(b.Width),
				Rate:  decimal.NewFromFloat(b.Rate),
			})
		}
	}
	if y.ABSD != nil {
		s.absdRows = make(map[domain.ResidencyClass][]decimal.Decimal, len(y.ABSD))
		for name, row := range y.ABSD {
			class, ok := domain.ParseResidencyClass(name)
			if !ok {
				return draft{}, domain.TableConfig("tables.parse", "absd", "unknown residency class %q", name)
			}
			if _, dup := s.absdRows[class]; dup {
				return draft{}, domain.TableConfig("tables.parse", "absd", "duplicate residency class %q (from %q)", class, name)
			}
			s.absdRows[class] = decimals(row)
		}
	}
	if y.LTV != nil {
		s.ltvPercents = decimals(y.LTV)
	}
	if y.DownPayment != nil {
		s.downPayment = make([]DownPaymentBand, 0, len(y.DownPayment))
		for _, b := range y.DownPayment {
			band := DownPaymentBand{Rule: LoanRule(b.Rule), Value: decimal.NewFromFloat(b.Value)}
			if b.UpTo != nil {
				upTo := decimal.NewFromFloat(*b.UpTo)
				band.UpTo = &upTo
			}
			s.downPayment = append(s.downPayment, band)
		}
	}
	if y.Cash != nil {
		s.cashWithLoan = decimal.NewFromFloat(y.Cash.WithLoanRate)
		s.cashWithoutLoan = decimal.NewFromFloat(y.Cash.WithoutLoanRate)
		s.cpfRate = decimal.NewFromFloat(y.Cash.CPFRate)
	}
	return s, nil
}

func decimals(vs []float64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(vs))
	for i, v := range vs {
		out[i] = decimal.NewFromFloat(v)
	}
	return out
}

// Export renders a Set back into its YAML form.
func Export(s Set) YAMLTables {
	var y YAMLTables

	y.AVD = &YAMLAVD{FallbackRate: s.AVD.FallbackRate().InexactFloat64()}
	for _, b := range s.AVD.Bands() {
		y.AVD.Bands = append(y.AVD.Bands, YAMLAVDBand{
			UpTo:   b.UpTo.InexactFloat64(),
			Amount: b.Amount.InexactFloat64(),
			Rate:   b.Rate.InexactFloat64(),
		})
	}

	y.HKBuyer = &YAMLFlatRate{Rate: s.HKBuyer.Rate().InexactFloat64()}

	y.SGBuyer = &YAMLMarginal{RemainderRate: s.SGBuyer.RemainderRate().InexactFloat64()}
	for _, b := range s.SGBuyer.Bands() {
		y.SGBuyer.Bands = append(y.SGBuyer.Bands, YAMLMarginalBand{
			Width: b.Width.InexactFloat64(),
			Rate:  b.Rate.InexactFloat64(),
		})
	}

	y.ABSD = make(map[string][]float64, len(residencyClasses))
	for _, class := range residencyClasses {
		y.ABSD[string(class)] = floats(s.ABSD.Row(class))
	}

	y.LTV = floats(s.LTV.Percents())

	for _, b := range s.DownPayment.Bands() {
		band := YAMLDownPaymentBand{Rule: string(b.Rule), Value: b.Value.InexactFloat64()}
		if b.UpTo != nil {
			upTo := b.UpTo.InexactFloat64()
			band.UpTo = &upTo
		}
		y.DownPayment = append(y.DownPayment, band)
	}

	y.Cash = &YAMLCash{
		WithLoanRate:    s.Cash.WithLoanRate().InexactFloat64(),
		WithoutLoanRate: s.Cash.WithoutLoanRate().InexactFloat64(),
		CPFRate:         s.Cash.CPFRate().InexactFloat64(),
	}
	return y
}

func floats(ds []decimal.Decimal) []float64 {
	out := make([]float64, len(ds))
	for i, v := range ds {
		out[i] = v.InexactFloat64()
	}
	return out
}

// Fingerprint identifies the table contents, so results computed under
// different tables never share a cache entry.
func (s Set) Fingerprint() string {
	b, err := yaml.Marshal(Export(s))
	if err != nil {
		return ""
	}
	return strconv.FormatUint(xxhash.Sum64(b), 16)
}
