package planner

import (
	"fmt"
	"strings"

	"github.com/GustavoNoll/advanced-finance-planner-sub005/competence"
)

// Indexer names the reference used by the manual/custom yield formulas.
type Indexer string

const (
	IndexerCDI    Indexer = "CDI"
	IndexerIPCA   Indexer = "IPCA"
	IndexerPRE    Indexer = "PRE"    // fixed annual rate
	IndexerManual Indexer = "MANUAL" // already-monthly percentage
)

func ParseIndexer(s string) (Indexer, error) {
	switch strings.ToUpper(s) {
	case "CDI":
		return IndexerCDI, nil
	case "IPCA":
		return IndexerIPCA, nil
	case "PRE":
		return IndexerPRE, nil
	case "MANUAL":
		return IndexerManual, nil
	default:
		return "", fmt.Errorf("unknown indexer %q", s)
	}
}

// Operation tells how the percentage applies to the indexer.
type Operation int

const (
	// OpPercent reads the percentage as a share of the indexer
	// (110 means 110% of CDI).
	OpPercent Operation = iota
	// OpPlus reads the percentage as an annual spread over the indexer
	// (IPCA + 6).
	OpPlus
)

func (o Operation) String() string {
	if o == OpPlus {
		return "+"
	}
	return "%"
}

// IndexerFormula is the manual/custom yield configuration: a percentage
// applied to an indexer with an operation.
type IndexerFormula struct {
	Indexer    Indexer
	Operation  Operation
	Percentage float64
}

// LinkedAsset is one sub-asset sharing a (competence, institution, account)
// period in the auto yield mode.
type LinkedAsset struct {
	Name     string
	Position Money   // post-period position
	Yield    float64 // period monthly yield
	// CashOnly marks cash and dividend-only assets, excluded from both the
	// numerator and the denominator of the weighted average.
	CashOnly bool
}

// AutoYieldInput identifies the linked-asset set reconciled by the auto mode.
type AutoYieldInput struct {
	On          competence.Competence
	Institution string
	Account     string // optional
	Assets      []LinkedAsset

	// InitialValue, when supplied, anchors the financial gain; otherwise the
	// gain is back-solved from the final value and the computed yield.
	InitialValue *Money
}

// YieldResult is the outcome of a reconciliation, for yield-confirmation UIs.
type YieldResult struct {
	On           competence.Competence
	MonthlyYield float64 // full precision; round only for display
	// FinalValue and FinancialGain are set by the modes that can compute
	// them, rounded to 2 decimals.
	FinalValue    *Money
	FinancialGain *Money
	Source        string
}

// DisplayYield returns the yield rounded for display (4 decimals).
func (r *YieldResult) DisplayYield() float64 { return RoundRate(r.MonthlyYield) }

// Calculator reconciles a period's realized yield against market and
// benchmark indicators. The four modes are mutually exclusive.
type Calculator struct {
	catalog *Catalog
	conv    *Converter
}

// NewCalculator returns a calculator over the injected read-only catalog,
// reporting in the given display currency.
func NewCalculator(catalog *Catalog, display Currency) *Calculator {
	return &Calculator{catalog: catalog, conv: NewConverter(display, catalog)}
}

// Auto computes the position-weighted average yield of the period's linked
// sub-assets, excluding cash/dividend-only assets from both sides of the
// ratio.
func (c *Calculator) Auto(in AutoYieldInput) (*YieldResult, error) {
	assets := make([]LinkedAsset, 0, len(in.Assets))
	for _, a := range in.Assets {
		if !a.CashOnly {
			assets = append(assets, a)
		}
	}
	if len(assets) == 0 {
		return nil, &NoAssetsFoundError{On: in.On, Institution: in.Institution}
	}

	total := M(0, "")
	var weighted float64
	for _, a := range assets {
		total = total.Add(a.Position)
		weighted += a.Position.AsFloat() * a.Yield
	}
	if total.IsZero() {
		return nil, &ZeroPositionError{On: in.On}
	}
	yield := weighted / total.AsFloat()

	final := total.Round()
	var gain Money
	switch {
	case in.InitialValue != nil:
		gain = final.Sub(*in.InitialValue).Round()
	case 1+yield == 0:
		// a -100% period leaves no pre-period value to back-solve against
		gain = M(0, final.Currency())
	default:
		// back-solve the gain from the final value and the computed yield
		gain = final.Sub(final.Scale(1 / (1 + yield))).Round()
	}

	return &YieldResult{
		On:            in.On,
		MonthlyYield:  yield,
		FinalValue:    &final,
		FinancialGain: &gain,
		Source:        "auto",
	}, nil
}

// Manual computes the monthly yield of an indexer formula for the period.
// CDI and IPCA formulas need the indicator's entry for the competence and
// fail with MissingDataError without one; PRE and MANUAL never depend on
// indicator data.
func (c *Calculator) Manual(f IndexerFormula, on competence.Competence) (*YieldResult, error) {
	yield, err := c.formulaYield(f, on)
	if err != nil {
		return nil, err
	}
	return &YieldResult{
		On:           on,
		MonthlyYield: yield,
		Source:       fmt.Sprintf("%s %s %v", f.Indexer, f.Operation, f.Percentage),
	}, nil
}

// Custom is the manual formula plus the derived currency outputs: when an
// initial value and a non-zero percentage are supplied, it computes the
// final value and financial gain, rounded to 2 decimals.
func (c *Calculator) Custom(f IndexerFormula, on competence.Competence, initial *Money) (*YieldResult, error) {
	r, err := c.Manual(f, on)
	if err != nil {
		return nil, err
	}
	if initial != nil && f.Percentage != 0 {
		final := initial.Grow(r.MonthlyYield).Round()
		gain := initial.Scale(r.MonthlyYield).Round()
		r.FinalValue = &final
		r.FinancialGain = &gain
	}
	return r, nil
}

// Market reconciles against a benchmark indicator verbatim: the period's
// monthly return in the calculator's display currency. Absence surfaces as a
// MissingDataError carrying the indicator, period and currency.
func (c *Calculator) Market(benchmark Indicator, on competence.Competence) (*YieldResult, error) {
	yield, err := c.conv.MonthlyReturnIn(benchmark, on)
	if err != nil {
		return nil, err
	}
	return &YieldResult{
		On:           on,
		MonthlyYield: yield,
		Source:       "market:" + string(benchmark),
	}, nil
}

func (c *Calculator) formulaYield(f IndexerFormula, on competence.Competence) (float64, error) {
	switch f.Indexer {
	case IndexerCDI:
		cdi, ok := c.catalog.MonthlyReturn(CDI, on, Index)
		if !ok {
			return 0, &MissingDataError{Indicator: CDI, On: on}
		}
		if f.Operation == OpPlus {
			// annual spread over CDI
			return cdi + MonthlyRate(f.Percentage), nil
		}
		return cdi * f.Percentage / 100, nil

	case IndexerIPCA:
		ipca, ok := c.catalog.MonthlyReturn(IPCA, on, Index)
		if !ok {
			return 0, &MissingDataError{Indicator: IPCA, On: on}
		}
		if f.Operation != OpPlus {
			return 0, &InvalidInputError{Field: "operation", Reason: "IPCA only supports an annual spread (+)"}
		}
		return ipca + MonthlyRate(f.Percentage), nil

	case IndexerPRE:
		// fixed annual rate, no indicator dependency
		return MonthlyRate(f.Percentage), nil

	case IndexerManual:
		// already a monthly percentage
		return f.Percentage / 100, nil

	default:
		return 0, &InvalidInputError{Field: "indexer", Reason: fmt.Sprintf("unknown indexer %q", f.Indexer)}
	}
}
