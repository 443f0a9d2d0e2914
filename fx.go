package planner

import (
	"github.com/GustavoNoll/advanced-finance-planner-sub005/competence"
)

// Converter adjusts values and returns between an indicator's native
// currency and the display currency, using the catalog's FX series
// (BRL per USD, keyed by competence).
type Converter struct {
	display Currency
	catalog *Catalog
}

// NewConverter returns a converter toward the given display currency.
func NewConverter(display Currency, catalog *Catalog) *Converter {
	return &Converter{display: display, catalog: catalog}
}

// Display returns the converter's display currency.
func (v *Converter) Display() Currency { return v.display }

// rate returns the BRL-per-USD level at the competence.
func (v *Converter) rate(on competence.Competence) (float64, error) {
	level, ok := v.catalog.RawLevel(USDBRL, on, Index)
	if !ok {
		return 0, &MissingDataError{Indicator: USDBRL, On: on}
	}
	return level, nil
}

// Value converts a monetary value into the display currency at the given
// competence. Same-currency values pass through unchanged.
func (v *Converter) Value(m Money, on competence.Competence) (Money, error) {
	native := Currency(m.Currency())
	if native == v.display || native == "" {
		return m, nil
	}
	level, err := v.rate(on)
	if err != nil {
		return Money{}, err
	}
	switch {
	case native == USD && v.display == BRL:
		return M(m.value.Mul(newDecimal(level)), string(BRL)), nil
	case native == BRL && v.display == USD:
		return M(m.value.Div(newDecimal(level)), string(USD)), nil
	default:
		return m, nil
	}
}

// fxReturn returns the FX series' monthly movement at the competence:
// level(on)/level(on-1) - 1.
func (v *Converter) fxReturn(on competence.Competence) (float64, error) {
	now, err := v.rate(on)
	if err != nil {
		return 0, err
	}
	prev, err := v.rate(on.Add(-1))
	if err != nil {
		return 0, err
	}
	if prev == 0 {
		return 0, nil
	}
	return now/prev - 1, nil
}

// AdjustReturn composes an asset's native monthly return with the FX
// movement over the same competence so it reads in the display currency.
// It is the identity when the native currency matches the display currency
// or the indicator is Index-tagged (no FX adjustment applies).
//
// Converting a USD-denominated return into a BRL display amplifies it by the
// BRL depreciation of the month; the inverse composition applies when
// converting a BRL-denominated return into a USD display.
func (v *Converter) AdjustReturn(rate float64, on competence.Competence, native Currency) (float64, error) {
	if native == v.display || native == Index {
		return rate, nil
	}
	fx, err := v.fxReturn(on)
	if err != nil {
		return 0, err
	}
	switch {
	case native == USD && v.display == BRL:
		return Compound(rate, fx), nil
	case native == BRL && v.display == USD:
		return (1+rate)/(1+fx) - 1, nil
	default:
		return rate, nil
	}
}

// MonthlyReturnIn resolves the indicator's monthly return at the competence,
// expressed in the display currency. It selects the sub-series matching the
// display currency when one exists and FX-adjusts otherwise (only for series
// flagged as needing it). Absence of indicator or FX data is reported as a
// MissingDataError carrying the offending indicator, competence and currency.
func (v *Converter) MonthlyReturnIn(name Indicator, on competence.Competence) (float64, error) {
	s := v.catalog.resolve(name, v.display)
	if s == nil {
		return 0, &MissingDataError{Indicator: name, On: on, Currency: v.display}
	}
	p, ok := s.Get(on)
	if !ok {
		return 0, &MissingDataError{Indicator: name, On: on, Currency: v.display}
	}
	if !s.needsFX || s.native == v.display || s.native == Index {
		return p.Rate, nil
	}
	return v.AdjustReturn(p.Rate, on, s.native)
}
