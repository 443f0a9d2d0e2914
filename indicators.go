package planner

import (
	"iter"
	"slices"

	"github.com/GustavoNoll/advanced-finance-planner-sub005/competence"
)

// Currency denominates an indicator series or a display preference.
type Currency string

const (
	BRL Currency = "BRL"
	USD Currency = "USD"
	// Index tags dimensionless indicators (inflation and rate indices such
	// as IPCA and CDI) for which currency selection and FX adjustment do
	// not apply.
	Index Currency = "INDEX"
)

// Indicator names a market/economic series.
type Indicator string

const (
	CDI    Indicator = "CDI"  // Brazilian interbank rate
	IPCA   Indicator = "IPCA" // Brazilian consumer inflation index
	IBOV   Indicator = "IBOV"
	SP500  Indicator = "SP500"
	Gold   Indicator = "GOLD"
	BTC    Indicator = "BTC"
	USDBRL Indicator = "USDBRL" // FX series, BRL per USD
)

// IndicatorPoint is one monthly entry of an indicator series.
type IndicatorPoint struct {
	Rate float64 // monthly rate, 0.01 means +1% in the month
	// Level is the raw index level when the dataset carries one (price
	// indices, FX closes). Zero means the dataset has no level.
	Level float64
}

// IndicatorSeries is a named indicator's monthly history in one native
// currency. Series are static, versioned datasets: loaded once, read-only
// for the engine's lifetime.
type IndicatorSeries struct {
	name    Indicator
	native  Currency
	needsFX bool
	points  competence.History[IndicatorPoint]
}

// NewIndicatorSeries declares an empty series. needsFX marks series whose
// returns must be FX-adjusted when displayed in another currency.
func NewIndicatorSeries(name Indicator, native Currency, needsFX bool) *IndicatorSeries {
	return &IndicatorSeries{name: name, native: native, needsFX: needsFX}
}

func (s *IndicatorSeries) Name() Indicator    { return s.name }
func (s *IndicatorSeries) Native() Currency   { return s.native }
func (s *IndicatorSeries) NeedsFX() bool      { return s.needsFX }
func (s *IndicatorSeries) Len() int           { return s.points.Len() }

// Append records the monthly point at the given competence, overwriting any
// existing one.
func (s *IndicatorSeries) Append(on competence.Competence, p IndicatorPoint) {
	s.points.Append(on, p)
}

// Get returns the point at the given competence.
func (s *IndicatorSeries) Get(on competence.Competence) (IndicatorPoint, bool) {
	return s.points.Get(on)
}

// Values iterates the series in chronological order.
func (s *IndicatorSeries) Values() iter.Seq2[competence.Competence, IndicatorPoint] {
	return s.points.Values()
}

type catalogKey struct {
	name   Indicator
	native Currency
}

// Catalog holds every indicator series available to the engine, indexed by
// name and native currency. It is built once at startup and injected as a
// read-only dependency.
type Catalog struct {
	series []*IndicatorSeries
	index  map[catalogKey]*IndicatorSeries
}

// NewCatalog returns a new empty indicator catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		series: make([]*IndicatorSeries, 0),
		index:  make(map[catalogKey]*IndicatorSeries),
	}
}

// Add registers a series. A series with the same name and native currency is
// replaced.
func (c *Catalog) Add(s *IndicatorSeries) {
	key := catalogKey{s.name, s.native}
	if old, ok := c.index[key]; ok {
		c.series = slices.DeleteFunc(c.series, func(x *IndicatorSeries) bool { return x == old })
	}
	c.index[key] = s
	c.series = append(c.series, s)
}

// Has reports whether any sub-series exists for the indicator.
func (c *Catalog) Has(name Indicator) bool {
	for _, s := range c.series {
		if s.name == name {
			return true
		}
	}
	return false
}

// Series returns all registered series.
func (c *Catalog) Series() []*IndicatorSeries { return slices.Clone(c.series) }

// resolve selects the sub-series for a requested display currency. Equity
// indicators may carry both a BRL- and a USD-denominated sub-series; the one
// matching the request wins. Index-tagged indicators ignore the currency.
// When no exact match exists, the indicator's single sub-series is used
// (FX adjustment is then the Converter's concern).
func (c *Catalog) resolve(name Indicator, currency Currency) *IndicatorSeries {
	if s, ok := c.index[catalogKey{name, Index}]; ok {
		return s
	}
	if s, ok := c.index[catalogKey{name, currency}]; ok {
		return s
	}
	for _, s := range c.series {
		if s.name == name {
			return s
		}
	}
	return nil
}

// MonthlyReturn looks up the indicator's monthly rate at the competence for
// the requested currency. The second return is false when no entry exists;
// it never panics and never errors: absence is a first-class outcome that
// callers surface as "data not available".
func (c *Catalog) MonthlyReturn(name Indicator, on competence.Competence, currency Currency) (float64, bool) {
	s := c.resolve(name, currency)
	if s == nil {
		return 0, false
	}
	p, ok := s.Get(on)
	if !ok {
		return 0, false
	}
	return p.Rate, true
}

// RawLevel looks up the indicator's raw level at the competence, when the
// dataset carries one.
func (c *Catalog) RawLevel(name Indicator, on competence.Competence, currency Currency) (float64, bool) {
	s := c.resolve(name, currency)
	if s == nil {
		return 0, false
	}
	p, ok := s.Get(on)
	if !ok || p.Level == 0 {
		return 0, false
	}
	return p.Level, true
}
