package planner

import (
	"math"
	"time"

	"github.com/GustavoNoll/advanced-finance-planner-sub005/competence"
)

// brl is a helper for tests to create BRL money from const
func brl(v float64) Money { return M(v, "BRL") }

// usd is a helper for tests to create USD money from const
func usd(v float64) Money { return M(v, "USD") }

// cpt is a helper for tests to parse a competence from const
func cpt(s string) competence.Competence { return competence.MustParse(s) }

// closeTo reports whether two rates agree within 1e-9.
func closeTo(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

var testBirth = time.Date(1990, time.January, 15, 0, 0, 0, 0, time.UTC)

// testCatalog builds a small read-only catalog covering 2024 for CDI, IPCA,
// SP500 (USD native, FX-adjusted) and the USDBRL FX series.
func testCatalog() *Catalog {
	c := NewCatalog()

	cdi := NewIndicatorSeries(CDI, Index, false)
	ipca := NewIndicatorSeries(IPCA, Index, false)
	for m := time.January; m <= time.December; m++ {
		on := competence.New(2024, m)
		cdi.Append(on, IndicatorPoint{Rate: 0.009})
		ipca.Append(on, IndicatorPoint{Rate: 0.004})
	}
	c.Add(cdi)
	c.Add(ipca)

	sp := NewIndicatorSeries(SP500, USD, true)
	sp.Append(cpt("2024-01"), IndicatorPoint{Rate: 0.02})
	sp.Append(cpt("2024-02"), IndicatorPoint{Rate: -0.01})
	c.Add(sp)

	fx := NewIndicatorSeries(USDBRL, Index, false)
	fx.Append(cpt("2023-12"), IndicatorPoint{Level: 5.00})
	fx.Append(cpt("2024-01"), IndicatorPoint{Level: 5.10})
	fx.Append(cpt("2024-02"), IndicatorPoint{Level: 5.05})
	c.Add(fx)

	return c
}
