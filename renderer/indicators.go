package renderer

import (
	"fmt"
	"io"

	planner "github.com/GustavoNoll/advanced-finance-planner-sub005"
)

// RenderCatalogSummary writes a coverage summary of the indicator catalog,
// one row per series with its native currency and covered competences.
func RenderCatalogSummary(w io.Writer, c *planner.Catalog) {
	fmt.Fprint(w, "# Indicator Datasets\n\n")
	fmt.Fprintf(w, "*As of %s*\n\n", Now().Format("2006-01-02 15:04:05"))

	fmt.Fprintln(w, "| Indicator | Currency | FX | Coverage | Months |")
	fmt.Fprintln(w, "|:---|:---|:---|:---|---:|")
	for _, s := range c.Series() {
		fx := ""
		if s.NeedsFX() {
			fx = "yes"
		}
		fmt.Fprintf(w, "| %s | %s | %s | %s | %d |\n",
			s.Name(), s.Native(), fx, coverage(s), s.Len())
	}
}

func coverage(s *planner.IndicatorSeries) string {
	if s.Len() == 0 {
		return "-"
	}
	var first, last string
	i := 0
	for on := range s.Values() {
		if i == 0 {
			first = on.String()
		}
		last = on.String()
		i++
	}
	return first + ".." + last
}
