package renderer

import (
	"fmt"
	"io"

	planner "github.com/GustavoNoll/advanced-finance-planner-sub005"
	"github.com/GustavoNoll/advanced-finance-planner-sub005/competence"
)

// RenderSchedule writes the expanded cash-flow schedule as a markdown table,
// one row per competence carrying a non-zero flow. It returns true if at
// least one row was written.
func RenderSchedule(w io.Writer, s planner.Schedule, horizon competence.Range) bool {
	var written bool
	ConditionalBlock(w, func(bw io.Writer) bool {
		fmt.Fprintf(bw, "# Cash-Flow Schedule on %s\n\n", horizon)
		fmt.Fprintf(bw, "*As of %s*\n\n", Now().Format("2006-01-02 15:04:05"))

		section := Header(func(hw io.Writer) {
			fmt.Fprintln(hw, "| Month | Net Flow |")
			fmt.Fprintln(hw, "|:---|---:|")
		})
		for on := range horizon.Values() {
			amount := s.At(on)
			if amount.IsZero() {
				continue
			}
			section.PrintHeader(bw)
			fmt.Fprintf(bw, "| %s | %s |\n", on, amount.SignedString())
			written = true
		}

		if s.Dropped > 0 {
			fmt.Fprintf(bw, "\n%d occurrence(s) fall outside the horizon and were dropped.\n", s.Dropped)
		}
		return written || s.Dropped > 0
	})
	return written
}
