package renderer

import (
	"fmt"

	planner "github.com/GustavoNoll/advanced-finance-planner-sub005"
)

// Yield is a struct to represent a yield reconciliation for rendering.
type Yield struct {
	AsOf          string `json:"asOf"`
	On            string `json:"on"`
	Source        string `json:"source"`
	MonthlyYield  string `json:"monthlyYield"`
	FinalValue    string `json:"finalValue,omitempty"`
	FinancialGain string `json:"financialGain,omitempty"`
}

// NewYield builds the rendering view of a yield reconciliation result.
func NewYield(r *planner.YieldResult) *Yield {
	y := &Yield{
		AsOf:         Now().Format("2006-01-02 15:04:05"),
		On:           r.On.String(),
		Source:       r.Source,
		MonthlyYield: formatRate(r.DisplayYield()),
	}
	if r.FinalValue != nil {
		y.FinalValue = r.FinalValue.String()
	}
	if r.FinancialGain != nil {
		y.FinancialGain = r.FinancialGain.SignedString()
	}
	return y
}

// formatRate renders a monthly fraction as a percentage with 4 decimals.
func formatRate(rate float64) string {
	return fmt.Sprintf("%.4f%%", 100*rate)
}
