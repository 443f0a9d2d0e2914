package planner

import (
	"fmt"
	"math"
)

type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// MonthlyRate converts an annual percentage (12 for 12% a year) into the
// equivalent compound monthly rate (0.009488... for 12%).
func MonthlyRate(annualPercent float64) float64 {
	return math.Pow(1+annualPercent/100, 1.0/12) - 1
}

// Compound composes two rates over the same period: (1+a)*(1+b)-1.
func Compound(a, b float64) float64 { return (1+a)*(1+b) - 1 }

// RoundRate truncates a rate to 4 decimals for display. Internally rates are
// always kept at full precision.
func RoundRate(r float64) float64 { return math.Round(r*1e4) / 1e4 }
