package planner

import (
	"github.com/GustavoNoll/advanced-finance-planner-sub005/competence"
)

// MonthlySnapshot is one point of the computed wealth trajectory.
type MonthlySnapshot struct {
	On  competence.Competence
	Age int // completed years at this competence

	// ActualValue is the realized ending balance; it is only meaningful when
	// IsRealDataPoint is true.
	ActualValue Money
	// ProjectedValue is the trajectory value. On real data points it equals
	// ActualValue, afterwards it carries the simulation.
	ProjectedValue Money
	// OldPortfolioValue is the parallel old-portfolio trajectory, present
	// only when the plan configures an old-portfolio profitability.
	OldPortfolioValue *Money
	// GrowthRate is the realized month's growth derived from the record's
	// balances; it is only meaningful when IsRealDataPoint is true.
	GrowthRate float64

	IsRealDataPoint bool
}

func (s MonthlySnapshot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("on", s.On)
	w.Append("age", s.Age)
	if s.IsRealDataPoint {
		w.Append("actualValue", s.ActualValue)
		w.Append("growthRate", s.GrowthRate)
	}
	w.Append("projectedValue", s.ProjectedValue)
	if s.OldPortfolioValue != nil {
		w.Append("oldPortfolioValue", *s.OldPortfolioValue)
	}
	w.Append("isRealDataPoint", s.IsRealDataPoint)
	return w.MarshalJSON()
}
