package renderer

import (
	"fmt"
	"os"
	"time"

	planner "github.com/GustavoNoll/advanced-finance-planner-sub005"
)

// Now is the current time used in reports.
// it has to be a global function so that tests can override it.
func Now() time.Time {
	if os.Getenv("PLANNER_TESTING_NOW") != "" {
		t, err := time.Parse("2006-01-02 15:04:05", os.Getenv("PLANNER_TESTING_NOW"))
		if err != nil {
			panic(err)
		}
		return t
	}
	return time.Now()
}

// Projection is a struct to represent a projection trajectory for rendering.
type Projection struct {
	AsOf         string          `json:"asOf"`
	PlanType     string          `json:"planType"`
	Currency     string          `json:"currency"`
	Horizon      string          `json:"horizon"`
	FinalBalance planner.Money   `json:"finalBalance"`
	Rows         []ProjectionRow `json:"rows"`
}

// ProjectionRow is one monthly snapshot formatted for rendering.
type ProjectionRow struct {
	On        string        `json:"on"`
	Age       int           `json:"age"`
	Phase     string        `json:"phase"`
	Projected planner.Money `json:"projected"`
	// Actual is the realized balance, or "-" for simulated months.
	Actual string `json:"actual"`
	// Growth is the realized month's growth percentage, or "-" for simulated
	// months.
	Growth string `json:"growth"`
	// Old is the alternative-strategy balance, or "-" when the plan has no
	// old-portfolio spread.
	Old string `json:"old"`
}

// NewProjection builds the rendering view of a computed trajectory.
func NewProjection(plan planner.Plan, snapshots []planner.MonthlySnapshot) *Projection {
	p := &Projection{
		AsOf:     Now().Format("2006-01-02 15:04:05"),
		PlanType: plan.Type.String(),
		Currency: string(plan.Currency),
	}
	if len(snapshots) > 0 {
		first, last := snapshots[0], snapshots[len(snapshots)-1]
		p.Horizon = fmt.Sprintf("%s..%s", first.On, last.On)
		p.FinalBalance = last.ProjectedValue
	}
	for _, snap := range snapshots {
		row := ProjectionRow{
			On:        snap.On.String(),
			Age:       snap.Age,
			Phase:     "retirement",
			Projected: snap.ProjectedValue,
			Actual:    "-",
			Growth:    "-",
			Old:       "-",
		}
		if !snap.On.After(plan.EndAccumulation) {
			row.Phase = "accumulation"
		}
		if snap.IsRealDataPoint {
			row.Actual = snap.ActualValue.String()
			row.Growth = fmt.Sprintf("%.2f%%", 100*snap.GrowthRate)
		}
		if snap.OldPortfolioValue != nil {
			row.Old = snap.OldPortfolioValue.String()
		}
		p.Rows = append(p.Rows, row)
	}
	return p
}
