package planner

import (
	"github.com/GustavoNoll/advanced-finance-planner-sub005/competence"
)

// ProjectionInput is the immutable snapshot of advisor data the projector
// reads. Concurrent callers must each pass their own snapshot; the engine
// keeps no state across invocations.
type ProjectionInput struct {
	Plan    Plan
	Regimes Regimes
	Records ActualRecords
	Items   []CashFlowItem

	// Catalog supplies the plan's inflation index for accumulated-inflation
	// adjustments and the old-portfolio track. It may be nil for plans that
	// need neither.
	Catalog *Catalog
}

// ComputeProjection runs the month-by-month simulation from the plan's start
// to the competence at which the subject reaches the limit age, blending
// realized history with simulated future.
//
// Competences covered by an ActualRecord use its ending balance as the
// authoritative checkpoint. Afterwards the balance compounds at the active
// regime's monthly rate, receives the regime's deposit or pays the desired
// income, and absorbs expanded cash-flow amounts. Once accumulation ends the
// plan type's terminal policy bounds the withdrawals.
func ComputeProjection(in ProjectionInput) ([]MonthlySnapshot, error) {
	if err := in.Plan.Validate(); err != nil {
		return nil, err
	}
	if err := in.Regimes.Validate(); err != nil {
		return nil, err
	}

	plan := in.Plan
	limit := competence.New(plan.BirthDate.Year()+plan.LimitAge, plan.BirthDate.Month())
	if limit.Before(plan.EndAccumulation) {
		return nil, &InvalidInputError{Field: "limit_age", Reason: "limit age is reached before the accumulation end date"}
	}

	needsInflation := plan.AdjustDepositsForInflation || plan.AdjustIncomeForInflation ||
		plan.OldPortfolioSpread != nil || plan.Type != EndAtLimitAge
	if needsInflation && plan.InflationIndex == "" {
		return nil, &InvalidInputError{Field: "inflation_index", Reason: "plan needs an inflation index for real-terms computations"}
	}

	p := &projector{
		in:      in,
		horizon: competence.NewRange(plan.Start, limit),
		records: in.Records.Index(),

		needsInflation: needsInflation,
		inflFactor:     1,
	}
	p.schedule = ExpandEvents(in.Items, p.horizon)
	if p.records.Len() > 0 {
		p.lastReal, _ = p.records.Latest()
		p.hasReal = true
	}
	return p.run()
}

// projector holds the simulation state for one ComputeProjection call.
type projector struct {
	in       ProjectionInput
	horizon  competence.Range
	records  *competence.History[ActualRecord]
	schedule Schedule

	lastReal competence.Competence
	hasReal  bool

	needsInflation bool
	inflFactor     float64 // accumulated inflation factor since plan start

	// decumulation floors, captured when accumulation ends
	principal       Money
	principalFactor float64
}

func (p *projector) run() ([]MonthlySnapshot, error) {
	plan := p.in.Plan
	balance := plan.InitialAmount
	oldBalance := plan.InitialAmount
	oldTrack := plan.OldPortfolioSpread != nil

	snapshots := make([]MonthlySnapshot, 0, p.horizon.Months())
	captured := false

	for on := range p.horizon.Values() {
		if p.needsInflation {
			rate, err := p.monthlyInflation(on)
			if err != nil {
				return nil, err
			}
			p.inflFactor *= 1 + rate
		}

		accumulating := !on.After(plan.EndAccumulation)
		if !accumulating && !captured {
			// entering decumulation: freeze the real-terms principal floor
			p.principal = balance
			p.principalFactor = p.inflFactor
			captured = true
		}

		snap := MonthlySnapshot{On: on, Age: on.YearsSince(plan.BirthDate)}

		if rec, ok := p.records.Get(on); ok {
			balance = rec.EndingBalance
			snap.ActualValue = rec.EndingBalance
			snap.ProjectedValue = rec.EndingBalance
			snap.GrowthRate = rec.GrowthRate()
			snap.IsRealDataPoint = true
		} else {
			var err error
			balance, err = p.step(balance, on, accumulating)
			if err != nil {
				return nil, err
			}
			snap.ProjectedValue = balance
		}

		if oldTrack {
			var err error
			oldBalance, err = p.stepOld(oldBalance, on, accumulating)
			if err != nil {
				return nil, err
			}
			v := oldBalance
			snap.OldPortfolioValue = &v
		}

		snapshots = append(snapshots, snap)
	}
	return snapshots, nil
}

// step advances the simulated balance by one competence.
func (p *projector) step(balance Money, on competence.Competence, accumulating bool) (Money, error) {
	plan := p.in.Plan
	regime := p.in.Regimes.ActiveAt(on)
	cash := p.schedule.At(on)

	if accumulating {
		deposit := regime.MonthlyDeposit
		if plan.AdjustDepositsForInflation {
			deposit = deposit.Scale(p.inflFactor)
		}
		balance = balance.Grow(regime.MonthlyRate(regime.InflateDepositRate)).Add(deposit).Add(cash)
		return floorZero(balance, plan.Currency), nil
	}

	income := regime.DesiredIncome
	if plan.AdjustIncomeForInflation {
		income = income.Scale(p.inflFactor)
	}
	grown := balance.Grow(regime.MonthlyRate(regime.InflateIncomeRate))

	// The terminal policy bounds what the desired income may draw.
	var floor Money
	switch plan.Type {
	case EndAtLimitAge:
		floor = M(0, string(plan.Currency))
	case LeaveLegacy:
		floor = plan.LegacyAmount.Scale(p.inflFactor)
	case KeepPrincipal:
		floor = p.principal.Scale(p.inflFactor / p.principalFactor)
	}

	available := grown.Sub(floor)
	withdrawal := income
	if available.LessThan(withdrawal) {
		withdrawal = available
	}
	if withdrawal.IsNegative() {
		withdrawal = M(0, string(plan.Currency))
	}

	return floorZero(grown.Sub(withdrawal).Add(cash), plan.Currency), nil
}

// stepOld advances the parallel old-portfolio trajectory: the same flows,
// but compounding the plan's inflation index with the configured annual
// spread instead of the regimes' expected returns.
func (p *projector) stepOld(balance Money, on competence.Competence, accumulating bool) (Money, error) {
	plan := p.in.Plan
	regime := p.in.Regimes.ActiveAt(on)

	inflation, err := p.monthlyInflation(on)
	if err != nil {
		return Money{}, err
	}
	rate := Compound(inflation, MonthlyRate(*plan.OldPortfolioSpread))
	balance = balance.Grow(rate)

	if rec, ok := p.records.Get(on); ok {
		// realized months replay the recorded contribution
		balance = balance.Add(rec.Contribution)
	} else if accumulating {
		deposit := regime.MonthlyDeposit
		if plan.AdjustDepositsForInflation {
			deposit = deposit.Scale(p.inflFactor)
		}
		balance = balance.Add(deposit)
	} else {
		income := regime.DesiredIncome
		if plan.AdjustIncomeForInflation {
			income = income.Scale(p.inflFactor)
		}
		balance = balance.Sub(income)
	}

	return floorZero(balance.Add(p.schedule.At(on)), plan.Currency), nil
}

// monthlyInflation returns the inflation rate for one competence: realized
// months draw on the plan's inflation index, simulated months on the active
// regime's assumption. An index gap over the realized period propagates as
// MissingDataError, never as a silent zero.
func (p *projector) monthlyInflation(on competence.Competence) (float64, error) {
	if p.hasReal && !on.After(p.lastReal) {
		if p.in.Catalog != nil {
			if rate, ok := p.in.Catalog.MonthlyReturn(p.in.Plan.InflationIndex, on, Index); ok {
				return rate, nil
			}
		}
		return 0, &MissingDataError{Indicator: p.in.Plan.InflationIndex, On: on}
	}
	return MonthlyRate(float64(p.in.Regimes.ActiveAt(on).Inflation)), nil
}

// floorZero clamps a depleted balance at exactly zero.
func floorZero(m Money, cur Currency) Money {
	if m.IsNegative() {
		return M(0, string(cur))
	}
	return m
}
