package planner

import (
	"slices"

	"github.com/GustavoNoll/advanced-finance-planner-sub005/competence"
)

// Regime is a time-sliced contribution/return configuration, active from its
// effective competence until superseded by a later one. Historically called
// a "micro-plan".
type Regime struct {
	Effective      competence.Competence
	MonthlyDeposit Money
	DesiredIncome  Money
	ExpectedReturn Percent // annual
	Inflation      Percent // annual

	// When set, the monthly return is compounded with the regime's inflation
	// rate for the corresponding phase (deposits during accumulation, income
	// during decumulation).
	InflateDepositRate bool
	InflateIncomeRate  bool
}

// MonthlyRate returns the regime's compound monthly return, optionally
// compounded with the regime's inflation rate when withInflation is set.
func (r Regime) MonthlyRate(withInflation bool) float64 {
	rate := MonthlyRate(float64(r.ExpectedReturn))
	if withInflation {
		rate = Compound(rate, MonthlyRate(float64(r.Inflation)))
	}
	return rate
}

// Regimes is a plan's ordered, non-overlapping sequence of regimes keyed by
// unique, ascending effective competences.
type Regimes []Regime

// Validate refuses an empty, unsorted or duplicated regime list.
func (rs Regimes) Validate() error {
	if len(rs) == 0 {
		return &InvalidInputError{Field: "regimes", Reason: "a plan needs at least one regime"}
	}
	for i := 1; i < len(rs); i++ {
		if !rs[i-1].Effective.Before(rs[i].Effective) {
			return &InvalidInputError{Field: "regimes", Reason: "effective competences must be unique and ascending"}
		}
	}
	return nil
}

// ActiveAt returns the regime with the greatest effective competence not
// after asOf. If asOf precedes every regime, the earliest regime is returned:
// a plan always has an active regime, never an absent one.
//
// The receiver must be non-empty and sorted (see Validate).
func (rs Regimes) ActiveAt(asOf competence.Competence) Regime {
	i, found := slices.BinarySearchFunc(rs, asOf, func(r Regime, c competence.Competence) int {
		return r.Effective.Compare(c)
	})
	if found {
		return rs[i]
	}
	if i == 0 {
		// asOf precedes all regimes: documented fallback to the earliest.
		return rs[0]
	}
	return rs[i-1]
}
