package planner

import (
	"github.com/GustavoNoll/advanced-finance-planner-sub005/competence"
)

// ActualRecord is a realized historical month imported by the advisor layer.
// It is authoritative for the competence it covers; the simulation takes
// over afterward.
type ActualRecord struct {
	On                competence.Competence
	StartingBalance   Money
	Contribution      Money
	Return            Money
	ReturnRate        float64
	EndingBalance     Money
	TargetRentability float64
}

// GrowthRate derives the month's growth percentage from its balances.
// A zero starting balance yields 0 rather than a division error.
func (r ActualRecord) GrowthRate() float64 {
	if r.StartingBalance.IsZero() {
		return 0
	}
	return r.EndingBalance.Sub(r.StartingBalance).AsFloat() / r.StartingBalance.AsFloat()
}

// ActualRecords is the realized history of a plan.
type ActualRecords []ActualRecord

// Index builds a competence-keyed history of the records. Duplicated
// competences keep the last record.
func (rs ActualRecords) Index() *competence.History[ActualRecord] {
	h := new(competence.History[ActualRecord])
	for _, r := range rs {
		h.Append(r.On, r)
	}
	return h
}
