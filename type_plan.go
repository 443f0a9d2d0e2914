package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/GustavoNoll/advanced-finance-planner-sub005/competence"
)

// PlanType selects the terminal policy applied once the accumulation phase
// ends.
type PlanType int

const (
	// EndAtLimitAge decumulates the whole balance toward zero by the limit age.
	EndAtLimitAge PlanType = iota
	// LeaveLegacy decumulates while preserving the legacy amount, in real
	// terms, at the limit age.
	LeaveLegacy
	// KeepPrincipal preserves the real value of the principal indefinitely;
	// only income is withdrawn.
	KeepPrincipal
)

func (t PlanType) String() string {
	switch t {
	case EndAtLimitAge:
		return "end-at-limit-age"
	case LeaveLegacy:
		return "leave-legacy"
	case KeepPrincipal:
		return "keep-principal"
	default:
		return "unknown"
	}
}

func ParsePlanType(s string) (PlanType, error) {
	switch strings.ToLower(s) {
	case "end-at-limit-age", "end":
		return EndAtLimitAge, nil
	case "leave-legacy", "legacy":
		return LeaveLegacy, nil
	case "keep-principal", "principal":
		return KeepPrincipal, nil
	default:
		return EndAtLimitAge, fmt.Errorf("unknown plan type %q", s)
	}
}

// Plan is the advisor-owned definition of a retirement plan. The engine only
// reads it; creation and edition belong to the advisor layer.
type Plan struct {
	InitialAmount   Money
	Start           competence.Competence // first simulated competence
	BirthDate       time.Time             // for age annotation only
	FinalAge        int                   // age at which accumulation ends
	EndAccumulation competence.Competence
	Type            PlanType
	Currency        Currency
	LimitAge        int   // age by which decumulation completes
	LegacyAmount    Money // preserved balance for LeaveLegacy plans

	// AdjustDepositsForInflation and AdjustIncomeForInflation scale the
	// active regime's monthly deposit/desired income by the inflation
	// accumulated since the plan start. Realized months draw on the plan's
	// inflation index; simulated months on the regime's inflation assumption.
	AdjustDepositsForInflation bool
	AdjustIncomeForInflation   bool

	// InflationIndex is the indicator used for accumulated-inflation
	// adjustments and for the old-portfolio track (typically IPCA).
	InflationIndex Indicator

	// OldPortfolioSpread, when set, runs a parallel trajectory compounding
	// the plan's inflation index with this annual percentage spread instead
	// of the regimes' expected returns.
	OldPortfolioSpread *float64
}

// Validate refuses a plan the engine cannot compute on.
func (p Plan) Validate() error {
	if p.Currency == "" || p.Currency == Index {
		return &InvalidInputError{Field: "currency", Reason: "plan currency must be BRL or USD"}
	}
	if p.EndAccumulation.Before(p.Start) {
		return &InvalidInputError{Field: "end_accumulation", Reason: "accumulation ends before the plan starts"}
	}
	if p.LimitAge <= p.FinalAge {
		return &InvalidInputError{Field: "limit_age", Reason: "limit age must be greater than final age"}
	}
	if p.BirthDate.IsZero() {
		return &InvalidInputError{Field: "birth_date", Reason: "missing birth date"}
	}
	if p.Type == LeaveLegacy && !p.LegacyAmount.IsPositive() {
		return &InvalidInputError{Field: "legacy_amount", Reason: "leave-legacy plans need a positive legacy amount"}
	}
	return nil
}
