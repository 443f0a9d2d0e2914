package planner

import (
	"fmt"

	"github.com/GustavoNoll/advanced-finance-planner-sub005/competence"
)

// MissingDataError reports that an indicator has no entry for the requested
// competence/currency combination. It is never retried internally; callers
// surface it as a user-facing "data not available" condition.
type MissingDataError struct {
	Indicator Indicator
	On        competence.Competence
	Currency  Currency
}

func (e *MissingDataError) Error() string {
	if e.Currency == "" {
		return fmt.Sprintf("no data for indicator %s at %s", e.Indicator, e.On)
	}
	return fmt.Sprintf("no data for indicator %s at %s in %s", e.Indicator, e.On, e.Currency)
}

// InvalidInputError reports an input that fails validation before any
// computation begins. Computation is refused, never silently defaulted.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

// NoAssetsFoundError reports that the auto yield mode filtered out every
// linked asset for the period.
type NoAssetsFoundError struct {
	On          competence.Competence
	Institution string
}

func (e *NoAssetsFoundError) Error() string {
	return fmt.Sprintf("no eligible assets found for %s at %s", e.Institution, e.On)
}

// ZeroPositionError reports that the auto yield mode's weighted average has a
// zero total position and cannot be computed.
type ZeroPositionError struct {
	On competence.Competence
}

func (e *ZeroPositionError) Error() string {
	return fmt.Sprintf("total asset position at %s is zero", e.On)
}
