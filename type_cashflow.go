package planner

import (
	"fmt"
	"strings"

	"github.com/GustavoNoll/advanced-finance-planner-sub005/competence"
)

// PaymentMode tells how a cash-flow item's amount is spread over time.
type PaymentMode int

const (
	// PayNone posts the full amount once, at the item's target competence.
	PayNone PaymentMode = iota
	// PayInstallment divides the amount in equal parts over the occurrences.
	PayInstallment
	// PayRepeat posts the full, undivided amount at each occurrence.
	PayRepeat
)

func (m PaymentMode) String() string {
	switch m {
	case PayNone:
		return "none"
	case PayInstallment:
		return "installment"
	case PayRepeat:
		return "repeat"
	default:
		return "unknown"
	}
}

func ParsePaymentMode(s string) (PaymentMode, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return PayNone, nil
	case "installment":
		return PayInstallment, nil
	case "repeat":
		return PayRepeat, nil
	default:
		return PayNone, fmt.Errorf("unknown payment mode %q", s)
	}
}

// CashFlowKind distinguishes advisor-defined goals from life events.
type CashFlowKind int

const (
	// Goal items are expenses: their amount hits the balance negatively
	// unless the advisor already stored it negative.
	Goal CashFlowKind = iota
	// Event items keep their stored sign (an inheritance is positive, a
	// purchase negative).
	Event
)

func (k CashFlowKind) String() string {
	if k == Event {
		return "event"
	}
	return "goal"
}

// CashFlowItem is a goal or event scheduled against the plan's trajectory.
type CashFlowItem struct {
	Kind         CashFlowKind
	Amount       Money                 // signed asset value
	Target       competence.Competence // first (or only) occurrence
	Mode         PaymentMode
	Installments int // number of occurrences for Installment/Repeat
	Interval     int // months between occurrences
}

// signed applies the sign convention: goal amounts post as expenses unless
// already negative, event amounts post as stored.
func (i CashFlowItem) signed() Money {
	if i.Kind == Goal && i.Amount.IsPositive() {
		return i.Amount.Neg()
	}
	return i.Amount
}
