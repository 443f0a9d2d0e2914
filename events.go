package planner

import (
	"github.com/GustavoNoll/advanced-finance-planner-sub005/competence"
)

// Schedule is the expansion of a plan's cash-flow items into per-competence
// signed amounts over a simulation horizon.
type Schedule struct {
	amounts map[competence.Competence]Money

	// Dropped counts scheduled occurrences that fell outside the horizon.
	// The amounts are truncated, not rescheduled; callers may surface the
	// count so truncation is visible instead of silent.
	Dropped int
}

// At returns the net signed amount posting at the given competence.
func (s *Schedule) At(on competence.Competence) Money {
	return s.amounts[on]
}

// Len returns the number of competences with a non-empty posting.
func (s *Schedule) Len() int { return len(s.amounts) }

// ExpandEvents expands one-time, installment and repeating cash-flow items
// into a per-competence signed amount schedule.
//
//   - PayNone: the full amount posts once, at the item's target competence.
//   - PayInstallment: amount/count posts at count occurrences spaced
//     interval months apart, starting at the target.
//   - PayRepeat: the full, undivided amount posts at each of the count
//     occurrences, same spacing rule.
//
// Goal items post as expenses unless already stored negative; event items
// keep their stored sign. Occurrences outside the horizon are dropped and
// counted on the schedule.
func ExpandEvents(items []CashFlowItem, horizon competence.Range) Schedule {
	s := Schedule{amounts: make(map[competence.Competence]Money)}
	for _, item := range items {
		count, interval := item.Installments, item.Interval
		if count < 1 {
			count = 1
		}
		if interval < 1 {
			interval = 1
		}

		var amount Money
		switch item.Mode {
		case PayNone:
			count = 1
			amount = item.signed()
		case PayInstallment:
			amount = item.signed().SplitIn(count)
		case PayRepeat:
			amount = item.signed()
		}

		for k := 0; k < count; k++ {
			on := item.Target.Add(k * interval)
			if !horizon.Contains(on) {
				s.Dropped++
				continue
			}
			s.amounts[on] = s.amounts[on].Add(amount)
		}
	}
	return s
}
