package competence

import (
	"fmt"
	"iter"
)

// Range represents an inclusive range of competences.
type Range struct{ From, To Competence }

// NewRange returns the range [from, to], swapping the bounds if needed.
func NewRange(from, to Competence) Range {
	if to.Before(from) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains reports whether the competence is included in the range
// (boundaries included).
func (r Range) Contains(c Competence) bool { return !c.Before(r.From) && !c.After(r.To) }

// Months returns the number of competences in the range.
func (r Range) Months() int { return r.To.Sub(r.From) + 1 }

// Values returns an iterator over every competence in the range, in
// chronological order.
func (r Range) Values() iter.Seq[Competence] {
	return func(yield func(Competence) bool) {
		for c := r.From; !c.After(r.To); c = c.Add(1) {
			if !yield(c) {
				return
			}
		}
	}
}

// String formats the range as "2006-01..2007-12".
func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
