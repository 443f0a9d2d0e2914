package competence

import (
	"iter"
	"slices"
)

// History stores a chronological series of values, each associated with a
// specific competence. It ensures that competences are unique and the series
// is always sorted.
type History[T any] struct {
	keys   []Competence
	values []T
}

// Len returns the number of items in the history.
func (h *History[T]) Len() int { return len(h.keys) }

// Latest returns the latest competence and value in the history.
// If the history is empty, it returns zero values.
func (h *History[T]) Latest() (on Competence, value T) {
	last := len(h.keys) - 1
	if last < 0 {
		return Competence{}, *new(T)
	}
	return h.keys[last], h.values[last]
}

// Earliest returns the earliest competence and value in the history.
// If the history is empty, it returns zero values.
func (h *History[T]) Earliest() (on Competence, value T) {
	if len(h.keys) == 0 {
		return Competence{}, *new(T)
	}
	return h.keys[0], h.values[0]
}

// Append adds a point to the history, keeping it sorted.
//
// An existing value at that competence is overwritten, giving higher
// priority to the last data.
func (h *History[T]) Append(on Competence, v T) *History[T] {
	i, found := h.search(on)
	if found {
		h.values[i] = v
		return h
	}
	h.keys = slices.Insert(h.keys, i, on)
	h.values = slices.Insert(h.values, i, v)
	return h
}

// Get returns the value at 'on' and true, or zero value and false.
func (h *History[T]) Get(on Competence) (T, bool) {
	i, found := h.search(on)
	if found {
		return h.values[i], true
	}
	var zero T
	return zero, false
}

// ValueAsOf returns the value at the given competence, or the most recent
// value before it. It returns the value and true if found, otherwise the
// zero value and false.
func (h *History[T]) ValueAsOf(on Competence) (T, bool) {
	i, found := h.search(on)
	if found {
		return h.values[i], true
	}
	// Not found. `i` is the index where `on` would be inserted; the value we
	// want is at `i-1`, the last entry before the target competence.
	if i == 0 {
		var zero T
		return zero, false
	}
	return h.values[i-1], true
}

// Values returns an iterator over all competence/value pairs in the history,
// in chronological order.
func (h *History[T]) Values() iter.Seq2[Competence, T] {
	return func(yield func(Competence, T) bool) {
		for i, on := range h.keys {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}

// search is a binary search over the sorted keys.
func (h *History[T]) search(on Competence) (int, bool) {
	return slices.BinarySearchFunc(h.keys, on, Competence.Compare)
}
