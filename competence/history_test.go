package competence

import (
	"testing"
	"time"
)

func TestHistoryAppend(t *testing.T) {
	h := new(History[string])
	c1, v1 := New(2025, time.July), "25 Jul"
	c2, v2 := New(2024, time.July), "24 Jul"

	// Append two values in reverse order and check that the history stays
	// sorted at every step of the way.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(c1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(c1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(c2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(c2, v2).Len() = %v want 2", h.Len())
	}

	if h.keys[0] != c2 || h.keys[1] != c1 {
		t.Errorf("history keys = %v want [%v %v]", h.keys, c2, c1)
	}
	if h.values[0] != v2 || h.values[1] != v1 {
		t.Errorf("history values = %v want [%v %v]", h.values, v2, v1)
	}

	// Appending at an existing competence overwrites.
	h.Append(c1, "replaced")
	if h.Len() != 2 {
		t.Errorf("Append(c1, replaced).Len() = %v want 2", h.Len())
	}
	if got, _ := h.Get(c1); got != "replaced" {
		t.Errorf("Get(c1) = %q want %q", got, "replaced")
	}
}

func TestHistoryValueAsOf(t *testing.T) {
	h := new(History[float64])
	h.Append(MustParse("2025-01"), 1.0)
	h.Append(MustParse("2025-03"), 3.0)
	h.Append(MustParse("2025-06"), 6.0)

	testCases := []struct {
		on     string
		want   float64
		wantOk bool
	}{
		{"2024-12", 0, false}, // before the first entry
		{"2025-01", 1.0, true},
		{"2025-02", 1.0, true}, // gap falls back to previous entry
		{"2025-03", 3.0, true},
		{"2025-05", 3.0, true},
		{"2025-09", 6.0, true}, // after the last entry
	}

	for _, tc := range testCases {
		got, ok := h.ValueAsOf(MustParse(tc.on))
		if ok != tc.wantOk || got != tc.want {
			t.Errorf("ValueAsOf(%s) = %v, %v want %v, %v", tc.on, got, ok, tc.want, tc.wantOk)
		}
	}
}

func TestHistoryGet(t *testing.T) {
	h := new(History[float64])
	h.Append(MustParse("2025-01"), 1.0)

	if _, ok := h.Get(MustParse("2025-02")); ok {
		t.Errorf("Get(2025-02) reported ok on a missing competence")
	}
	if got, ok := h.Get(MustParse("2025-01")); !ok || got != 1.0 {
		t.Errorf("Get(2025-01) = %v, %v want 1, true", got, ok)
	}
}

func TestHistoryEarliestLatest(t *testing.T) {
	h := new(History[int])
	if on, v := h.Latest(); on != (Competence{}) || v != 0 {
		t.Errorf("empty Latest() = %v, %v want zero values", on, v)
	}

	h.Append(MustParse("2025-05"), 5)
	h.Append(MustParse("2025-01"), 1)

	if on, v := h.Earliest(); on != MustParse("2025-01") || v != 1 {
		t.Errorf("Earliest() = %v, %v want 2025-01, 1", on, v)
	}
	if on, v := h.Latest(); on != MustParse("2025-05") || v != 5 {
		t.Errorf("Latest() = %v, %v want 2025-05, 5", on, v)
	}
}
