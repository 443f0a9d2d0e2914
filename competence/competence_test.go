package competence

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Competence
		wantErr bool
	}{
		{in: "2025-07", want: New(2025, time.July)},
		{in: "2025-7", want: New(2025, time.July)},
		{in: "1999-12", want: New(1999, time.December)},
		{in: "2025-13", wantErr: true},
		{in: "july 2025", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestAdd_rollsOverYears(t *testing.T) {
	c := New(2025, time.November)

	if got := c.Add(3); got != New(2026, time.February) {
		t.Errorf("%v.Add(3) = %v, want 2026-02", c, got)
	}
	if got := c.Add(-11); got != New(2024, time.December) {
		t.Errorf("%v.Add(-11) = %v, want 2024-12", c, got)
	}
	if got := c.Add(24); got != New(2027, time.November) {
		t.Errorf("%v.Add(24) = %v, want 2027-11", c, got)
	}
}

func TestSub(t *testing.T) {
	a := New(2026, time.February)
	b := New(2025, time.November)

	if got := a.Sub(b); got != 3 {
		t.Errorf("%v.Sub(%v) = %d, want 3", a, b, got)
	}
	if got := b.Sub(a); got != -3 {
		t.Errorf("%v.Sub(%v) = %d, want -3", b, a, got)
	}
	if got := a.Sub(a); got != 0 {
		t.Errorf("%v.Sub(%v) = %d, want 0", a, a, got)
	}
}

func TestCompare(t *testing.T) {
	early := New(2024, time.December)
	late := New(2025, time.January)

	if !early.Before(late) {
		t.Errorf("%v.Before(%v) = false, want true", early, late)
	}
	if !late.After(early) {
		t.Errorf("%v.After(%v) = false, want true", late, early)
	}
	if got := early.Compare(late); got != -1 {
		t.Errorf("%v.Compare(%v) = %d, want -1", early, late, got)
	}
	if got := early.Compare(early); got != 0 {
		t.Errorf("%v.Compare(%v) = %d, want 0", early, early, got)
	}
}

func TestYearsSince(t *testing.T) {
	birth := time.Date(1990, time.June, 15, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		on   Competence
		want int
	}{
		{New(2025, time.May), 34},  // month before birthday
		{New(2025, time.June), 35}, // birthday month counts as completed
		{New(2025, time.July), 35},
	}
	for _, tc := range testCases {
		if got := tc.on.YearsSince(birth); got != tc.want {
			t.Errorf("%v.YearsSince(1990-06-15) = %d, want %d", tc.on, got, tc.want)
		}
	}
}

func TestRange(t *testing.T) {
	r := NewRange(MustParse("2025-01"), MustParse("2025-12"))

	if got := r.Months(); got != 12 {
		t.Errorf("%v.Months() = %d, want 12", r, got)
	}
	if !r.Contains(MustParse("2025-06")) {
		t.Errorf("%v.Contains(2025-06) = false, want true", r)
	}
	if r.Contains(MustParse("2026-01")) {
		t.Errorf("%v.Contains(2026-01) = true, want false", r)
	}

	var n int
	var last Competence
	for c := range r.Values() {
		n++
		last = c
	}
	if n != 12 {
		t.Errorf("iterated %d competences, want 12", n)
	}
	if last != r.To {
		t.Errorf("last iterated competence = %v, want %v", last, r.To)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	c := MustParse("2025-03")
	b, err := c.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() returned error: %v", err)
	}
	if string(b) != `"2025-03"` {
		t.Errorf("MarshalJSON() = %s, want %q", b, `"2025-03"`)
	}

	var got Competence
	if err := got.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON(%s) returned error: %v", b, err)
	}
	if got != c {
		t.Errorf("round trip = %v, want %v", got, c)
	}
}
