package planner

import (
	"testing"
)

func TestMonthlyRate(t *testing.T) {
	testCases := []struct {
		annual float64
		want   float64
	}{
		{0, 0},
		{12, 0.009488792934583046},
		{100, 0.05946309435929531}, // doubling in a year
	}
	for _, tc := range testCases {
		if got := MonthlyRate(tc.annual); !closeTo(got, tc.want) {
			t.Errorf("MonthlyRate(%v) = %v, want %v", tc.annual, got, tc.want)
		}
	}

	// twelve compounded months recover the annual rate
	r := MonthlyRate(12)
	annual := 1.0
	for i := 0; i < 12; i++ {
		annual *= 1 + r
	}
	if !closeTo(annual, 1.12) {
		t.Errorf("compounding MonthlyRate(12) twelve times = %v, want 1.12", annual)
	}
}

func TestCompound(t *testing.T) {
	if got := Compound(0.02, 0.02); !closeTo(got, 0.0404) {
		t.Errorf("Compound(0.02, 0.02) = %v, want 0.0404", got)
	}
	if got := Compound(0.05, 0); !closeTo(got, 0.05) {
		t.Errorf("Compound(0.05, 0) = %v, want 0.05", got)
	}
}

func TestRoundRate(t *testing.T) {
	if got := RoundRate(0.00948879); got != 0.0095 {
		t.Errorf("RoundRate(0.00948879) = %v, want 0.0095", got)
	}
	if got := RoundRate(0.0099); got != 0.0099 {
		t.Errorf("RoundRate(0.0099) = %v, want 0.0099", got)
	}
}

func TestPercentStrings(t *testing.T) {
	if got := Percent(12).String(); got != "12.00%" {
		t.Errorf("String() = %q, want 12.00%%", got)
	}
	if got := Percent(2.5).SignedString(); got != "+2.50%" {
		t.Errorf("SignedString() = %q, want +2.50%%", got)
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want -", got)
	}
	if !Percent(1.00001).Equal(1.00002) {
		t.Error("Equal() distinguishes rates closer than the display precision")
	}
}
