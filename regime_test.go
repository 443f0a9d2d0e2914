package planner

import (
	"testing"
)

func testRegimes() Regimes {
	return Regimes{
		{Effective: cpt("2024-01"), MonthlyDeposit: brl(1000), ExpectedReturn: 8},
		{Effective: cpt("2024-06"), MonthlyDeposit: brl(1500), ExpectedReturn: 10},
		{Effective: cpt("2025-01"), MonthlyDeposit: brl(2000), ExpectedReturn: 12},
	}
}

func TestRegimesActiveAt(t *testing.T) {
	rs := testRegimes()

	testCases := []struct {
		name string
		asOf string
		want string // effective competence of the expected regime
	}{
		{"before all regimes falls back to the earliest", "2023-07", "2024-01"},
		{"exact effective competence", "2024-01", "2024-01"},
		{"between two regimes", "2024-03", "2024-01"},
		{"exact second effective", "2024-06", "2024-06"},
		{"after the second, before the third", "2024-12", "2024-06"},
		{"after every regime", "2030-01", "2025-01"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := rs.ActiveAt(cpt(tc.asOf))
			if got.Effective != cpt(tc.want) {
				t.Errorf("ActiveAt(%s) = regime effective %v, want %v", tc.asOf, got.Effective, tc.want)
			}
		})
	}
}

func TestRegimesValidate(t *testing.T) {
	if err := (Regimes{}).Validate(); err == nil {
		t.Error("Validate() on empty regimes = nil, want InvalidInputError")
	}

	dup := Regimes{
		{Effective: cpt("2024-01")},
		{Effective: cpt("2024-01")},
	}
	if err := dup.Validate(); err == nil {
		t.Error("Validate() on duplicated effective competences = nil, want error")
	}

	unsorted := Regimes{
		{Effective: cpt("2024-06")},
		{Effective: cpt("2024-01")},
	}
	if err := unsorted.Validate(); err == nil {
		t.Error("Validate() on unsorted regimes = nil, want error")
	}

	if err := testRegimes().Validate(); err != nil {
		t.Errorf("Validate() on a well-formed list returned error: %v", err)
	}
}

func TestRegimeMonthlyRate(t *testing.T) {
	r := Regime{ExpectedReturn: 12, Inflation: 4}

	want := 0.009488792934583046 // 1.12^(1/12) - 1
	if got := r.MonthlyRate(false); !closeTo(got, want) {
		t.Errorf("MonthlyRate(false) = %v, want %v", got, want)
	}

	// with inflation the return compounds with the inflation monthly rate
	infl := MonthlyRate(4)
	if got := r.MonthlyRate(true); !closeTo(got, Compound(want, infl)) {
		t.Errorf("MonthlyRate(true) = %v, want %v", got, Compound(want, infl))
	}
}
