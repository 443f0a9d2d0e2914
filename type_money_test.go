package planner

import (
	"math"
	"testing"
)

func TestMoneyGrow(t *testing.T) {
	got := brl(1000).Grow(0.01)
	if !got.Equal(brl(1010)) {
		t.Errorf("Grow(0.01) = %v, want %v", got, brl(1010))
	}
	// negative rates shrink
	if got := brl(1000).Grow(-0.10); !got.Equal(brl(900)) {
		t.Errorf("Grow(-0.10) = %v, want %v", got, brl(900))
	}
}

func TestMoneySplitIn(t *testing.T) {
	got := brl(1200).SplitIn(12)
	if !got.Equal(brl(100)) {
		t.Errorf("SplitIn(12) = %v, want %v", got, brl(100))
	}
	// uneven splits keep full precision until rounded
	if got := brl(100).SplitIn(3).Round().AsFloat(); math.Abs(got-33.33) > 1e-9 {
		t.Errorf("SplitIn(3).Round() = %v, want 33.33", got)
	}
}

func TestMoneyRound(t *testing.T) {
	if got := brl(10.005).Round(); !got.Equal(brl(10.01)) {
		t.Errorf("Round() = %v, want %v", got, brl(10.01))
	}
}

func TestMoneyCurrencyMerge(t *testing.T) {
	// the empty currency is weak: it takes the other operand's currency
	got := M(0, "").Add(brl(10))
	if got.Currency() != "BRL" {
		t.Errorf("M(0, \"\").Add(brl).Currency() = %q, want BRL", got.Currency())
	}

	defer func() {
		if recover() == nil {
			t.Error("Add() across currencies did not panic")
		}
	}()
	brl(1).Add(usd(1))
}

func TestMoneySignedString(t *testing.T) {
	if got := brl(0).SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want -", got)
	}
	if got := brl(12.5).SignedString(); got[0] != '+' {
		t.Errorf("SignedString(12.5) = %q, want a leading +", got)
	}
	if got := brl(-12.5).SignedString(); got[0] != '-' || len(got) == 1 {
		t.Errorf("SignedString(-12.5) = %q, want a leading -", got)
	}
}
