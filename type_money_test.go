package finbook

import "testing"

func TestMoneyArithmetic(t *testing.T) {
	a, b := VND(1_000_000), VND(400_000)

	if got := a.Sub(b); !got.Equal(VND(600_000)) {
		t.Errorf("Sub() = %v, want 600,000", got)
	}
	if got := a.Add(b); !got.Equal(VND(1_400_000)) {
		t.Errorf("Add() = %v, want 1,400,000", got)
	}
	if !b.LessThan(a) {
		t.Error("LessThan() = false, want true")
	}
	if got := b.Neg(); !got.IsNegative() {
		t.Errorf("Neg() = %v, want negative", got)
	}
}

func TestMoneyInterestMath(t *testing.T) {
	// 1,200,000 at 12%/year over 12 months: simple interest is 144,000.
	principal := VND(1_200_000)
	interest := principal.MulFloat(12.0 / 100).MulFloat(12.0 / 12)
	if !interest.Equal(VND(144_000)) {
		t.Errorf("interest = %v, want 144,000", interest)
	}
	installment := principal.Add(interest).DivInt(12)
	if !installment.Equal(VND(112_000)) {
		t.Errorf("installment = %v, want 112,000", installment)
	}
}

func TestParseMoney(t *testing.T) {
	m, err := ParseMoney("2500.50", DefaultCurrency)
	if err != nil {
		t.Fatalf("ParseMoney() returned unexpected error: %v", err)
	}
	if !m.Equal(VND(2500.50)) {
		t.Errorf("ParseMoney() = %v, want 2500.50", m)
	}

	if _, err := ParseMoney("12x", DefaultCurrency); err == nil {
		t.Error("ParseMoney() accepted a non numeric string")
	}
}

func TestMoneyRatio(t *testing.T) {
	expense, income := VND(80_000), VND(200_000)
	if got := expense.Ratio(income) * 100; got != 40 {
		t.Errorf("Ratio() = %v%%, want 40%%", got)
	}
}
