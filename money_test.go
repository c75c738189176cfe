package grana

import (
	"encoding/json"
	"testing"
)

func TestMoneySplit(t *testing.T) {
	parts, err := BRL(1000).Split(3)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	want := []Money{R(333.34), R(333.33), R(333.33)}
	if len(parts) != len(want) {
		t.Fatalf("len(parts) = %d, want %d", len(parts), len(want))
	}
	sum := Money{}
	for i, p := range parts {
		if !p.Equal(want[i]) {
			t.Errorf("parts[%d] = %s, want %s", i, p, want[i])
		}
		sum = sum.Add(p)
	}
	// the parts must sum back to the original, cent for cent.
	if !sum.Decimal().Equal(BRL(1000).Decimal()) {
		t.Errorf("sum = %s, want %s", sum, BRL(1000))
	}
}

func TestMoneySplitExact(t *testing.T) {
	parts, err := BRL(900).Split(3)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	for i, p := range parts {
		if !p.Equal(R(300)) {
			t.Errorf("parts[%d] = %s, want %s", i, p, R(300))
		}
	}
}

func TestMoneySplitBadCount(t *testing.T) {
	if _, err := BRL(100).Split(0); err == nil {
		t.Error("expected error for zero split count")
	}
	if _, err := BRL(100).Split(-3); err == nil {
		t.Error("expected error for negative split count")
	}
}

func TestMoneyPercentOf(t *testing.T) {
	if got := R(250).PercentOf(R(1000)); !got.Equal(25) {
		t.Errorf("PercentOf = %s, want 25.00%%", got)
	}
	if got := R(1500).PercentOf(R(1000)); !got.Equal(150) {
		t.Errorf("PercentOf = %s, want 150.00%%", got)
	}
	if got := R(250).PercentOf(R(0)); got != 0 {
		t.Errorf("PercentOf zero total = %s, want 0", got)
	}
}

func TestMoneyWeakCurrency(t *testing.T) {
	sum := Money{}.Add(R(10)).Add(R(5))
	if !sum.Equal(R(15)) {
		t.Errorf("sum = %s, want %s", sum, R(15))
	}
	if sum.Currency() != "BRL" {
		t.Errorf("Currency() = %q, want BRL", sum.Currency())
	}
}

func TestMoneyCurrencyMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on currency mismatch")
		}
	}()
	R(10).Add(M(10, "USD"))
}

func TestMoneyJSON(t *testing.T) {
	data, err := json.Marshal(R(333.34))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if got, want := string(data), `{"amount":333.34,"currency":"BRL"}`; got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
	var m Money
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !m.Equal(R(333.34)) {
		t.Errorf("round trip = %s, want %s", m, R(333.34))
	}
}

func TestMoneyString(t *testing.T) {
	if got, want := R(1234.5).String(), "R$1.234,50"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := M(9.99, "USD").String(), "$9.99"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := R(0).SignedString(); got != "-" {
		t.Errorf("SignedString(0) = %q, want -", got)
	}
	if got, want := R(10).SignedString(), "+R$10,00"; got != want {
		t.Errorf("SignedString() = %q, want %q", got, want)
	}
}
