package securefinance

import (
	"strings"
	"testing"
)

func TestMoney_String(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{INR(50000), "50,000.00"},
		{INR(38000), "38,000.00"},
		{INR(1200.5), "1,200.50"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); !strings.Contains(got, tt.want) {
			t.Errorf("String() = %q, want it to contain %q", got, tt.want)
		}
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	balance := INR(50000)
	premium := INR(12000)

	if got := balance.Sub(premium); !got.Equal(INR(38000)) {
		t.Errorf("Sub() = %v, want %v", got, INR(38000))
	}
	if got := balance.Add(premium); !got.Equal(INR(62000)) {
		t.Errorf("Add() = %v, want %v", got, INR(62000))
	}
	if !balance.GreaterThanOrEqual(premium) || !balance.GreaterThanOrEqual(balance) {
		t.Error("GreaterThanOrEqual() is wrong")
	}
	if balance.LessThan(premium) {
		t.Error("LessThan() is wrong")
	}
	// exact decimal arithmetic, no float drift
	if got := INR(0.1).Add(INR(0.2)); !got.Equal(INR(0.3)) {
		t.Errorf("0.1 + 0.2 = %v, want 0.3", got.Decimal())
	}
}

func TestMoney_CurrencyMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Sub() across currencies did not panic")
		}
	}()
	INR(1).Sub(M(1, "EUR"))
}
