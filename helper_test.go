package securefinance

import "testing"

// INR is a helper for test to create rupee money from const
func INR(v float64) Money { return M(v, "INR") }

// newTestLedger returns a ledger built from the default seed.
func newTestLedger(t *testing.T, opts ...Option) *Ledger {
	t.Helper()
	l, err := NewLedger(DefaultSeed(), opts...)
	if err != nil {
		t.Fatalf("NewLedger(DefaultSeed()) failed: %v", err)
	}
	return l
}
