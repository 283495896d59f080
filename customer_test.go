package securefinance

import "testing"

func TestClassifyRisk(t *testing.T) {
	tests := []struct {
		score int
		want  RiskCategory
	}{
		{900, LowRisk},
		{751, LowRisk},
		{750, LowRisk},
		{749, ModerateRisk},
		{700, ModerateRisk},
		{600, ModerateRisk},
		{599, HighRisk},
		{0, HighRisk},
		{-10, HighRisk},
	}

	for _, tt := range tests {
		if got := ClassifyRisk(tt.score); got != tt.want {
			t.Errorf("ClassifyRisk(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestRiskCategory_Flags(t *testing.T) {
	if !LowRisk.DiscountEligible() || ModerateRisk.DiscountEligible() || HighRisk.DiscountEligible() {
		t.Error("only LowRisk should be discount eligible")
	}
	if !HighRisk.ReviewRequired() || ModerateRisk.ReviewRequired() || LowRisk.ReviewRequired() {
		t.Error("only HighRisk should require a review")
	}
}
