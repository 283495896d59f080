package securefinance

// Customer is the holder of the ledger.
//
// ID and Name identify the customer and never change; KYCCompleted and
// RiskScore may be updated through the ledger.
type Customer struct {
	ID           string `toml:"id" json:"id"`
	Name         string `toml:"name" json:"name"`
	KYCCompleted bool   `toml:"kyc" json:"kyc"`
	RiskScore    int    `toml:"risk_score" json:"riskScore"`
}

// RiskCategory is the categorical label of a risk score.
type RiskCategory string

// Risk categories, from the best to the worst score.
const (
	LowRisk      RiskCategory = "Low Risk (Premium Discount Eligible)"
	ModerateRisk RiskCategory = "Moderate Risk"
	HighRisk     RiskCategory = "High Risk (Review Required)"
)

// Risk score thresholds. A score equal to a threshold belongs to the upper category.
const (
	LowRiskThreshold      = 750
	ModerateRiskThreshold = 600
)

// ClassifyRisk returns the risk category of a score.
func ClassifyRisk(score int) RiskCategory {
	switch {
	case score >= LowRiskThreshold:
		return LowRisk
	case score >= ModerateRiskThreshold:
		return ModerateRisk
	default:
		return HighRisk
	}
}

func (c RiskCategory) String() string { return string(c) }

// DiscountEligible reports whether the category grants a premium discount.
func (c RiskCategory) DiscountEligible() bool { return c == LowRisk }

// ReviewRequired reports whether the category calls for a manual review.
func (c RiskCategory) ReviewRequired() bool { return c == HighRisk }
