package securefinance

// Policies paid by Demo when none is given: an active life policy, then a
// lapsed vehicle one.
const (
	DemoLifePolicy   = "POL_LIFE_01"
	DemoLapsedPolicy = "POL_CAR_99"
)

// DemoReport is the outcome of a Demo run.
type DemoReport struct {
	Opening  Status
	Payments []Payment
	Risk     RiskCategory
	Score    int
	Final    Money
}

// Demo runs the dashboard sequence on l: opening status, one payment attempt
// per policy id, risk analysis and final balance.
//
// Payment failures do not stop the sequence, they are part of the report.
func Demo(l *Ledger, policyIDs ...string) DemoReport {
	if len(policyIDs) == 0 {
		policyIDs = []string{DemoLifePolicy, DemoLapsedPolicy}
	}
	r := DemoReport{Opening: l.Status()}
	for _, id := range policyIDs {
		p, _ := l.PayPremium(id)
		r.Payments = append(r.Payments, p)
	}
	r.Risk = l.ClassifyRisk()
	r.Score = l.Customer().RiskScore
	r.Final = l.Balance()
	return r
}
