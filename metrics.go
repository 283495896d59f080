package securefinance

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus collectors updated by a Ledger.
type Metrics struct {
	// Payments counts premium payment attempts by outcome.
	Payments *prometheus.CounterVec

	// Paid sums the premiums successfully paid, in major units.
	Paid prometheus.Counter

	// Balance is the current ledger balance, in major units.
	Balance prometheus.Gauge
}

// NewMetrics creates and registers the ledger collectors on reg.
// A nil reg registers them on a private registry that is never exposed.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	return &Metrics{
		Payments: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "securefinance_premium_payments_total",
			Help: "Total number of premium payment attempts by outcome.",
		}, []string{"outcome"}),

		Paid: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "securefinance_premium_paid_total",
			Help: "Sum of the premiums successfully paid.",
		}),

		Balance: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "securefinance_balance",
			Help: "Current account balance of the ledger.",
		}),
	}
}

func (m *Metrics) observe(p Payment) {
	m.Payments.WithLabelValues(string(p.Outcome)).Inc()
	if p.OK() {
		m.Paid.Add(p.Amount.float())
	}
	m.Balance.Set(p.After.float())
}
