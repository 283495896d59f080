package securefinance

import (
	"iter"
	"slices"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Ledger holds the customer, the policies and the balance of an account.
//
// The balance is only ever debited by PayPremium. A Ledger is not safe for
// concurrent use.
type Ledger struct {
	customer Customer
	policies []Policy       // in declaration order
	index    map[string]int // index policies by id
	balance  Money
	payments []Payment

	logger  *zap.Logger
	metrics *Metrics
	newID   func() string
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithLogger sets the logger used to report payment attempts.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Ledger) { l.logger = logger.Named("ledger") }
}

// WithMetrics sets the collectors updated on each payment attempt.
func WithMetrics(m *Metrics) Option {
	return func(l *Ledger) { l.metrics = m }
}

// NewLedger creates a ledger from a validated seed.
func NewLedger(seed Seed, opts ...Option) (*Ledger, error) {
	policies, err := seed.policies()
	if err != nil {
		return nil, err
	}
	l := &Ledger{
		customer: seed.Customer,
		policies: policies,
		index:    make(map[string]int, len(policies)),
		balance:  M(seed.Balance, seed.Currency),
		logger:   zap.NewNop(),
		newID:    uuid.NewString,
	}
	for i, p := range policies {
		l.index[p.ID] = i
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.metrics != nil {
		l.metrics.Balance.Set(l.balance.float())
	}
	return l, nil
}

// Customer returns a copy of the customer record.
func (l *Ledger) Customer() Customer { return l.customer }

// Balance returns the current balance.
func (l *Ledger) Balance() Money { return l.balance }

// Currency returns the currency of the ledger.
func (l *Ledger) Currency() string { return l.balance.Currency() }

// Policy returns the policy with this id.
func (l *Ledger) Policy(id string) (Policy, bool) {
	i, ok := l.index[id]
	if !ok {
		return Policy{}, false
	}
	return l.policies[i], true
}

// Policies iterates over the policies in declaration order.
func (l *Ledger) Policies() iter.Seq[Policy] {
	return slices.Values(l.policies)
}

// Payments iterates over every payment attempt, in order.
func (l *Ledger) Payments() iter.Seq[Payment] {
	return slices.Values(l.payments)
}

// CompleteKYC marks the customer identity as verified.
func (l *Ledger) CompleteKYC() {
	l.customer.KYCCompleted = true
	l.logger.Info("kyc completed", zap.String("customer", l.customer.ID))
}

// UpdateRiskScore replaces the customer risk score.
func (l *Ledger) UpdateRiskScore(score int) {
	l.customer.RiskScore = score
}

// ClassifyRisk returns the risk category of the customer.
func (l *Ledger) ClassifyRisk() RiskCategory {
	return ClassifyRisk(l.customer.RiskScore)
}

// PayPremium pays the premium of the policy id from the balance.
//
// It fails with ErrPolicyNotFound, ErrPolicyInactive or ErrInsufficientFunds,
// in that order of precedence, and the balance is then left unchanged.
// The attempt is always returned and recorded, whatever its outcome.
func (l *Ledger) PayPremium(id string) (Payment, error) {
	p := Payment{
		PolicyID: id,
		Before:   l.balance,
		After:    l.balance,
	}

	policy, ok := l.Policy(id)
	switch {
	case !ok:
		p.Outcome = OutcomePolicyNotFound
	case !policy.Active:
		p.Outcome = OutcomePolicyInactive
	case l.balance.GreaterThanOrEqual(policy.Premium):
		p.Outcome = OutcomePaid
		l.balance = l.balance.Sub(policy.Premium)
		p.After = l.balance
		p.Receipt = l.newID()
	default:
		p.Outcome = OutcomeInsufficientFunds
	}
	if ok {
		p.Type = policy.Type
		p.Amount = policy.Premium
	}

	l.payments = append(l.payments, p)
	l.record(p)
	return p, p.Err()
}

// record logs and measures a payment attempt.
func (l *Ledger) record(p Payment) {
	fields := []zap.Field{
		zap.String("policy", p.PolicyID),
		zap.String("outcome", string(p.Outcome)),
		zap.Stringer("amount", p.Amount),
		zap.Stringer("balance", p.After),
	}
	if p.OK() {
		l.logger.Info("premium paid", append(fields, zap.String("receipt", p.Receipt))...)
	} else {
		l.logger.Warn("premium payment rejected", fields...)
	}
	if l.metrics != nil {
		l.metrics.observe(p)
	}
}

// Status is a snapshot of the account for display.
type Status struct {
	Customer string
	Verified bool
	Balance  Money
}

// Status returns the current status of the account.
func (l *Ledger) Status() Status {
	return Status{
		Customer: l.customer.Name,
		Verified: l.customer.KYCCompleted,
		Balance:  l.balance,
	}
}

// Verification returns "Verified" or "Pending".
func (s Status) Verification() string {
	if s.Verified {
		return "Verified"
	}
	return "Pending"
}

// Note returns the restriction that applies while verification is pending.
func (s Status) Note() string {
	if s.Verified {
		return ""
	}
	return "transaction limits apply"
}

// MarshalJSON implements the json.Marshaler interface, the snapshot keeps
// policies and payments in order.
func (l *Ledger) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("customer", l.customer)
	w.Append("currency", l.Currency())
	w.Append("balance", l.balance)
	w.Append("risk", l.ClassifyRisk())
	w.Append("policies", l.policies)
	if len(l.payments) > 0 {
		w.Append("payments", l.payments)
	}
	return w.MarshalJSON()
}
