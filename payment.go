package securefinance

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Errors returned by Ledger.PayPremium. They are expected business outcomes,
// the ledger is left unchanged when one of them is returned.
var (
	ErrPolicyNotFound    = errors.New("policy not found")
	ErrPolicyInactive    = errors.New("policy inactive, cannot pay")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// Outcome is the result of a premium payment attempt.
type Outcome string

// Payment outcomes.
const (
	OutcomePaid              Outcome = "paid"
	OutcomePolicyNotFound    Outcome = "policy-not-found"
	OutcomePolicyInactive    Outcome = "policy-inactive"
	OutcomeInsufficientFunds Outcome = "insufficient-funds"
)

// Err returns the sentinel error of the outcome, nil for OutcomePaid.
func (o Outcome) Err() error {
	switch o {
	case OutcomePaid:
		return nil
	case OutcomePolicyNotFound:
		return ErrPolicyNotFound
	case OutcomePolicyInactive:
		return ErrPolicyInactive
	case OutcomeInsufficientFunds:
		return ErrInsufficientFunds
	default:
		return fmt.Errorf("unknown payment outcome %q", string(o))
	}
}

// Payment records a single premium payment attempt, successful or not.
type Payment struct {
	Receipt  string     // Receipt identifies a successful payment, empty otherwise.
	PolicyID string     // PolicyID is the policy identifier as requested.
	Type     PolicyType // Type is empty when the policy was not found.
	Outcome  Outcome
	Amount   Money // Amount is the policy premium, zero when the policy was not found.
	Before   Money // Before is the balance when the attempt was made.
	After    Money // After is the balance once the attempt is over.
}

// OK reports whether the premium was paid.
func (p Payment) OK() bool { return p.Outcome == OutcomePaid }

// Err returns nil if the premium was paid, or the outcome sentinel error
// wrapped with the policy identifier.
func (p Payment) Err() error {
	err := p.Outcome.Err()
	if err == nil {
		return nil
	}
	return fmt.Errorf("policy %q: %w", p.PolicyID, err)
}

// MarshalJSON implements the json.Marshaler interface for Payment.
func (p Payment) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Optional("receipt", p.Receipt)
	w.Append("policy", p.PolicyID)
	w.Optional("type", p.Type)
	w.Append("outcome", p.Outcome)
	if !p.Amount.IsZero() {
		w.Append("amount", p.Amount)
	}
	w.Append("before", p.Before)
	w.Append("after", p.After)
	return w.MarshalJSON()
}

// EncodePayment writes a single payment as a JSONL line to w.
func EncodePayment(w io.Writer, p Payment) error {
	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("could not encode payment for %q: %w", p.PolicyID, err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
