package securefinance

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency of a seed that does not declare one.
const DefaultCurrency = "INR"

// Seed is the initial state of a Ledger.
type Seed struct {
	Currency string          `toml:"currency"`
	Balance  decimal.Decimal `toml:"balance"`
	Customer Customer        `toml:"customer"`
	Policies []PolicySeed    `toml:"policy"`
}

// PolicySeed declares a policy in a Seed.
type PolicySeed struct {
	ID      string          `toml:"id"`
	Type    string          `toml:"type"`
	Premium decimal.Decimal `toml:"premium"`
	Active  bool            `toml:"active"`
}

// DefaultSeed returns the built-in seed: one customer whose KYC is pending,
// an active life policy and a lapsed vehicle policy.
func DefaultSeed() Seed {
	return Seed{
		Currency: DefaultCurrency,
		Balance:  decimal.NewFromInt(50000),
		Customer: Customer{
			ID:           "CUST001",
			Name:         "Amit Patel",
			KYCCompleted: false,
			RiskScore:    700,
		},
		Policies: []PolicySeed{
			{ID: "POL_LIFE_01", Type: "Life", Premium: decimal.NewFromInt(12000), Active: true},
			{ID: "POL_CAR_99", Type: "Vehicle", Premium: decimal.NewFromInt(5000), Active: false},
		},
	}
}

// DecodeSeed decodes a TOML seed from r and validates it.
func DecodeSeed(r io.Reader) (Seed, error) {
	var s Seed
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return Seed{}, fmt.Errorf("could not decode seed: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Seed{}, fmt.Errorf("unknown keys in seed: %s", strings.Join(keys, ", "))
	}
	if s.Currency == "" {
		s.Currency = DefaultCurrency
	}
	if err := s.Validate(); err != nil {
		return Seed{}, err
	}
	return s, nil
}

// Validate checks the seed and returns all the problems found, joined.
func (s Seed) Validate() error {
	_, err := s.policies()
	return err
}

// policies validates the seed and converts its policies.
func (s Seed) policies() ([]Policy, error) {
	var errs error
	if !knownCurrency(s.Currency) {
		errs = errors.Join(errs, fmt.Errorf("unknown currency %q", s.Currency))
	}
	if s.Balance.IsNegative() {
		errs = errors.Join(errs, fmt.Errorf("negative balance %v", s.Balance))
	}
	if s.Customer.ID == "" {
		errs = errors.Join(errs, errors.New("missing customer id"))
	}
	if s.Customer.Name == "" {
		errs = errors.Join(errs, errors.New("missing customer name"))
	}

	policies := make([]Policy, 0, len(s.Policies))
	seen := make(map[string]bool, len(s.Policies))
	for i, ps := range s.Policies {
		if ps.ID == "" {
			errs = errors.Join(errs, fmt.Errorf("policy #%d: missing id", i+1))
		} else if seen[ps.ID] {
			errs = errors.Join(errs, fmt.Errorf("policy #%d: duplicate id %q", i+1, ps.ID))
		}
		seen[ps.ID] = true

		typ, err := ParsePolicyType(ps.Type)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("policy %q: %w", ps.ID, err))
		}
		if ps.Premium.IsNegative() {
			errs = errors.Join(errs, fmt.Errorf("policy %q: negative premium %v", ps.ID, ps.Premium))
		}
		policies = append(policies, Policy{
			ID:      ps.ID,
			Type:    typ,
			Premium: M(ps.Premium, s.Currency),
			Active:  ps.Active,
		})
	}
	if errs != nil {
		return nil, fmt.Errorf("invalid seed: %w", errs)
	}
	return policies, nil
}
