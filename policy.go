package securefinance

import (
	"fmt"
	"strings"
)

// PolicyType is the category of an insurance policy.
type PolicyType string

// Policy types.
const (
	Life    PolicyType = "Life"
	Health  PolicyType = "Health"
	Vehicle PolicyType = "Vehicle"
)

// ParsePolicyType parses a policy type, case insensitively.
func ParsePolicyType(s string) (PolicyType, error) {
	for _, t := range []PolicyType{Life, Health, Vehicle} {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown policy type: %q", s)
}

func (t PolicyType) String() string { return string(t) }

// Policy is an insurance contract held by the customer.
//
// A lapsed policy has Active set to false, its premium cannot be paid.
type Policy struct {
	ID      string
	Type    PolicyType
	Premium Money
	Active  bool
}

// Status returns "active" or "lapsed".
func (p Policy) Status() string {
	if p.Active {
		return "active"
	}
	return "lapsed"
}

// MarshalJSON implements the json.Marshaler interface for Policy.
func (p Policy) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", p.ID)
	w.Append("type", p.Type)
	w.Append("premium", p.Premium)
	w.Append("active", p.Active)
	return w.MarshalJSON()
}
