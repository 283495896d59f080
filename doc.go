// Package securefinance keeps the books of a single insurance customer: the
// customer record, an ordered set of insurance policies and the account
// balance used to pay their premiums.
//
// The core functionalities include:
//   - Account Ledger: the [Ledger] owns the customer, the policies and the
//     balance. The balance only ever moves through [Ledger.PayPremium].
//   - Premium Payment: paying a premium is checked against the policy
//     existence, its active flag and the available balance. Every attempt is
//     returned as a [Payment] and kept in the ledger history; failures are
//     the sentinel errors [ErrPolicyNotFound], [ErrPolicyInactive] and
//     [ErrInsufficientFunds].
//   - Risk Classification: [ClassifyRisk] maps a risk score to a
//     [RiskCategory] using the 600 and 750 thresholds.
//   - Seeds: a ledger starts from a [Seed], either the built-in
//     [DefaultSeed] or a TOML file decoded with [DecodeSeed].
//   - Data Encoding: ledgers encode to an ordered JSON snapshot and payments
//     to JSONL, with exact decimal amounts.
//
// This package serves as the foundational logic for the `sfin` command-line
// tool.
package securefinance
