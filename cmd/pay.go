package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/securefinance"
	"github.com/etnz/securefinance/renderer"
	"github.com/google/subcommands"
)

// payCmd holds the flags for the 'pay' subcommand.
type payCmd struct {
	json bool
}

func (*payCmd) Name() string     { return "pay" }
func (*payCmd) Synopsis() string { return "pay the premium of one or more policies" }
func (*payCmd) Usage() string {
	return `sfin pay [-json] <policy-id>...

  Pays the premium of each policy in turn from the account balance.
  A policy that does not exist, is lapsed, or costs more than the balance
  is reported and left unpaid; the following policies are still attempted.
  Exits with a failure status if any payment failed.
`
}

func (c *payCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print the payment attempts as JSONL")
}

func (c *payCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one policy id is required")
		return subcommands.ExitUsageError
	}

	ledger, err := OpenLedger()
	if err != nil {
		return exitStatus(err)
	}

	status := subcommands.ExitSuccess
	var payments []securefinance.Payment
	for _, id := range f.Args() {
		p, err := ledger.PayPremium(id)
		if err != nil {
			status = subcommands.ExitFailure
		}
		payments = append(payments, p)
	}

	if c.json {
		for _, p := range payments {
			if err := securefinance.EncodePayment(os.Stdout, p); err != nil {
				fmt.Fprintf(os.Stderr, "Error encoding payment: %v\n", err)
				return subcommands.ExitFailure
			}
		}
		return status
	}

	printMarkdown(renderer.RenderPayments(payments))
	return status
}
