package cmd

import (
	"context"
	"flag"

	"github.com/etnz/securefinance/renderer"
	"github.com/google/subcommands"
)

// riskCmd holds the flags for the 'risk' subcommand.
type riskCmd struct{}

func (*riskCmd) Name() string     { return "risk" }
func (*riskCmd) Synopsis() string { return "classify the customer risk" }
func (*riskCmd) Usage() string {
	return `sfin risk

  Displays the customer risk score and its category:
  750 and above is low risk, 600 to 749 moderate, below 600 high.
`
}

func (c *riskCmd) SetFlags(f *flag.FlagSet) {}

func (c *riskCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger()
	if err != nil {
		return exitStatus(err)
	}
	printMarkdown(renderer.RenderRisk(ledger.Customer()))
	return subcommands.ExitSuccess
}
