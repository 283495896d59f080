package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/securefinance/renderer"
	"github.com/google/subcommands"
)

// statusCmd holds the flags for the 'status' subcommand.
type statusCmd struct {
	json bool
}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "display the account dashboard" }
func (*statusCmd) Usage() string {
	return `sfin status [-json]

  Displays the customer name, the verification state and the balance.
  With -json, prints the full ledger snapshot instead.
`
}

func (c *statusCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print the ledger snapshot as JSON")
}

func (c *statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger()
	if err != nil {
		return exitStatus(err)
	}

	if c.json {
		b, err := json.MarshalIndent(ledger, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding ledger: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println(string(b))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.RenderStatus(ledger.Status()))
	return subcommands.ExitSuccess
}
