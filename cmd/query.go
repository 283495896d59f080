package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/securefinance"
	"github.com/google/subcommands"
)

// queryCmd holds the flags for the 'query' subcommand.
type queryCmd struct {
	demo bool
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression on the ledger snapshot" }
func (*queryCmd) Usage() string {
	return `sfin query [-demo] <jsonpath>

  Evaluates a JSONPath expression against the JSON snapshot printed by
  'sfin status -json' and prints the result as JSON. For instance:

    sfin query '$.policies[?(@.active)].id'
    sfin query -demo '$.payments[*].outcome'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.demo, "demo", false, "run the dashboard demonstration before querying")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one JSONPath expression is required")
		return subcommands.ExitUsageError
	}

	ledger, err := OpenLedger()
	if err != nil {
		return exitStatus(err)
	}
	if c.demo {
		securefinance.Demo(ledger)
	}

	result, err := Query(ledger, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error evaluating %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(b))
	return subcommands.ExitSuccess
}

// Query evaluates a JSONPath expression on the JSON snapshot of the ledger.
func Query(ledger *securefinance.Ledger, expr string) (any, error) {
	b, err := json.Marshal(ledger)
	if err != nil {
		return nil, fmt.Errorf("could not encode ledger: %w", err)
	}
	var snapshot any
	if err := json.Unmarshal(b, &snapshot); err != nil {
		return nil, fmt.Errorf("could not decode ledger snapshot: %w", err)
	}
	return jsonpath.Get(expr, snapshot)
}
