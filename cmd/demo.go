package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/securefinance"
	"github.com/etnz/securefinance/renderer"
	"github.com/google/subcommands"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// demoCmd holds the flags for the 'demo' subcommand.
type demoCmd struct {
	metrics bool
}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "run the dashboard demonstration" }
func (*demoCmd) Usage() string {
	return `sfin demo [-metrics] [<policy-id>...]

  Displays the dashboard, pays the premium of each policy (by default the
  active life policy then the lapsed vehicle policy of the built-in seed),
  classifies the customer risk and displays the final balance.
  Failed payments are part of the report and do not change the exit status.
`
}

func (c *demoCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.metrics, "metrics", false, "print the ledger metrics in Prometheus text format after the report")
}

func (c *demoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	reg := prometheus.NewRegistry()
	ledger, err := OpenLedger(securefinance.WithMetrics(securefinance.NewMetrics(reg)))
	if err != nil {
		return exitStatus(err)
	}

	report := securefinance.Demo(ledger, f.Args()...)
	printMarkdown(renderer.RenderDemo(report))

	if c.metrics {
		if err := writeMetrics(os.Stdout, reg); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing metrics: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

// writeMetrics writes every metric family gathered from g in text format.
func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
