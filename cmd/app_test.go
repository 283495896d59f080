package cmd

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/etnz/securefinance"
	"github.com/google/subcommands"
	"github.com/prometheus/client_golang/prometheus"
)

// setFlag sets a global flag for the duration of the test.
func setFlag[T any](t *testing.T, p *T, v T) {
	t.Helper()
	old := *p
	*p = v
	t.Cleanup(func() { *p = old })
}

// writeBook writes a TOML seed in a temporary directory and returns its path.
func writeBook(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "book.toml")
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write book: %v", err)
	}
	return file
}

// execute runs a subcommand with args, as the commander would.
func execute(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("failed to parse %v: %v", args, err)
	}
	return c.Execute(context.Background(), f)
}

func TestOpenLedger_DefaultSeed(t *testing.T) {
	setFlag(t, bookFile, "")
	l, err := OpenLedger()
	if err != nil {
		t.Fatalf("OpenLedger() failed: %v", err)
	}
	if got := l.Customer().ID; got != "CUST001" {
		t.Errorf("customer = %q, want CUST001", got)
	}
}

func TestOpenLedger_Book(t *testing.T) {
	setFlag(t, bookFile, writeBook(t, `
balance = 100
[customer]
id = "CUST002"
name = "Ravi Kumar"
risk_score = 550
[[policy]]
id = "POL_HEALTH_01"
type = "Health"
premium = 250
active = true
`))
	l, err := OpenLedger()
	if err != nil {
		t.Fatalf("OpenLedger() failed: %v", err)
	}
	if got := l.ClassifyRisk(); got != securefinance.HighRisk {
		t.Errorf("ClassifyRisk() = %q, want %q", got, securefinance.HighRisk)
	}
	if _, ok := l.Policy("POL_HEALTH_01"); !ok {
		t.Error("POL_HEALTH_01 not found")
	}
}

func TestOpenLedger_Errors(t *testing.T) {
	setFlag(t, bookFile, filepath.Join(t.TempDir(), "missing.toml"))
	if _, err := OpenLedger(); err == nil {
		t.Error("OpenLedger() with a missing book succeeded")
	}

	setFlag(t, bookFile, writeBook(t, `balance = "lots"`))
	if _, err := OpenLedger(); err == nil {
		t.Error("OpenLedger() with an invalid book succeeded")
	}

	setFlag(t, bookFile, "")
	setFlag(t, logLevel, "chatty")
	if _, err := OpenLedger(); err == nil {
		t.Error("OpenLedger() with an invalid log level succeeded")
	}
}

func TestPayCmd(t *testing.T) {
	setFlag(t, bookFile, "")
	setFlag(t, plain, true)

	testCases := []struct {
		args []string
		want subcommands.ExitStatus
	}{
		{nil, subcommands.ExitUsageError},
		{[]string{"POL_LIFE_01"}, subcommands.ExitSuccess},
		{[]string{"POL_CAR_99"}, subcommands.ExitFailure},
		{[]string{"POL_XYZ"}, subcommands.ExitFailure},
		{[]string{"-json", "POL_LIFE_01", "POL_XYZ"}, subcommands.ExitFailure},
		{[]string{"POL_LIFE_01", "POL_LIFE_01", "POL_LIFE_01", "POL_LIFE_01"}, subcommands.ExitSuccess},
		{[]string{"POL_LIFE_01", "POL_LIFE_01", "POL_LIFE_01", "POL_LIFE_01", "POL_LIFE_01"}, subcommands.ExitFailure},
	}
	for _, tc := range testCases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			if got := execute(t, &payCmd{}, tc.args...); got != tc.want {
				t.Errorf("pay %v = %v, want %v", tc.args, got, tc.want)
			}
		})
	}
}

func TestDemoCmd(t *testing.T) {
	setFlag(t, bookFile, "")
	setFlag(t, plain, true)

	if got := execute(t, &demoCmd{}, "-metrics"); got != subcommands.ExitSuccess {
		t.Errorf("demo = %v, want success", got)
	}
}

func TestWriteMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	l, err := securefinance.NewLedger(securefinance.DefaultSeed(), securefinance.WithMetrics(securefinance.NewMetrics(reg)))
	if err != nil {
		t.Fatal(err)
	}
	securefinance.Demo(l)

	var buf bytes.Buffer
	if err := writeMetrics(&buf, reg); err != nil {
		t.Fatalf("writeMetrics() failed: %v", err)
	}
	for _, want := range []string{
		`securefinance_premium_payments_total{outcome="paid"} 1`,
		`securefinance_premium_payments_total{outcome="policy-inactive"} 1`,
		"securefinance_premium_paid_total 12000",
		"securefinance_balance 38000",
	} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("metrics do not contain %q:\n%s", want, buf.String())
		}
	}
}

func TestQuery(t *testing.T) {
	l, err := securefinance.NewLedger(securefinance.DefaultSeed())
	if err != nil {
		t.Fatal(err)
	}
	securefinance.Demo(l)

	testCases := []struct {
		expr string
		want any
	}{
		{"$.customer.name", "Amit Patel"},
		{"$.balance.amount", 38000.0},
		{"$.risk", "Moderate Risk"},
		{"$.policies[?(@.active)].id", []any{"POL_LIFE_01"}},
		{"$.payments[*].outcome", []any{"paid", "policy-inactive"}},
	}
	for _, tc := range testCases {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := Query(l, tc.expr)
			if err != nil {
				t.Fatalf("Query(%q) failed: %v", tc.expr, err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Query(%q) = %#v, want %#v", tc.expr, got, tc.want)
			}
		})
	}

	if _, err := Query(l, "$.nope"); err == nil {
		t.Error("Query(\"$.nope\") succeeded, want an unknown key error")
	}
}

func TestQueryCmd_Usage(t *testing.T) {
	if got := execute(t, &queryCmd{}); got != subcommands.ExitUsageError {
		t.Errorf("query without expression = %v, want %v", got, subcommands.ExitUsageError)
	}
}

func TestCompletion(t *testing.T) {
	c := Completion()
	for _, cmd := range Commands {
		if _, ok := c.Sub[cmd.Name()]; !ok {
			t.Errorf("no completion for subcommand %q", cmd.Name())
		}
	}
}
