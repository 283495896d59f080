// Package cmd implements the CLI application to manage a SecureFinance ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/securefinance"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Commands lists the subcommands of the sfin tool.
var Commands = []subcommands.Command{
	&statusCmd{},
	&payCmd{},
	&riskCmd{},
	&demoCmd{},
	&queryCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "ledger")
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("book", "", "Path to the TOML seed of the ledger. Uses the built-in seed if empty.")
var logLevel = flag.String("log-level", "error", "Minimum level of the logs written to stderr (debug, info, warn, error)")
var plain = flag.Bool("plain", false, "Print raw markdown instead of rendering it for the terminal")

// DecodeSeed reads the seed from the app book file, or returns the default seed.
func DecodeSeed() (securefinance.Seed, error) {
	if *bookFile == "" {
		return securefinance.DefaultSeed(), nil
	}
	f, err := os.Open(*bookFile)
	if err != nil {
		return securefinance.Seed{}, fmt.Errorf("could not open book: %w", err)
	}
	defer f.Close()
	seed, err := securefinance.DecodeSeed(f)
	if err != nil {
		return securefinance.Seed{}, fmt.Errorf("could not read book %q: %w", *bookFile, err)
	}
	return seed, nil
}

// OpenLedger creates the ledger of the app book, logging with the app log level.
func OpenLedger(opts ...securefinance.Option) (*securefinance.Ledger, error) {
	seed, err := DecodeSeed()
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(*logLevel)
	if err != nil {
		return nil, err
	}
	return securefinance.NewLedger(seed, append([]securefinance.Option{securefinance.WithLogger(logger)}, opts...)...)
}

// newLogger builds a console logger on stderr.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// printMarkdown prints md to stdout, rendered for the terminal unless -plain is set.
func printMarkdown(md string) {
	if *plain {
		fmt.Print(md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning, cannot render markdown: %v\n", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// exitStatus maps an error opening the ledger to the exit status of a command.
func exitStatus(err error) subcommands.ExitStatus {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		fmt.Fprintf(os.Stderr, "Error opening book: %v\n", err)
		return subcommands.ExitUsageError
	}
	fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
	return subcommands.ExitFailure
}
