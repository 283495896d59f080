package cmd

import (
	"github.com/etnz/securefinance"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the sfin command line for shell completion.
//
// Policy ids are predicted from the built-in seed, since the book flag is not
// parsed yet when completing.
func Completion() *complete.Command {
	var ids predict.Set
	for _, p := range securefinance.DefaultSeed().Policies {
		ids = append(ids, p.ID)
	}
	jsonFlag := map[string]complete.Predictor{"json": predict.Nothing}

	return &complete.Command{
		Sub: map[string]*complete.Command{
			"status": {Flags: jsonFlag},
			"pay":    {Flags: jsonFlag, Args: ids},
			"risk":   {},
			"demo":   {Flags: map[string]complete.Predictor{"metrics": predict.Nothing}, Args: ids},
			"query":  {Flags: map[string]complete.Predictor{"demo": predict.Nothing}},
			"help":   {Args: predict.Set{"status", "pay", "risk", "demo", "query"}},
		},
		Flags: map[string]complete.Predictor{
			"book":      predict.Files("*.toml"),
			"log-level": predict.Set{"debug", "info", "warn", "error"},
			"plain":     predict.Nothing,
		},
	}
}
