package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/luchiari/grana/cmd"
)

// completion describes the CLI for shell completion. It exits the
// process when invoked in completion mode.
func completion() {
	dateFlags := map[string]complete.Predictor{"d": predict.Nothing}
	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"cashflow":   {Flags: dateFlags},
			"categories": {Flags: map[string]complete.Predictor{"d": predict.Nothing, "type": predict.Set{"expense", "income"}}},
			"equity":     {Flags: dateFlags},
			"budget":     {Flags: dateFlags},
			"add":        {Flags: map[string]complete.Predictor{"type": predict.Set{"INCOME", "EXPENSE", "TRANSFER", "INVOICE_PAYMENT"}}},
			"import":     {Flags: map[string]complete.Predictor{"file": predict.Files("*.json")}},
			"fmt":        {},
		},
		Flags: map[string]complete.Predictor{"ledger-file": predict.Files("*.jsonl")},
	}
	c.Complete("grana")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
