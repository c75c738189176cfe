package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/luchiari/grana"
	"github.com/luchiari/grana/date"
	"github.com/luchiari/grana/renderer"
)

// budgetCmd holds the flags for the 'budget' subcommand.
type budgetCmd struct {
	date string
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "compare spending against the configured budgets" }
func (*budgetCmd) Usage() string {
	return `grana budget [-d <date>]

  Compares each budget's ceiling against the spending of its period.
`
}

func (c *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Reference date selecting the budget periods.")
}

func (c *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	comparisons, err := grana.NewBudgetComparisons(ledger, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error comparing budgets: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(comparisons) == 0 {
		fmt.Println("No budgets configured.")
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.BudgetMarkdown(comparisons))
	return subcommands.ExitSuccess
}
