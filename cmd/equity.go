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

// equityCmd holds the flags for the 'equity' subcommand.
type equityCmd struct {
	date      string
	evolution bool
	months    int
}

func (*equityCmd) Name() string     { return "equity" }
func (*equityCmd) Synopsis() string { return "display the investment and net-worth snapshot" }
func (*equityCmd) Usage() string {
	return `grana equity [-d <date>] [-evolution] [-months <n>]

  Displays holdings, allocation and investment flows, or with -evolution
  the month-by-month net-worth trend.
`
}

func (c *equityCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Reference date for the snapshot.")
	f.BoolVar(&c.evolution, "evolution", false, "Show the net-worth trend instead of the snapshot.")
	f.IntVar(&c.months, "months", grana.DefaultWindow, "Number of months for the trend.")
}

func (c *equityCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if c.evolution {
		evolution, err := grana.NewEquityEvolution(ledger, on, c.months)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error computing evolution: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.EquityEvolutionMarkdown(evolution))
		return subcommands.ExitSuccess
	}

	snapshot, err := grana.NewInvestmentSnapshot(ledger, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing snapshot: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.InvestmentSnapshotMarkdown(snapshot))
	return subcommands.ExitSuccess
}
