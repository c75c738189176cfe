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

// cashflowCmd holds the flags for the 'cashflow' subcommand.
type cashflowCmd struct {
	date              string
	months            int
	includeInvestment bool
}

func (*cashflowCmd) Name() string     { return "cashflow" }
func (*cashflowCmd) Synopsis() string { return "display the monthly income and expense series" }
func (*cashflowCmd) Usage() string {
	return `grana cashflow [-d <date>] [-months <n>]

  Displays income, expense and net balance per month over a sliding window.
`
}

func (c *cashflowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Reference date for the report.")
	f.IntVar(&c.months, "months", grana.DefaultWindow, "Number of months in the window.")
	f.BoolVar(&c.includeInvestment, "include-investment", false, "Count investment outflows as expense.")
}

func (c *cashflowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	exclude := grana.ExcludeInvestment
	if c.includeInvestment {
		exclude = grana.ExcludeNone
	}
	report, err := grana.NewCashFlowReport(ledger, on, c.months, exclude)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing cash flow: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.CashFlowMarkdown(report))
	return subcommands.ExitSuccess
}
