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

// categoriesCmd holds the flags for the 'categories' subcommand.
type categoriesCmd struct {
	date   string
	months int
	kind   string
}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "display totals grouped by category" }
func (*categoriesCmd) Usage() string {
	return `grana categories [-d <date>] [-months <n>] [-type expense|income]

  Displays per-category totals over a sliding window, largest first.
`
}

func (c *categoriesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Reference date for the report.")
	f.IntVar(&c.months, "months", grana.DefaultWindow, "Number of months in the window.")
	f.StringVar(&c.kind, "type", "expense", "Transaction type to group: expense or income.")
}

func (c *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	var typ grana.TransactionType
	switch c.kind {
	case "expense":
		typ = grana.Expense
	case "income":
		typ = grana.Income
	default:
		fmt.Fprintf(os.Stderr, "Unknown type %q: want expense or income\n", c.kind)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	breakdown, err := grana.NewCategoryBreakdown(ledger, typ, on, c.months)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing breakdown: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.CategoryBreakdownMarkdown(breakdown))
	return subcommands.ExitSuccess
}
