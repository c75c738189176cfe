package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/luchiari/grana"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	file        string
	records     string
	datePath    string
	amountPath  string
	description string
	category    string
	account     string
	currency    string
	dryRun      bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import transactions from a bank-export JSON file" }
func (*importCmd) Usage() string {
	return `grana import -file <export.json> -records <path> -date <path> -amount <path> -account <id> [options]

  Maps a bank-export JSON document into transactions using jsonpath
  expressions. Positive amounts import as income, negative as expense.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "Export document to import.")
	f.StringVar(&c.records, "records", "$[*]", "jsonpath selecting the list of records.")
	f.StringVar(&c.datePath, "date", "$.date", "jsonpath to each record's date.")
	f.StringVar(&c.amountPath, "amount", "$.amount", "jsonpath to each record's signed amount.")
	f.StringVar(&c.description, "description", "", "jsonpath to each record's description, optional.")
	f.StringVar(&c.category, "category", string(grana.CategoryOther), "Category applied to every imported transaction.")
	f.StringVar(&c.account, "account", "", "Account id the transactions post against.")
	f.StringVar(&c.currency, "currency", "", "Currency code, defaults to BRL.")
	f.BoolVar(&c.dryRun, "dry-run", false, "Parse and report without writing to the ledger.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required")
		return subcommands.ExitUsageError
	}
	in, err := os.Open(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening export file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	txs, err := grana.ImportTransactions(in, grana.ImportMapping{
		Records:     c.records,
		Date:        c.datePath,
		Amount:      c.amountPath,
		Description: c.description,
		Category:    grana.Category(c.category),
		AccountID:   c.account,
		Currency:    c.currency,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing: %v\n", err)
		return subcommands.ExitFailure
	}
	Log.Info().Int("count", len(txs)).Str("file", c.file).Msg("parsed export document")

	if c.dryRun {
		fmt.Printf("Would import %d transaction(s) from %s\n", len(txs), c.file)
		return subcommands.ExitSuccess
	}
	if len(txs) == 0 {
		fmt.Println("Nothing to import.")
		return subcommands.ExitSuccess
	}
	return AppendTransactions(txs...)
}
