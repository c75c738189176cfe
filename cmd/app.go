// Package cmd implements the CLI application to query and grow a
// personal finance ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	"github.com/luchiari/grana"
	"github.com/luchiari/grana/logger"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&cashflowCmd{}, "reports")
	c.Register(&categoriesCmd{}, "reports")
	c.Register(&equityCmd{}, "reports")
	c.Register(&budgetCmd{}, "reports")

	c.Register(&addCmd{}, "transactions")
	c.Register(&importCmd{}, "transactions")
	c.Register(&fmtCmd{}, "transactions")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", defaultLedgerFile(), "Path to the ledger file (JSONL format)")

// defaultLedgerFile resolves the ledger path from the environment, with
// .env support so a project folder can pin its own ledger.
func defaultLedgerFile() string {
	godotenv.Load()
	if path := os.Getenv("GRANA_LEDGER_FILE"); path != "" {
		return path
	}
	return "ledger.jsonl"
}

// Log is the logger shared by all subcommands, leveled from the
// GRANA_LOG_LEVEL environment variable.
var Log zerolog.Logger = logger.New(logger.ParseLevel(os.Getenv("GRANA_LOG_LEVEL")))

// DecodeLedger loads the app ledger file. A missing file is an empty
// ledger, not an error, so reports work before the first transaction.
func DecodeLedger() (*grana.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		Log.Warn().Str("ledger", *ledgerFile).Msg("ledger file does not exist, using an empty ledger")
		return grana.NewLedger(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return grana.DecodeLedger(f)
}

// AppendTransactions appends transactions to the app ledger file.
func AppendTransactions(txs ...grana.Transaction) subcommands.ExitStatus {
	f, err := os.OpenFile(*ledgerFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening ledger file %q: %v\n", *ledgerFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	for _, tx := range txs {
		if err := grana.EncodeTransaction(f, tx); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing to ledger file %q: %v\n", *ledgerFile, err)
			return subcommands.ExitFailure
		}
	}
	fmt.Printf("Successfully appended %d transaction(s) to %s\n", len(txs), *ledgerFile)
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal. When stdout is not a
// terminal the raw markdown is printed as is, so output stays pipeable.
func printMarkdown(md string) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Print(md)
		return
	}
	out, err := glamour.Render(md, "auto")
	if err != nil {
		Log.Debug().Err(err).Msg("markdown rendering failed, printing raw")
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
