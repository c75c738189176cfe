package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"

	"github.com/luchiari/grana"
)

// fmtCmd holds the flags for the 'fmt' subcommand.
type fmtCmd struct {
	check bool
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and rewrites the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `grana fmt [-check]

  Reads the whole ledger file, validates every transaction, sorts them
  by date, and writes the file back in a canonical JSONL form with
  reference records first.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.check, "check", false, "Validate only, do not rewrite the file.")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	invalid := 0
	for tx := range ledger.Transactions() {
		if err := tx.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid transaction %s: %v\n", tx.ID, err)
			invalid++
		}
	}
	if invalid > 0 {
		fmt.Fprintf(os.Stderr, "Found %d invalid transaction(s).\n", invalid)
		return subcommands.ExitFailure
	}
	if c.check {
		fmt.Fprintln(os.Stderr, "Ledger is valid.")
		return subcommands.ExitSuccess
	}

	// The temp file lives next to the ledger so the final rename stays
	// on one filesystem and is atomic.
	out, err := os.CreateTemp(filepath.Dir(*ledgerFile), "grana-fmt-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating temporary file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer os.Remove(out.Name())

	if err := grana.EncodeLedger(out, ledger); err != nil {
		out.Close()
		fmt.Fprintf(os.Stderr, "Error encoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing temporary file: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := os.Rename(out.Name(), *ledgerFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error replacing ledger file: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Formatted ledger %q.\n", *ledgerFile)
	return subcommands.ExitSuccess
}
