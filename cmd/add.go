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

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	kind        string
	category    string
	amount      float64
	description string
	date        string
	account     string
	card        string
	to          string
	equity      string
	unpaid      bool

	confirmNegative bool
	installments    int
	recurrence      string
	until           string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a transaction in the ledger" }
func (*addCmd) Usage() string {
	return `grana add -type <type> -amount <value> [-category <c>] [-account <id> | -card <id>] [options]

  Records one transaction, a set of installments or a recurring series.
  A debit that would leave the account negative is refused until the
  command is repeated with -confirm-negative.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "type", "EXPENSE", "Transaction type: INCOME, EXPENSE, TRANSFER or INVOICE_PAYMENT.")
	f.StringVar(&c.category, "category", string(grana.CategoryOther), "Transaction category key.")
	f.Float64Var(&c.amount, "amount", 0, "Transaction amount, always positive.")
	f.StringVar(&c.description, "description", "", "Free-form description.")
	f.StringVar(&c.date, "d", date.Today().String(), "Transaction date.")
	f.StringVar(&c.account, "account", "", "Source account id.")
	f.StringVar(&c.card, "card", "", "Credit card id, for deferred expenses.")
	f.StringVar(&c.to, "to", "", "Destination account id, for transfers.")
	f.StringVar(&c.equity, "equity", "", "Equity id this transaction funds or divests.")
	f.BoolVar(&c.unpaid, "unpaid", false, "Record the transaction as pending instead of paid.")

	f.BoolVar(&c.confirmNegative, "confirm-negative", false, "Accept a resulting negative account balance.")
	f.IntVar(&c.installments, "installments", 0, "Split the amount into this many monthly installments.")
	f.StringVar(&c.recurrence, "recurrence", "", "Repeat with this frequency: DAILY, WEEKLY, MONTHLY, QUARTERLY, SEMI_ANNUAL or ANNUAL.")
	f.StringVar(&c.until, "until", "", "Last date of the recurring series. Open-ended when omitted.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	typ, err := grana.ParseTransactionType(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.installments > 0 && c.recurrence != "" {
		fmt.Fprintln(os.Stderr, "Error: -installments and -recurrence are mutually exclusive")
		return subcommands.ExitUsageError
	}

	intent := grana.TransactionIntent{
		Type:                 typ,
		Category:             grana.Category(c.category),
		Amount:               grana.BRL(c.amount),
		Description:          c.description,
		Date:                 on,
		AccountID:            c.account,
		CardID:               c.card,
		DestinationAccountID: c.to,
		EquityID:             c.equity,
		IsPaid:               !c.unpaid,
	}

	txs, status := c.expand(intent, on)
	if status != subcommands.ExitSuccess {
		return status
	}
	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if status := c.checkBalance(ledger, txs); status != subcommands.ExitSuccess {
		return status
	}

	return AppendTransactions(txs...)
}

// expand turns the intent into its concrete transactions, applying the
// installment or recurrence options.
func (c *addCmd) expand(intent grana.TransactionIntent, on date.Date) ([]grana.Transaction, subcommands.ExitStatus) {
	switch {
	case c.installments > 0:
		txs, err := grana.ExpandInstallments(intent, c.installments)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error expanding installments: %v\n", err)
			return nil, subcommands.ExitUsageError
		}
		return txs, subcommands.ExitSuccess
	case c.recurrence != "":
		freq, err := grana.ParseFrequency(c.recurrence)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return nil, subcommands.ExitUsageError
		}
		var until date.Date
		if c.until != "" {
			if until, err = date.Parse(c.until); err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing until date: %v\n", err)
				return nil, subcommands.ExitUsageError
			}
		}
		txs, err := grana.ExpandRecurrence(intent, freq, on, until)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error expanding recurrence: %v\n", err)
			return nil, subcommands.ExitUsageError
		}
		return txs, subcommands.ExitSuccess
	default:
		return []grana.Transaction{intent.Single()}, subcommands.ExitSuccess
	}
}

// checkBalance runs the insufficient-funds check for immediate account
// debits. Only the first transaction debits now; installments and
// recurrences beyond it are future-dated.
func (c *addCmd) checkBalance(ledger *grana.Ledger, txs []grana.Transaction) subcommands.ExitStatus {
	debit := txs[0]
	if debit.Type != grana.Expense && debit.Type != grana.Transfer {
		return subcommands.ExitSuccess
	}
	if debit.AccountID == "" || !debit.IsPaid {
		return subcommands.ExitSuccess
	}

	check := grana.CheckDebit(ledger.Account(debit.AccountID), debit.Amount, c.confirmNegative)
	switch check.Outcome {
	case grana.DebitBlocked:
		fmt.Fprintf(os.Stderr, "Error: debit blocked: %s\n", check.Reason)
		return subcommands.ExitFailure
	case grana.DebitNeedsConfirmation:
		printMarkdown(renderer.DebitCheckMarkdown(check))
		fmt.Fprintln(os.Stderr, "The account would go negative. Repeat the command with -confirm-negative to accept it.")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
