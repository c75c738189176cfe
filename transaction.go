package grana

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/luchiari/grana/date"
)

// TransactionType is a typed string for identifying the kind of a transaction.
type TransactionType string

const (
	Income         TransactionType = "INCOME"
	Expense        TransactionType = "EXPENSE"
	Transfer       TransactionType = "TRANSFER"
	InvoicePayment TransactionType = "INVOICE_PAYMENT"
)

// ParseTransactionType parses a string into a TransactionType.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(s) {
	case Income, Expense, Transfer, InvoicePayment:
		return TransactionType(s), nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", s)
	}
}

// Transaction is one immutable financial fact. Once appended to a
// [Ledger] it is only ever read; updates go through the external store.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Category    Category        `json:"category"`
	Amount      Money           `json:"amount"` // always positive; Type carries the direction
	Description string          `json:"description,omitempty"`
	Date        date.Date       `json:"date"`

	// Exactly one of AccountID and CardID is set for non-transfer types:
	// an expense posts either against an account (immediate debit) or a
	// card (deferred liability), never both.
	AccountID string `json:"accountId,omitempty"`
	CardID    string `json:"cardId,omitempty"`

	DestinationAccountID string `json:"destinationAccountId,omitempty"` // transfers only
	EquityID             string `json:"equityId,omitempty"`             // ties the transaction to an investment

	CurrentInstallment int `json:"currentInstallment,omitempty"` // 1..TotalInstallments
	TotalInstallments  int `json:"totalInstallments,omitempty"`

	// RecurringTransactionID back-references the recurrence definition
	// that spawned this transaction. Installments never carry it.
	RecurringTransactionID string `json:"recurringTransactionId,omitempty"`

	IsPaid   bool       `json:"isPaid,omitempty"`
	PaidDate *date.Date `json:"paidDate,omitempty"`
}

// Validate checks the transaction's cross-field invariants.
func (t Transaction) Validate() error {
	if _, err := ParseTransactionType(string(t.Type)); err != nil {
		return err
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction amount must be positive, got %s", t.Amount)
	}
	if t.Date.IsZero() {
		return errors.New("transaction date is missing")
	}
	if t.Type != Transfer {
		if (t.AccountID == "") == (t.CardID == "") {
			return fmt.Errorf("%s transaction must reference exactly one of account or card", t.Type)
		}
	} else if t.DestinationAccountID == "" {
		return errors.New("transfer transaction destination account is missing")
	}
	if t.TotalInstallments != 0 {
		if t.CurrentInstallment < 1 || t.CurrentInstallment > t.TotalInstallments {
			return fmt.Errorf("installment %d out of range [1, %d]", t.CurrentInstallment, t.TotalInstallments)
		}
	}
	return nil
}

// Equal reports whether two transactions carry the same data.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Type == o.Type &&
		t.Category == o.Category &&
		t.Amount.Equal(o.Amount) &&
		t.Description == o.Description &&
		t.Date == o.Date &&
		t.AccountID == o.AccountID &&
		t.CardID == o.CardID &&
		t.DestinationAccountID == o.DestinationAccountID &&
		t.EquityID == o.EquityID &&
		t.CurrentInstallment == o.CurrentInstallment &&
		t.TotalInstallments == o.TotalInstallments &&
		t.RecurringTransactionID == o.RecurringTransactionID &&
		t.IsPaid == o.IsPaid
}

// InvestmentRelated reports whether the transaction funds or divests an
// equity, either through an explicit equity link or the investment
// category.
func (t Transaction) InvestmentRelated() bool {
	return t.EquityID != "" || t.Category == CategoryInvestment
}

// TransactionIntent is a transient, in-memory draft of a not-yet-submitted
// transaction. It is never persisted directly: it is converted into one
// concrete transaction by [TransactionIntent.Single], or into several by
// [ExpandInstallments] or [ExpandRecurrence].
type TransactionIntent struct {
	Type                 TransactionType
	Category             Category
	Amount               Money
	Description          string
	Date                 date.Date
	AccountID            string
	CardID               string
	DestinationAccountID string
	EquityID             string
	IsPaid               bool
}

// Single converts the intent into one concrete dated transaction with a
// freshly minted id.
func (i TransactionIntent) Single() Transaction {
	return i.at(i.Date, i.Amount)
}

// at materializes the intent on a specific date with a specific amount.
func (i TransactionIntent) at(on date.Date, amount Money) Transaction {
	tx := Transaction{
		ID:                   uuid.NewString(),
		Type:                 i.Type,
		Category:             i.Category,
		Amount:               amount,
		Description:          i.Description,
		Date:                 on,
		AccountID:            i.AccountID,
		CardID:               i.CardID,
		DestinationAccountID: i.DestinationAccountID,
		EquityID:             i.EquityID,
		IsPaid:               i.IsPaid,
	}
	if i.IsPaid {
		paid := on
		tx.PaidDate = &paid
	}
	return tx
}
