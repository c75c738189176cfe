package grana

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file handles the ledger file format: a JSONL stream where each
// line is one record tagged by its "record" property. The format stays
// human readable, single file and easy to diff; durability is the
// caller's problem, not the engine's.

// record kinds used to identify JSONL lines.
const (
	recAccount     = "account"
	recCard        = "card"
	recEquity      = "equity"
	recBudget      = "budget"
	recTransaction = "transaction"
)

type recordLine struct {
	Record string `json:"record"`
}

// DecodeLedger decodes a JSONL stream of tagged records into a Ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}
		var identifier recordLine
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(line), err)
		}
		switch identifier.Record {
		case recAccount:
			var a Account
			if err := json.Unmarshal(line, &a); err != nil {
				return nil, fmt.Errorf("invalid account line %q: %w", string(line), err)
			}
			ledger.SetAccounts(a)
		case recCard:
			var c CreditCard
			if err := json.Unmarshal(line, &c); err != nil {
				return nil, fmt.Errorf("invalid card line %q: %w", string(line), err)
			}
			ledger.SetCards(c)
		case recEquity:
			var e Equity
			if err := json.Unmarshal(line, &e); err != nil {
				return nil, fmt.Errorf("invalid equity line %q: %w", string(line), err)
			}
			ledger.SetEquities(e)
		case recBudget:
			var b Budget
			if err := json.Unmarshal(line, &b); err != nil {
				return nil, fmt.Errorf("invalid budget line %q: %w", string(line), err)
			}
			ledger.SetBudgets(b)
		case recTransaction:
			var t Transaction
			if err := json.Unmarshal(line, &t); err != nil {
				return nil, fmt.Errorf("invalid transaction line %q: %w", string(line), err)
			}
			ledger.Append(t)
		default:
			return nil, fmt.Errorf("unknown record kind %q in line %q", identifier.Record, string(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read ledger stream: %w", err)
	}
	return ledger, nil
}

// encodeLine writes one tagged record as a JSONL line.
func encodeLine(w io.Writer, kind string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	// splice the record tag in front of the marshaled object.
	if _, err := fmt.Fprintf(w, `{"record":%q,`, kind); err != nil {
		return err
	}
	if _, err := w.Write(payload[1:]); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

// EncodeTransaction writes one transaction as a JSONL line, for
// appending to an existing ledger file.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	return encodeLine(w, recTransaction, tx)
}

// EncodeLedger encodes the ledger as a JSONL stream: reference records
// first (accounts, cards, equities, budgets), then transactions in
// chronological order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	ids := make([]string, 0, len(l.accounts))
	for id := range l.accounts {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if err := encodeLine(w, recAccount, l.accounts[id]); err != nil {
			return fmt.Errorf("could not encode account %q: %w", id, err)
		}
	}
	ids = ids[:0]
	for id := range l.cards {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if err := encodeLine(w, recCard, l.cards[id]); err != nil {
			return fmt.Errorf("could not encode card %q: %w", id, err)
		}
	}
	for equity := range l.AllEquities() {
		if err := encodeLine(w, recEquity, equity); err != nil {
			return fmt.Errorf("could not encode equity %q: %w", equity.ID, err)
		}
	}
	for _, b := range l.budgets {
		if err := encodeLine(w, recBudget, b); err != nil {
			return fmt.Errorf("could not encode budget %q: %w", b.ID, err)
		}
	}
	for tx := range l.Transactions() {
		if err := encodeLine(w, recTransaction, tx); err != nil {
			return fmt.Errorf("could not encode transaction %q: %w", tx.ID, err)
		}
	}
	return nil
}
