package grana

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// This file maps arbitrary bank-export JSON into transaction drafts.
// Export layouts differ per institution, so the caller describes where
// each field lives with jsonpath expressions instead of the engine
// hard-coding one schema.

// ImportMapping describes how to read transactions out of a bank-export
// JSON document.
type ImportMapping struct {
	// Records selects the list of raw records, e.g. "$.data[*]" or
	// "$.statement.entries[*]".
	Records string

	// Per-record paths, evaluated relative to each selected record.
	// Date and Amount are required; the rest are optional.
	Date        string
	Amount      string
	Description string

	// A signed Amount decides the type: positive is income, negative an
	// expense (the export convention of every bank format seen so far).
	// Category and AccountID apply to all imported records.
	Category  Category
	AccountID string
	Currency  string
}

// firstOf unwraps jsonpath results. jsonpath is never clear about
// whether it returns a list of one answer or a single answer, so keep
// the first one if any.
func firstOf(jval any) any {
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		return jlist[0]
	}
	return jval
}

func (m ImportMapping) validate() error {
	if m.Records == "" {
		return fmt.Errorf("import mapping records path is missing")
	}
	if m.Date == "" {
		return fmt.Errorf("import mapping date path is missing")
	}
	if m.Amount == "" {
		return fmt.Errorf("import mapping amount path is missing")
	}
	if m.AccountID == "" {
		return fmt.Errorf("import mapping target account is missing")
	}
	return nil
}

// ImportTransactions reads a bank-export JSON document from r and maps
// it into transaction drafts using the given mapping. The drafts are
// returned for the caller to review and persist; nothing is appended
// anywhere by this call.
func ImportTransactions(r io.Reader, m ImportMapping) ([]Transaction, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}

	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse export document: %w", err)
	}

	jval, err := jsonpath.Get(m.Records, jobj)
	if err != nil {
		return nil, fmt.Errorf("error selecting records with %q: %w", m.Records, err)
	}
	jrecords, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("records path %q did not select a list, got %T", m.Records, jval)
	}

	currency := m.Currency
	if currency == "" {
		currency = DefaultCurrency
	}
	category := m.Category
	if category == "" {
		category = CategoryOther
	}

	txs := make([]Transaction, 0, len(jrecords))
	for i, jrec := range jrecords {
		rawDate, err := pathString(jrec, m.Date)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		on, err := NormalizeDate(rawDate)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		amount, err := pathFloat(jrec, m.Amount)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if amount == 0 {
			continue // zero-amount lines are padding, not transactions
		}
		description := ""
		if m.Description != "" {
			if description, err = pathString(jrec, m.Description); err != nil {
				return nil, fmt.Errorf("record %d: %w", i, err)
			}
		}

		intent := TransactionIntent{
			Type:        Income,
			Category:    category,
			Amount:      M(amount, currency),
			Description: description,
			Date:        on,
			AccountID:   m.AccountID,
			IsPaid:      true,
		}
		if amount < 0 {
			intent.Type = Expense
			intent.Amount = M(-amount, currency)
		}
		txs = append(txs, intent.Single())
	}
	return txs, nil
}

// pathString evaluates a jsonpath expected to yield a string.
func pathString(jrec any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jrec)
	if err != nil {
		return "", fmt.Errorf("error evaluating %q: %w", path, err)
	}
	s, ok := firstOf(jval).(string)
	if !ok {
		return "", fmt.Errorf("path %q is not a string: %v", path, jval)
	}
	return s, nil
}

// pathFloat evaluates a jsonpath expected to yield a number.
func pathFloat(jrec any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jrec)
	if err != nil {
		return 0, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	f, ok := firstOf(jval).(float64)
	if !ok {
		return 0, fmt.Errorf("path %q is not a number: %v", path, jval)
	}
	return f, nil
}
