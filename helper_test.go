package grana

import (
	"github.com/luchiari/grana/date"
)

// R builds a BRL amount for tests.
func R(v float64) Money { return BRL(v) }

func day(s string) date.Date { return date.MustParse(s) }

// expense builds a paid account expense for tests.
func expense(on string, category Category, amount float64) Transaction {
	return Transaction{
		ID:        "tx-" + on + "-" + string(category),
		Type:      Expense,
		Category:  category,
		Amount:    R(amount),
		Date:      day(on),
		AccountID: "acc-1",
		IsPaid:    true,
	}
}

// income builds a paid account income for tests.
func income(on string, category Category, amount float64) Transaction {
	return Transaction{
		ID:        "rx-" + on + "-" + string(category),
		Type:      Income,
		Category:  category,
		Amount:    R(amount),
		Date:      day(on),
		AccountID: "acc-1",
		IsPaid:    true,
	}
}
