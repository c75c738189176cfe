package grana

import (
	"iter"
	"maps"
	"slices"
	"sort"
	"strings"

	"github.com/luchiari/grana/date"
)

// Ledger is a read-only snapshot of the records the engine computes
// over: transactions in chronological order plus the accounts, cards,
// equities and budgets they reference. The external store owns the
// records; the ledger only indexes the copies it was handed.
type Ledger struct {
	transactions []Transaction
	accounts     map[string]Account
	cards        map[string]CreditCard
	equities     map[string]Equity
	budgets      []Budget
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		accounts: make(map[string]Account),
		cards:    make(map[string]CreditCard),
		equities: make(map[string]Equity),
	}
}

// Append appends transactions to this ledger and maintains the
// chronological order of transactions.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// stableSort sorts the ledger by transaction date. The sort is stable,
// meaning transactions on the same day maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.Before(l.transactions[j].Date)
	})
}

// SetAccounts indexes the given account snapshots.
func (l *Ledger) SetAccounts(accounts ...Account) {
	for _, a := range accounts {
		l.accounts[a.ID] = a
	}
}

// SetCards indexes the given credit card snapshots.
func (l *Ledger) SetCards(cards ...CreditCard) {
	for _, c := range cards {
		l.cards[c.ID] = c
	}
}

// SetEquities indexes the given equity snapshots.
func (l *Ledger) SetEquities(equities ...Equity) {
	for _, e := range equities {
		l.equities[e.ID] = e
	}
}

// SetBudgets records the given budget definitions.
func (l *Ledger) SetBudgets(budgets ...Budget) {
	l.budgets = append(l.budgets, budgets...)
}

// Account returns the account with this id, or nil if unknown.
func (l *Ledger) Account(id string) *Account {
	a, ok := l.accounts[id]
	if !ok {
		return nil
	}
	return &a
}

// Card returns the credit card with this id, or nil if unknown.
func (l *Ledger) Card(id string) *CreditCard {
	c, ok := l.cards[id]
	if !ok {
		return nil
	}
	return &c
}

// Equity returns the equity with this id, or nil if unknown.
func (l *Ledger) Equity(id string) *Equity {
	e, ok := l.equities[id]
	if !ok {
		return nil
	}
	return &e
}

// Budgets returns the budget definitions in insertion order.
func (l *Ledger) Budgets() []Budget { return slices.Clone(l.budgets) }

// Transactions returns an iterator over transactions in chronological
// order. With no filters every transaction is yielded; otherwise a
// transaction is yielded when all filters accept it.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			accept := true
			for _, filter := range filters {
				if !filter(tx) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(tx) {
				return
			}
		}
	}
}

// OldestTransactionDate returns the date of the earliest transaction in
// the ledger, or the zero date if the ledger is empty.
func (l *Ledger) OldestTransactionDate() date.Date {
	if len(l.transactions) == 0 {
		return date.Date{}
	}
	return l.transactions[0].Date
}

// NewestTransactionDate returns the date of the latest transaction in
// the ledger, or the zero date if the ledger is empty.
func (l *Ledger) NewestTransactionDate() date.Date {
	if len(l.transactions) == 0 {
		return date.Date{}
	}
	return l.transactions[len(l.transactions)-1].Date
}

// AllEquities iterates over equity snapshots sorted by name,
// case-insensitively so "Carro" orders before "CDB".
func (l *Ledger) AllEquities() iter.Seq[Equity] {
	return func(yield func(Equity) bool) {
		ids := slices.Collect(maps.Keys(l.equities))
		slices.SortFunc(ids, func(a, b string) int {
			an, bn := l.equities[a].Name, l.equities[b].Name
			if c := strings.Compare(strings.ToLower(an), strings.ToLower(bn)); c != 0 {
				return c
			}
			return strings.Compare(an, bn)
		})
		for _, id := range ids {
			if !yield(l.equities[id]) {
				return
			}
		}
	}
}

// ByType returns a predicate that filters transactions by type.
func ByType(t TransactionType) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Type == t }
}

// ByCategory returns a predicate that filters transactions by category.
func ByCategory(c Category) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Category == c }
}

// ByAccount returns a predicate that filters transactions posted against
// an account, as source or as transfer destination.
func ByAccount(id string) func(Transaction) bool {
	return func(tx Transaction) bool {
		return tx.AccountID == id || tx.DestinationAccountID == id
	}
}

// ByCard returns a predicate that filters transactions posted against a card.
func ByCard(id string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.CardID == id }
}

// ByEquity returns a predicate that filters transactions linked to an equity.
func ByEquity(id string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.EquityID == id }
}

// InRange returns a predicate that keeps transactions dated within r, inclusive.
func InRange(r date.Range) func(Transaction) bool {
	return func(tx Transaction) bool { return r.Contains(tx.Date) }
}

// Paid keeps only transactions flagged as paid.
func Paid(tx Transaction) bool { return tx.IsPaid }
