package grana

import (
	"slices"

	"github.com/luchiari/grana/date"
)

// ExclusionPredicate decides whether a transaction is left out of
// expense totals. Different report views disagree on whether investment
// outflows count as "expense", so the choice is an explicit parameter of
// every flow report, never an ambient default.
type ExclusionPredicate func(Transaction) bool

// ExcludeNone keeps every transaction: investment outflows count as expense.
func ExcludeNone(Transaction) bool { return false }

// ExcludeInvestment leaves investment outflows out of expense totals,
// the behavior net-worth style views want.
func ExcludeInvestment(tx Transaction) bool { return tx.Category == CategoryInvestment }

// FlowTotals are the summed movements of one bucket.
type FlowTotals struct {
	Income  Money
	Expense Money
}

// Net returns income minus expense.
func (f FlowTotals) Net() Money { return f.Income.Sub(f.Expense) }

// AggregateFlow sums income and expense amounts for one bucket.
// Transfers move money between accounts and are never income or
// expense. Invoice payments settle a card debt already counted when the
// card expenses were recorded, so they are skipped too.
func AggregateFlow(bucket MonthBucket, exclude ExclusionPredicate) FlowTotals {
	var totals FlowTotals
	for _, tx := range bucket.Transactions {
		switch tx.Type {
		case Income:
			totals.Income = totals.Income.Add(tx.Amount)
		case Expense:
			if exclude != nil && exclude(tx) {
				continue
			}
			totals.Expense = totals.Expense.Add(tx.Amount)
		}
	}
	return totals
}

// CashFlowEntry is one month of the cash-flow series.
type CashFlowEntry struct {
	Label   string
	Range   date.Range
	Income  Money
	Expense Money
	Net     Money
}

// CashFlowReport is the multi-month income/expense series behind the
// dashboard's cash-flow chart.
type CashFlowReport struct {
	Reference date.Date
	Entries   []CashFlowEntry
}

// NewCashFlowReport buckets the ledger's transactions into the monthly
// window ending at ref and sums each bucket's flows. The exclusion
// predicate is the caller's choice of expense semantics; see
// [ExcludeNone] and [ExcludeInvestment].
func NewCashFlowReport(l *Ledger, ref date.Date, window int, exclude ExclusionPredicate) (*CashFlowReport, error) {
	buckets, err := BucketByMonth(slices.Collect(l.Transactions()), ref, window)
	if err != nil {
		return nil, err
	}
	report := &CashFlowReport{Reference: ref, Entries: make([]CashFlowEntry, 0, len(buckets))}
	for _, bucket := range buckets {
		totals := AggregateFlow(bucket, exclude)
		report.Entries = append(report.Entries, CashFlowEntry{
			Label:   bucket.Label,
			Range:   bucket.Range,
			Income:  totals.Income,
			Expense: totals.Expense,
			Net:     totals.Net(),
		})
	}
	return report, nil
}

// CategoryTotal is one slice of a category breakdown.
type CategoryTotal struct {
	Category Category
	Label    string
	Total    Money
}

// AggregateByCategory sums amounts per category for transactions of the
// given type, sorted descending by total for chart rendering. Labels
// come from the canonical table with the humanized fallback.
func AggregateByCategory(txs []Transaction, typ TransactionType) []CategoryTotal {
	byCategory := make(map[Category]Money)
	for _, tx := range txs {
		if tx.Type != typ {
			continue
		}
		byCategory[tx.Category] = byCategory[tx.Category].Add(tx.Amount)
	}
	totals := make([]CategoryTotal, 0, len(byCategory))
	for c, total := range byCategory {
		totals = append(totals, CategoryTotal{Category: c, Label: c.Label(), Total: total})
	}
	slices.SortFunc(totals, func(a, b CategoryTotal) int {
		switch {
		case a.Total.GreaterThan(b.Total):
			return -1
		case a.Total.LessThan(b.Total):
			return 1
		default:
			// stable tie-break so chart ordering does not flicker
			if a.Category < b.Category {
				return -1
			}
			if a.Category > b.Category {
				return 1
			}
			return 0
		}
	})
	return totals
}

// CategoryBreakdown is the category pie behind the dashboard's
// spending-by-category chart.
type CategoryBreakdown struct {
	Type    TransactionType
	Range   date.Range
	Totals  []CategoryTotal
	Overall Money
}

// NewCategoryBreakdown aggregates the ledger's transactions of one type
// by category over the monthly window ending at ref.
func NewCategoryBreakdown(l *Ledger, typ TransactionType, ref date.Date, window int) (*CategoryBreakdown, error) {
	ranges, err := MonthWindow(ref, window)
	if err != nil {
		return nil, err
	}
	r := date.Range{From: ranges[0].From, To: ranges[len(ranges)-1].To}
	txs := slices.Collect(l.Transactions(InRange(r)))
	breakdown := &CategoryBreakdown{Type: typ, Range: r, Totals: AggregateByCategory(txs, typ)}
	for _, t := range breakdown.Totals {
		breakdown.Overall = breakdown.Overall.Add(t.Total)
	}
	return breakdown, nil
}
