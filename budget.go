package grana

import (
	"fmt"
	"slices"

	"github.com/luchiari/grana/date"
)

// BudgetPeriod is the implicit period a budget ceiling applies to.
type BudgetPeriod string

const (
	BudgetMonthly BudgetPeriod = "MONTH"
	BudgetYearly  BudgetPeriod = "YEAR"
)

// Range returns the budget period's date range containing the reference date.
func (p BudgetPeriod) Range(on date.Date) (date.Range, error) {
	switch p {
	case BudgetMonthly:
		return date.Month(on), nil
	case BudgetYearly:
		return date.Year(on), nil
	default:
		return date.Range{}, fmt.Errorf("unknown budget period %q", string(p))
	}
}

// Budget is a spending ceiling for one category over an implicit period.
type Budget struct {
	ID       string       `json:"id"`
	Category Category     `json:"category"`
	Period   BudgetPeriod `json:"period"`
	Amount   Money        `json:"amount"`
}

// BudgetComparison is a budget joined with its matching transactions.
type BudgetComparison struct {
	Budget    Budget
	Range     date.Range
	Spent     Money
	Remaining Money   // negative when the budget is blown; surfaced, never clamped
	Percent   Percent // 0 when the ceiling is 0, never NaN or Inf
}

// NewBudgetComparison compares a budget against the ledger's expense
// transactions of the matching category within the budget period
// containing the reference date.
func NewBudgetComparison(l *Ledger, b Budget, on date.Date) (*BudgetComparison, error) {
	r, err := b.Period.Range(on)
	if err != nil {
		return nil, err
	}
	comparison := &BudgetComparison{Budget: b, Range: r}
	for tx := range l.Transactions(ByType(Expense), ByCategory(b.Category), InRange(r)) {
		comparison.Spent = comparison.Spent.Add(tx.Amount)
	}
	comparison.Remaining = b.Amount.Sub(comparison.Spent)
	comparison.Percent = comparison.Spent.PercentOf(b.Amount)
	return comparison, nil
}

// NewBudgetComparisons compares every budget registered in the ledger,
// keeping the ledger's budget order.
func NewBudgetComparisons(l *Ledger, on date.Date) ([]BudgetComparison, error) {
	budgets := l.Budgets()
	comparisons := make([]BudgetComparison, 0, len(budgets))
	for _, b := range budgets {
		c, err := NewBudgetComparison(l, b, on)
		if err != nil {
			return nil, err
		}
		comparisons = append(comparisons, *c)
	}
	return slices.Clip(comparisons), nil
}
