package grana

import "testing"

func TestNewBudgetComparison(t *testing.T) {
	l := NewLedger()
	l.Append(
		expense("2025-06-02", CategoryFood, 350),
		expense("2025-06-20", CategoryFood, 250),
		expense("2025-05-30", CategoryFood, 999),     // previous month, ignored
		expense("2025-06-10", CategoryTransport, 80), // other category, ignored
		income("2025-06-05", CategorySalary, 4000),   // income never counts as spent
	)
	budget := Budget{ID: "b1", Category: CategoryFood, Period: BudgetMonthly, Amount: R(800)}

	comparison, err := NewBudgetComparison(l, budget, day("2025-06-15"))
	if err != nil {
		t.Fatalf("NewBudgetComparison() error = %v", err)
	}
	if !comparison.Spent.Equal(R(600)) {
		t.Errorf("Spent = %s, want %s", comparison.Spent, R(600))
	}
	if !comparison.Remaining.Equal(R(200)) {
		t.Errorf("Remaining = %s, want %s", comparison.Remaining, R(200))
	}
	if !comparison.Percent.Equal(75) {
		t.Errorf("Percent = %s, want 75.00%%", comparison.Percent)
	}
}

func TestNewBudgetComparisonOverspent(t *testing.T) {
	l := NewLedger()
	l.Append(expense("2025-06-02", CategoryLeisure, 900))
	budget := Budget{ID: "b2", Category: CategoryLeisure, Period: BudgetMonthly, Amount: R(600)}

	comparison, err := NewBudgetComparison(l, budget, day("2025-06-15"))
	if err != nil {
		t.Fatalf("NewBudgetComparison() error = %v", err)
	}
	// a blown budget is surfaced as negative remaining, never clamped.
	if !comparison.Remaining.Equal(R(-300)) {
		t.Errorf("Remaining = %s, want %s", comparison.Remaining, R(-300))
	}
	if !comparison.Percent.Equal(150) {
		t.Errorf("Percent = %s, want 150.00%%", comparison.Percent)
	}
}

func TestNewBudgetComparisonZeroCeiling(t *testing.T) {
	l := NewLedger()
	l.Append(expense("2025-06-02", CategoryFood, 100))
	budget := Budget{ID: "b3", Category: CategoryFood, Period: BudgetMonthly, Amount: R(0)}

	comparison, err := NewBudgetComparison(l, budget, day("2025-06-15"))
	if err != nil {
		t.Fatalf("NewBudgetComparison() error = %v", err)
	}
	// percent is 0 when the ceiling is 0, never a division by zero.
	if !comparison.Percent.Equal(0) {
		t.Errorf("Percent = %s, want 0.00%%", comparison.Percent)
	}
}

func TestNewBudgetComparisonYearly(t *testing.T) {
	l := NewLedger()
	l.Append(
		expense("2025-01-15", CategoryEducation, 1200),
		expense("2025-09-15", CategoryEducation, 1200),
		expense("2024-12-31", CategoryEducation, 1200), // previous year
	)
	budget := Budget{ID: "b4", Category: CategoryEducation, Period: BudgetYearly, Amount: R(3000)}

	comparison, err := NewBudgetComparison(l, budget, day("2025-06-15"))
	if err != nil {
		t.Fatalf("NewBudgetComparison() error = %v", err)
	}
	if !comparison.Spent.Equal(R(2400)) {
		t.Errorf("Spent = %s, want %s", comparison.Spent, R(2400))
	}
}

func TestNewBudgetComparisons(t *testing.T) {
	l := NewLedger()
	l.SetBudgets(
		Budget{ID: "b1", Category: CategoryFood, Period: BudgetMonthly, Amount: R(800)},
		Budget{ID: "b2", Category: CategoryLeisure, Period: BudgetMonthly, Amount: R(400)},
	)
	l.Append(expense("2025-06-02", CategoryFood, 100))

	comparisons, err := NewBudgetComparisons(l, day("2025-06-15"))
	if err != nil {
		t.Fatalf("NewBudgetComparisons() error = %v", err)
	}
	if len(comparisons) != 2 {
		t.Fatalf("len(comparisons) = %d, want 2", len(comparisons))
	}
	if comparisons[0].Budget.ID != "b1" || comparisons[1].Budget.ID != "b2" {
		t.Errorf("comparisons out of order: %s, %s", comparisons[0].Budget.ID, comparisons[1].Budget.ID)
	}
}

func TestBudgetPeriodUnknown(t *testing.T) {
	budget := Budget{ID: "b5", Category: CategoryFood, Period: BudgetPeriod("WEEK"), Amount: R(100)}
	if _, err := NewBudgetComparison(NewLedger(), budget, day("2025-06-15")); err == nil {
		t.Error("expected error for unknown budget period")
	}
}
