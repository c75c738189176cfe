package grana

import (
	"slices"

	"github.com/luchiari/grana/date"
)

// DefaultRecentMovements is how many recent investment movements a
// snapshot lists.
const DefaultRecentMovements = 10

// Holding is the computed financial position of one equity.
type Holding struct {
	EquityID     string
	Name         string
	Group        string
	CurrentValue Money
	Invested     Money // cost basis
	NetGain      Money
	NetGainPct   Percent // 0 when nothing is invested, never NaN
}

// SnapshotTotals are the headline figures of the investment workspace.
type SnapshotTotals struct {
	Count               int
	CurrentValue        Money
	Invested            Money
	NetGain             Money
	NetGainPct          Percent
	AverageTicket       Money // current value / holding count
	AverageContribution Money // mean of the last 6 monthly contribution totals
}

// AllocationSlice is one reporting group's share of the portfolio.
type AllocationSlice struct {
	Group string
	Value Money
	Share Percent
}

// MonthlyInvestmentFlow is one month of contributions vs withdrawals.
type MonthlyInvestmentFlow struct {
	Label         string
	Range         date.Range
	Contributions Money
	Withdrawals   Money
	Net           Money
}

// InvestmentSnapshot is the point-in-time derived aggregate behind the
// investment workspace. It is computed, returned and discarded; nothing
// in it is persisted.
type InvestmentSnapshot struct {
	Date            date.Date
	Holdings        []Holding
	Totals          SnapshotTotals
	Allocation      []AllocationSlice
	Flows           []MonthlyInvestmentFlow
	RecentMovements []Transaction
}

// NewInvestmentSnapshot joins the ledger's equities with their funding
// transactions into the investment workspace aggregate on a given date.
func NewInvestmentSnapshot(l *Ledger, on date.Date) (*InvestmentSnapshot, error) {
	snapshot := &InvestmentSnapshot{Date: on}

	// Holdings, totals and allocation come from the equity snapshots.
	byGroup := make(map[string]Money)
	var groups []string
	for equity := range l.AllEquities() {
		gain := equity.Value.Sub(equity.Cost)
		snapshot.Holdings = append(snapshot.Holdings, Holding{
			EquityID:     equity.ID,
			Name:         equity.Name,
			Group:        equity.Type.Group(),
			CurrentValue: equity.Value,
			Invested:     equity.Cost,
			NetGain:      gain,
			NetGainPct:   gain.PercentOf(equity.Cost),
		})
		group := equity.Type.Group()
		if _, seen := byGroup[group]; !seen {
			groups = append(groups, group)
		}
		byGroup[group] = byGroup[group].Add(equity.Value)
		snapshot.Totals.CurrentValue = snapshot.Totals.CurrentValue.Add(equity.Value)
		snapshot.Totals.Invested = snapshot.Totals.Invested.Add(equity.Cost)
	}
	snapshot.Totals.Count = len(snapshot.Holdings)
	snapshot.Totals.NetGain = snapshot.Totals.CurrentValue.Sub(snapshot.Totals.Invested)
	snapshot.Totals.NetGainPct = snapshot.Totals.NetGain.PercentOf(snapshot.Totals.Invested)
	if snapshot.Totals.Count > 0 {
		snapshot.Totals.AverageTicket = snapshot.Totals.CurrentValue.DivBy(int64(snapshot.Totals.Count))
	}

	for _, group := range groups {
		snapshot.Allocation = append(snapshot.Allocation, AllocationSlice{
			Group: group,
			Value: byGroup[group],
			Share: byGroup[group].PercentOf(snapshot.Totals.CurrentValue),
		})
	}
	slices.SortFunc(snapshot.Allocation, func(a, b AllocationSlice) int {
		switch {
		case a.Value.GreaterThan(b.Value):
			return -1
		case a.Value.LessThan(b.Value):
			return 1
		default:
			return 0
		}
	})

	// Monthly contribution/withdrawal flow over the default window.
	// Contributions are investment-related expenses (money going into
	// assets), withdrawals investment-related income (money coming out).
	movements := slices.Collect(l.Transactions(Transaction.InvestmentRelated))
	buckets, err := BucketByMonth(movements, on, DefaultWindow)
	if err != nil {
		return nil, err
	}
	var contributionSum Money
	for _, bucket := range buckets {
		flow := MonthlyInvestmentFlow{Label: bucket.Label, Range: bucket.Range}
		for _, tx := range bucket.Transactions {
			switch tx.Type {
			case Expense:
				flow.Contributions = flow.Contributions.Add(tx.Amount)
			case Income:
				flow.Withdrawals = flow.Withdrawals.Add(tx.Amount)
			}
		}
		flow.Net = flow.Contributions.Sub(flow.Withdrawals)
		contributionSum = contributionSum.Add(flow.Contributions)
		snapshot.Flows = append(snapshot.Flows, flow)
	}
	if len(snapshot.Flows) > 0 {
		snapshot.Totals.AverageContribution = contributionSum.DivBy(int64(len(snapshot.Flows)))
	}

	// Most recent movements, newest first.
	for i := len(movements) - 1; i >= 0 && len(snapshot.RecentMovements) < DefaultRecentMovements; i-- {
		if movements[i].Date.After(on) {
			continue
		}
		snapshot.RecentMovements = append(snapshot.RecentMovements, movements[i])
	}

	return snapshot, nil
}

// EvolutionPoint is one month of the equity trend series.
type EvolutionPoint struct {
	Label string
	Range date.Range
	Value Money
}

// EquityEvolution is the net-worth trend series behind the equity chart.
type EquityEvolution struct {
	Points []EvolutionPoint
}

// NewEquityEvolution computes the total equity value per month over the
// window ending at ref. An equity contributes to a month only if it was
// acquired on or before the month's last day: an asset cannot count
// toward net worth before it existed.
func NewEquityEvolution(l *Ledger, ref date.Date, window int) (*EquityEvolution, error) {
	ranges, err := MonthWindow(ref, window)
	if err != nil {
		return nil, err
	}
	evolution := &EquityEvolution{Points: make([]EvolutionPoint, 0, len(ranges))}
	for _, r := range ranges {
		point := EvolutionPoint{Label: MonthLabel(r.From), Range: r}
		for equity := range l.AllEquities() {
			if equity.AcquisitionDate.After(r.To) {
				continue
			}
			point.Value = point.Value.Add(equity.Value)
		}
		evolution.Points = append(evolution.Points, point)
	}
	return evolution, nil
}
