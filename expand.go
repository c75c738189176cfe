package grana

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/luchiari/grana/date"
)

// Frequency is the cadence of a recurrence definition.
type Frequency string

const (
	Daily      Frequency = "DAILY"
	Weekly     Frequency = "WEEKLY"
	Monthly    Frequency = "MONTHLY"
	Quarterly  Frequency = "QUARTERLY"
	SemiAnnual Frequency = "SEMI_ANNUAL"
	Annual     Frequency = "ANNUAL"
)

// ParseFrequency parses a string into a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(strings.ToUpper(strings.TrimSpace(s))) {
	case Daily:
		return Daily, nil
	case Weekly:
		return Weekly, nil
	case Monthly:
		return Monthly, nil
	case Quarterly:
		return Quarterly, nil
	case SemiAnnual:
		return SemiAnnual, nil
	case Annual:
		return Annual, nil
	default:
		return "", fmt.Errorf("unknown frequency %q", s)
	}
}

// occurrence returns the date of the i-th occurrence (0-based) of the
// frequency starting at start. Month-based cadences step whole calendar
// months from the original start, clamping the day of month, so a series
// anchored on Jan 31 lands on Feb 28 and back on Mar 31 rather than
// drifting to the 28th forever.
func (f Frequency) occurrence(start date.Date, i int) (date.Date, error) {
	switch f {
	case Daily:
		return start.Add(i), nil
	case Weekly:
		return start.Add(7 * i), nil
	case Monthly:
		return start.AddMonths(i), nil
	case Quarterly:
		return start.AddMonths(3 * i), nil
	case SemiAnnual:
		return start.AddMonths(6 * i), nil
	case Annual:
		return start.AddMonths(12 * i), nil
	default:
		return date.Date{}, fmt.Errorf("unknown frequency %q", string(f))
	}
}

// DefaultRecurrenceHorizon caps an open-ended recurrence (no end date)
// at this many occurrences. Two years of a monthly series; the original
// system generated without a stated limit, which is not acceptable for
// an engine that must terminate.
const DefaultRecurrenceHorizon = 24

// ExpandInstallments splits a transaction intent into count installments.
// The amount is divided cent-exactly with the remainder assigned to the
// first installment, dates advance one clamped calendar month per
// installment, and the installments share TotalInstallments with
// sequential CurrentInstallment 1..count. Installments are distinct from
// recurrences and carry no recurrence id.
func ExpandInstallments(intent TransactionIntent, count int) ([]Transaction, error) {
	if count <= 0 {
		return nil, fmt.Errorf("installment count must be positive, got %d", count)
	}
	parts, err := intent.Amount.Split(count)
	if err != nil {
		return nil, err
	}
	txs := make([]Transaction, 0, count)
	for i, part := range parts {
		tx := intent.at(intent.Date.AddMonths(i), part)
		tx.CurrentInstallment = i + 1
		tx.TotalInstallments = count
		txs = append(txs, tx)
	}
	return txs, nil
}

// ExpandRecurrence generates one transaction per period at the given
// frequency starting at start. The series stops at end when present,
// otherwise after [DefaultRecurrenceHorizon] occurrences. All generated
// transactions share one newly minted recurrence id.
//
// A zero end date means "no end date".
func ExpandRecurrence(intent TransactionIntent, freq Frequency, start, end date.Date) ([]Transaction, error) {
	if start.IsZero() {
		return nil, fmt.Errorf("recurrence start date is missing")
	}
	if _, err := freq.occurrence(start, 0); err != nil {
		return nil, err
	}
	if !end.IsZero() && end.Before(start) {
		return nil, fmt.Errorf("recurrence end date %s is before start date %s", end, start)
	}

	recurrenceID := uuid.NewString()
	var txs []Transaction
	for i := 0; ; i++ {
		if end.IsZero() && i >= DefaultRecurrenceHorizon {
			break
		}
		on, err := freq.occurrence(start, i)
		if err != nil {
			return nil, err
		}
		if !end.IsZero() && on.After(end) {
			break
		}
		tx := intent.at(on, intent.Amount)
		tx.RecurringTransactionID = recurrenceID
		txs = append(txs, tx)
	}
	return txs, nil
}
