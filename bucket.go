package grana

import (
	"fmt"

	"github.com/luchiari/grana/date"
)

// DefaultWindow is the number of calendar months covered by trend
// reports when the caller does not ask for a specific window.
const DefaultWindow = 6

// ptMonths are the pt-BR month abbreviations used for bucket labels.
var ptMonths = [...]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

// MonthLabel returns the short pt-BR label for the month containing d,
// e.g. "jan/25".
func MonthLabel(d date.Date) string {
	return fmt.Sprintf("%s/%02d", ptMonths[int(d.Month())-1], d.Year()%100)
}

// MonthBucket is one calendar month of records within a trend window.
type MonthBucket struct {
	Label        string
	Range        date.Range
	Transactions []Transaction
}

// MonthWindow returns the calendar-month ranges of the window ending at
// the month containing ref, oldest first.
func MonthWindow(ref date.Date, window int) ([]date.Range, error) {
	if window <= 0 {
		return nil, fmt.Errorf("window must be positive, got %d", window)
	}
	ranges := make([]date.Range, 0, window)
	for i := window - 1; i >= 0; i-- {
		ranges = append(ranges, date.Month(ref.StartOfMonth().AddMonths(-i)))
	}
	return ranges, nil
}

// BucketByMonth partitions transactions into calendar-month buckets over
// a sliding window ending at the month containing ref, oldest first.
// Every in-window transaction lands in exactly one bucket; transactions
// outside the window are dropped, which is not an error.
func BucketByMonth(txs []Transaction, ref date.Date, window int) ([]MonthBucket, error) {
	ranges, err := MonthWindow(ref, window)
	if err != nil {
		return nil, err
	}
	buckets := make([]MonthBucket, 0, len(ranges))
	for _, r := range ranges {
		buckets = append(buckets, MonthBucket{Label: MonthLabel(r.From), Range: r})
	}
	for _, tx := range txs {
		for i := range buckets {
			if buckets[i].Range.Contains(tx.Date) {
				buckets[i].Transactions = append(buckets[i].Transactions, tx)
				break
			}
		}
	}
	return buckets, nil
}
