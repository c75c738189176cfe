package date

import "fmt"

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange returns the inclusive range [from, to].
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// Month returns the range covering the whole calendar month containing d.
func Month(d Date) Range { return Range{From: d.StartOfMonth(), To: d.EndOfMonth()} }

// Year returns the range covering the whole calendar year containing d.
func Year(d Date) Range { return Range{From: d.StartOfYear(), To: d.EndOfYear()} }

// Contains reports whether d falls within the range, boundaries included.
func (r Range) Contains(d Date) bool { return !d.Before(r.From) && !d.After(r.To) }

// String formats the range in its standard "from..to" form.
func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
