package date

import "time"

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange returns the range [from, to]. Both boundaries are included.
func NewRange(from, to Date) Range { return Range{From: from, To: to} }

// MonthRange returns the range covering the full calendar month.
func MonthRange(year int, month time.Month) Range {
	first := New(year, month, 1)
	return Range{From: first, To: first.AddMonths(1).Add(-1)}
}

// Contains reports whether d is included in the range (boundaries included).
func (r Range) Contains(d Date) bool { return !d.Before(r.From) && !d.After(r.To) }

// IsValid reports whether From does not come after To.
func (r Range) IsValid() bool { return !r.From.After(r.To) }

// String formats the range as "from - to".
func (r Range) String() string { return r.From.String() + " - " + r.To.String() }
