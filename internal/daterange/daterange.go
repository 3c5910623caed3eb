package daterange

import (
	"time"
)

// DateFormat is the date layout the exporter expects for both arguments (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// Range is a one-day export window. End is always exactly one calendar day
// after Start, both at local midnight.
type Range struct {
	Start time.Time
	End   time.Time
}

// DayEndingAt returns the one-day range ending on the calendar day of t,
// in t's location. The clock portion of t is discarded so that any instant
// within a day yields the same range.
func DayEndingAt(t time.Time) Range {
	end := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return Range{
		Start: end.AddDate(0, 0, -1),
		End:   end,
	}
}

// StartString returns the range start formatted for the exporter.
func (r Range) StartString() string {
	return r.Start.Format(DateFormat)
}

// EndString returns the range end formatted for the exporter.
func (r Range) EndString() string {
	return r.End.Format(DateFormat)
}
