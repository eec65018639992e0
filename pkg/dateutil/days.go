package dateutil

import (
	"fmt"
	"iter"
	"time"
)

// Day is one element of a generated range
type Day struct {
	Date    Date
	Weekday time.Weekday
}

// Key returns the calendar file key, e.g. 2023-01-29.Sun
func (d Day) Key() string {
	return d.Date.String() + "." + WeekdayLabel(d.Weekday)
}

// Entry returns the line as it appears under [data] in a calendar file
func (d Day) Entry() string {
	return fmt.Sprintf("%s = \"\"", d.Key())
}

// GenerateRange yields every day from start to end inclusive in ascending
// order. The returned sequence can be ranged over any number of times.
func GenerateRange(start, end Date) (iter.Seq[Day], error) {
	if end.Before(start) {
		return nil, &InvalidRangeError{Start: start, End: end}
	}

	return func(yield func(Day) bool) {
		for d := start; !end.Before(d); d = d.Next() {
			if !yield(Day{Date: d, Weekday: d.Weekday()}) {
				return
			}
		}
	}, nil
}
