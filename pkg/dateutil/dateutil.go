package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the only accepted textual form of a date
const DateLayout = "2006-01-02"

// Date is a civil date in the proleptic Gregorian calendar (no time, no zone)
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate creates a Date and reports whether it exists in the calendar
func NewDate(year int, month time.Month, day int) (Date, bool) {
	d := Date{Year: year, Month: month, Day: day}
	if month < time.January || month > time.December {
		return d, false
	}
	if day < 1 || day > DaysIn(year, month) {
		return d, false
	}
	return d, true
}

// ParseDate parses a YYYY-MM-DD token
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, &MalformedDateError{Input: s, Err: err}
	}
	return FromTime(t), nil
}

// FromTime drops the clock and zone of t
func FromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Time returns midnight UTC of the date
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String formats the date as YYYY-MM-DD
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Before reports whether d is chronologically before other
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// Next returns the following day
func (d Date) Next() Date {
	if d.Day < DaysIn(d.Year, d.Month) {
		return Date{Year: d.Year, Month: d.Month, Day: d.Day + 1}
	}
	if d.Month < time.December {
		return Date{Year: d.Year, Month: d.Month + 1, Day: 1}
	}
	return Date{Year: d.Year + 1, Month: time.January, Day: 1}
}

// Weekday returns the day of the week of d.
// UTC midnight keeps the result independent of the local zone.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// MondayIndex returns the weekday as a column index, Monday = 0 .. Sunday = 6
func MondayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}

// IsLeapYear reports whether year has a February 29th
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in the given month
func DaysIn(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// WeekdayLabel returns the three-letter label used in calendar files (Mon..Sun)
func WeekdayLabel(w time.Weekday) string {
	return w.String()[:3]
}

// ParseWeekday accepts a three-letter or full English weekday name, any case
func ParseWeekday(label string) (time.Weekday, bool) {
	label = strings.ToLower(strings.TrimSpace(label))
	for w := time.Sunday; w <= time.Saturday; w++ {
		full := strings.ToLower(w.String())
		if label == full || label == full[:3] {
			return w, true
		}
	}
	return 0, false
}
