package calendar

import (
	"fmt"
	"time"

	"github.com/username/highlight-calendar/pkg/dateutil"
)

// ConfigParseError reports a calendar file that is not well-formed
type ConfigParseError struct {
	Path string
	Key  string
	Err  error
}

func (e *ConfigParseError) Error() string {
	msg := "invalid calendar file"
	if e.Path != "" {
		msg = fmt.Sprintf("invalid calendar file %s", e.Path)
	}
	if e.Key != "" {
		msg += fmt.Sprintf(" at %s", e.Key)
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *ConfigParseError) Unwrap() error {
	return e.Err
}

// UnknownHighlightError reports a date referencing a highlight that is not defined
type UnknownHighlightError struct {
	Date dateutil.Date
	Name string
}

func (e *UnknownHighlightError) Error() string {
	return fmt.Sprintf("%s: unknown highlight %q", e.Date, e.Name)
}

// DuplicateDateError reports a date that appears more than once
type DuplicateDateError struct {
	Date   dateutil.Date
	First  string
	Second string
}

func (e *DuplicateDateError) Error() string {
	if e.First == "" || e.Second == "" {
		return fmt.Sprintf("duplicate date %s", e.Date)
	}
	return fmt.Sprintf("duplicate date %s: %q and %q", e.Date, e.First, e.Second)
}

// WeekdayMismatchError reports a weekday label that does not match its date
type WeekdayMismatchError struct {
	Date   dateutil.Date
	Label  string
	Actual time.Weekday
}

func (e *WeekdayMismatchError) Error() string {
	return fmt.Sprintf("%s is a %s, not %q", e.Date, e.Actual, e.Label)
}
