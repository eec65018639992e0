package dateutil

import "fmt"

// MalformedDateError is returned when a date token cannot be parsed
type MalformedDateError struct {
	Input string
	Err   error
}

func (e *MalformedDateError) Error() string {
	return fmt.Sprintf("malformed date %q: expected YYYY-MM-DD", e.Input)
}

func (e *MalformedDateError) Unwrap() error {
	return e.Err
}

// InvalidRangeError is returned when a range ends before it starts
type InvalidRangeError struct {
	Start Date
	End   Date
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range: end %s is before start %s", e.End, e.Start)
}
