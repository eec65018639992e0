package dateutil

import (
	"errors"
	"testing"
	"time"
)

func collect(t *testing.T, start, end Date) []Day {
	t.Helper()

	seq, err := GenerateRange(start, end)
	if err != nil {
		t.Fatalf("GenerateRange(%v, %v) error = %v", start, end, err)
	}

	var days []Day
	for d := range seq {
		days = append(days, d)
	}
	return days
}

func TestGenerateRangeSingleDay(t *testing.T) {
	d := Date{2022, time.February, 1}
	days := collect(t, d, d)

	if len(days) != 1 {
		t.Fatalf("GenerateRange(d, d) returned %d days, want 1", len(days))
	}
	if days[0].Date != d || days[0].Weekday != d.Weekday() {
		t.Errorf("GenerateRange(d, d)[0] = %+v, want (%v, %v)", days[0], d, d.Weekday())
	}
}

func TestGenerateRangeWeek(t *testing.T) {
	days := collect(t, Date{2023, time.January, 29}, Date{2023, time.February, 4})

	if len(days) != 7 {
		t.Fatalf("GenerateRange returned %d days, want 7", len(days))
	}
	if got := days[0].Key(); got != "2023-01-29.Sun" {
		t.Errorf("first key = %q, want %q", got, "2023-01-29.Sun")
	}
	if got := days[6].Key(); got != "2023-02-04.Sat" {
		t.Errorf("last key = %q, want %q", got, "2023-02-04.Sat")
	}
	for i := 1; i < len(days); i++ {
		if !days[i-1].Date.Before(days[i].Date) {
			t.Errorf("days not ascending at %d: %v then %v", i, days[i-1].Date, days[i].Date)
		}
	}
}

func TestGenerateRangeIsRestartable(t *testing.T) {
	seq, err := GenerateRange(Date{2024, time.February, 27}, Date{2024, time.March, 2})
	if err != nil {
		t.Fatalf("GenerateRange() error = %v", err)
	}

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}

	first, second := count(), count()
	if first != 5 || second != 5 {
		t.Errorf("iterations returned %d and %d days, want 5 and 5", first, second)
	}
}

func TestGenerateRangeStopsEarly(t *testing.T) {
	seq, err := GenerateRange(Date{2023, time.January, 1}, Date{2023, time.December, 31})
	if err != nil {
		t.Fatalf("GenerateRange() error = %v", err)
	}

	n := 0
	for range seq {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("consumed %d days, want 3", n)
	}
}

func TestGenerateRangeInvalid(t *testing.T) {
	_, err := GenerateRange(Date{2023, time.February, 4}, Date{2023, time.January, 29})

	var invalid *InvalidRangeError
	if !errors.As(err, &invalid) {
		t.Fatalf("GenerateRange(end, start) error = %v, want *InvalidRangeError", err)
	}
}

func TestGenerateRangeWeekdayConsistency(t *testing.T) {
	// Every generated weekday must agree with the time package across a
	// few centuries, including the 1900 and 2000 century years.
	days := collect(t, Date{1899, time.December, 25}, Date{2101, time.January, 7})

	for _, d := range days {
		want := time.Date(d.Date.Year, d.Date.Month, d.Date.Day, 12, 0, 0, 0, time.UTC).Weekday()
		if d.Weekday != want || d.Date.Weekday() != want {
			t.Fatalf("weekday of %v = %v, want %v", d.Date, d.Weekday, want)
		}
	}
}

func TestDayEntry(t *testing.T) {
	d := Day{Date: Date{2023, time.January, 29}, Weekday: time.Sunday}

	want := `2023-01-29.Sun = ""`
	if got := d.Entry(); got != want {
		t.Errorf("Entry() = %q, want %q", got, want)
	}
}
