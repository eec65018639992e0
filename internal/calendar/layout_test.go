package calendar

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/highlight-calendar/pkg/dateutil"
)

func entry(year int, month time.Month, day int, highlight string) DateEntry {
	d := dateutil.Date{Year: year, Month: month, Day: day}
	return DateEntry{Date: d, Label: dateutil.WeekdayLabel(d.Weekday()), Highlight: highlight}
}

var testStyles = Styles{
	"sick":    {Name: "sick", Shape: ShapeRectangle, Colour: Colour{255, 0, 0}},
	"vaccine": {Name: "vaccine", Shape: ShapeCircle, Colour: Colour{0, 0, 255}},
}

func TestMonthGridCellsAreConsecutive(t *testing.T) {
	for year := 1999; year <= 2025; year++ {
		for month := time.January; month <= time.December; month++ {
			grid := newMonthGrid(year, month, nil, nil)
			want := dateutil.DaysIn(year, month)

			days := grid.Days()
			require.Len(t, days, want, "%d-%02d", year, month)
			for i, c := range days {
				require.Equal(t, i+1, c.Day, "%d-%02d position %d", year, month, i)
			}

			// Every cell beyond the used weeks stays blank
			nonBlank := 0
			for _, row := range grid.Cells {
				for _, c := range row {
					if !c.Blank() {
						nonBlank++
					}
				}
			}
			require.Equal(t, want, nonBlank)
		}
	}
}

func TestMonthGridPlacement(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		firstCol  int
		wantWeeks int
	}{
		{"February 2021 starts Monday, four weeks", 2021, time.February, 0, 4},
		{"February 2022 starts Tuesday", 2022, time.February, 1, 5},
		{"January 2023 starts Sunday", 2023, time.January, 6, 6},
		{"May 2021 starts Saturday", 2021, time.May, 5, 6},
		{"October 2023 starts Sunday", 2023, time.October, 6, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := newMonthGrid(tt.year, tt.month, nil, nil)

			assert.Equal(t, 1, grid.Cells[0][tt.firstCol].Day)
			for col := 0; col < tt.firstCol; col++ {
				assert.True(t, grid.Cells[0][col].Blank(), "column %d should be blank", col)
			}
			assert.Equal(t, tt.wantWeeks, grid.Weeks())
		})
	}
}

func TestMonthGridColumnMatchesWeekday(t *testing.T) {
	grid := newMonthGrid(2024, time.February, nil, nil)

	for r := 0; r < grid.Weeks(); r++ {
		for col, c := range grid.Cells[r] {
			if c.Blank() {
				continue
			}
			d := dateutil.Date{Year: 2024, Month: time.February, Day: c.Day}
			assert.Equal(t, dateutil.MondayIndex(d.Weekday()), col, "day %d", c.Day)
		}
	}
}

func TestLayoutGroupsAndOrdersMonths(t *testing.T) {
	entries := []DateEntry{
		entry(2024, time.January, 3, "vaccine"),
		entry(2023, time.December, 31, "sick"),
		entry(2023, time.February, 1, ""),
		entry(2024, time.January, 1, ""),
	}

	grids, err := Layout(entries, testStyles)
	require.NoError(t, err)

	require.Len(t, grids, 3)
	assert.Equal(t, "February 2023", grids[0].Title())
	assert.Equal(t, "December 2023", grids[1].Title())
	assert.Equal(t, "January 2024", grids[2].Title())
}

func TestLayoutResolvesHighlights(t *testing.T) {
	entries := []DateEntry{
		entry(2023, time.January, 29, ""),
		entry(2023, time.January, 30, "sick"),
		entry(2023, time.January, 31, "vaccine"),
	}

	grids, err := Layout(entries, testStyles)
	require.NoError(t, err)
	require.Len(t, grids, 1)

	days := grids[0].Days()
	// Days without an entry are plain numbered days
	assert.Nil(t, days[0].Highlight)
	assert.Nil(t, days[28].Highlight)

	require.NotNil(t, days[29].Highlight)
	assert.Equal(t, ShapeRectangle, days[29].Highlight.Shape)
	require.NotNil(t, days[30].Highlight)
	assert.Equal(t, "vaccine", days[30].Highlight.Name)
}

func TestLayoutIsDeterministic(t *testing.T) {
	var entries []DateEntry
	seq, err := dateutil.GenerateRange(
		dateutil.Date{Year: 2023, Month: time.November, Day: 15},
		dateutil.Date{Year: 2024, Month: time.March, Day: 10})
	require.NoError(t, err)
	i := 0
	for d := range seq {
		name := ""
		switch i % 3 {
		case 1:
			name = "sick"
		case 2:
			name = "vaccine"
		}
		entries = append(entries, entry(d.Date.Year, d.Date.Month, d.Date.Day, name))
		i++
	}

	want, err := Layout(entries, testStyles)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	for n := 0; n < 10; n++ {
		shuffled := make([]DateEntry, len(entries))
		copy(shuffled, entries)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

		got, err := Layout(shuffled, testStyles)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestLayoutErrors(t *testing.T) {
	t.Run("Unknown highlight", func(t *testing.T) {
		_, err := Layout([]DateEntry{entry(2023, time.January, 1, "missing")}, testStyles)

		var unknown *UnknownHighlightError
		require.ErrorAs(t, err, &unknown)
		assert.Equal(t, "missing", unknown.Name)
	})

	t.Run("Duplicate date", func(t *testing.T) {
		_, err := Layout([]DateEntry{
			entry(2023, time.January, 1, ""),
			entry(2023, time.January, 1, "sick"),
		}, testStyles)

		var dup *DuplicateDateError
		assert.ErrorAs(t, err, &dup)
	})

	t.Run("Weekday mismatch", func(t *testing.T) {
		e := entry(2022, time.February, 1, "")
		e.Label = "Wed"
		_, err := Layout([]DateEntry{e}, testStyles)

		var mismatch *WeekdayMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, time.Tuesday, mismatch.Actual)
	})
}

func TestCalendarMonthGridFor(t *testing.T) {
	cal := &Calendar{
		Styles:  testStyles,
		Entries: []DateEntry{entry(2023, time.March, 8, "vaccine")},
	}

	march, err := cal.MonthGridFor(2023, time.March)
	require.NoError(t, err)
	assert.Equal(t, "vaccine", march.Days()[7].Highlight.Name)

	april, err := cal.MonthGridFor(2023, time.April)
	require.NoError(t, err)
	assert.Len(t, april.Days(), 30)
	for _, c := range april.Days() {
		assert.Nil(t, c.Highlight)
	}
}

func TestCalendarMonthGridForUnknownHighlight(t *testing.T) {
	cal := &Calendar{
		Styles:  testStyles,
		Entries: []DateEntry{entry(2023, time.March, 8, "missing")},
	}

	_, err := cal.MonthGridFor(2023, time.March)

	var unknown *UnknownHighlightError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "missing", unknown.Name)

	// Other months do not see the bad entry
	_, err = cal.MonthGridFor(2023, time.April)
	assert.NoError(t, err)
}
