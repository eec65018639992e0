package calendar

import (
	"strconv"
	"time"

	"github.com/username/highlight-calendar/pkg/dateutil"
)

const (
	GridRows    = 6
	GridColumns = 7
)

// Cell is one position of a month grid. Day is zero for positions that
// belong to the previous or next month.
type Cell struct {
	Day       int
	Highlight *Highlight
}

// Blank reports whether the cell is outside the month
func (c Cell) Blank() bool {
	return c.Day == 0
}

// MonthGrid is a month laid out in rows of weeks, Monday in column 0.
// Day 1 is always in row 0.
type MonthGrid struct {
	Year  int
	Month time.Month
	Cells [GridRows][GridColumns]Cell
	weeks int
}

// Weeks returns the number of rows that contain at least one day
func (g MonthGrid) Weeks() int {
	return g.weeks
}

// Title returns e.g. "January 2023"
func (g MonthGrid) Title() string {
	return g.Month.String() + " " + strconv.Itoa(g.Year)
}

// Days returns the non-blank cells in row-major order
func (g MonthGrid) Days() []Cell {
	days := make([]Cell, 0, 31)
	for r := 0; r < g.weeks; r++ {
		for _, c := range g.Cells[r] {
			if !c.Blank() {
				days = append(days, c)
			}
		}
	}
	return days
}

type monthKey struct {
	year  int
	month time.Month
}

// Layout groups entries by month and lays out one grid per month, ordered
// chronologically. The order of entries does not affect the result.
func Layout(entries []DateEntry, styles Styles) ([]MonthGrid, error) {
	sorted := make([]DateEntry, len(entries))
	copy(sorted, entries)
	sortEntries(sorted)

	if err := validateEntries(sorted, styles); err != nil {
		return nil, err
	}

	byDate := make(map[dateutil.Date]string, len(sorted))
	var months []monthKey
	for _, e := range sorted {
		byDate[e.Date] = e.Highlight
		key := monthKey{e.Date.Year, e.Date.Month}
		if len(months) == 0 || months[len(months)-1] != key {
			months = append(months, key)
		}
	}

	grids := make([]MonthGrid, 0, len(months))
	for _, m := range months {
		grids = append(grids, newMonthGrid(m.year, m.month, byDate, styles))
	}
	return grids, nil
}

// MonthGridFor lays out any month of the calendar, including months
// without entries. The month's entries are validated like in Layout.
func (c *Calendar) MonthGridFor(year int, month time.Month) (MonthGrid, error) {
	var entries []DateEntry
	for _, e := range c.Entries {
		if e.Date.Year == year && e.Date.Month == month {
			entries = append(entries, e)
		}
	}
	sortEntries(entries)
	if err := validateEntries(entries, c.Styles); err != nil {
		return MonthGrid{}, err
	}

	byDate := make(map[dateutil.Date]string, len(entries))
	for _, e := range entries {
		byDate[e.Date] = e.Highlight
	}
	return newMonthGrid(year, month, byDate, c.Styles), nil
}

// newMonthGrid expects highlight names that were already validated
func newMonthGrid(year int, month time.Month, highlights map[dateutil.Date]string, styles Styles) MonthGrid {
	grid := MonthGrid{Year: year, Month: month}

	first := dateutil.Date{Year: year, Month: month, Day: 1}
	offset := dateutil.MondayIndex(first.Weekday())
	days := dateutil.DaysIn(year, month)

	for day := 1; day <= days; day++ {
		pos := offset + day - 1
		row, col := pos/GridColumns, pos%GridColumns

		cell := Cell{Day: day}
		date := dateutil.Date{Year: year, Month: month, Day: day}
		if name, ok := highlights[date]; ok {
			cell.Highlight, _ = styles.Lookup(name)
		}
		grid.Cells[row][col] = cell
	}

	grid.weeks = (offset + days + GridColumns - 1) / GridColumns
	return grid
}
