package calendar

import (
	"sort"

	"github.com/username/highlight-calendar/pkg/dateutil"
)

// DateEntry represents one line of the [data] table
type DateEntry struct {
	Date      dateutil.Date
	Label     string // weekday label as written in the file, e.g. "Sun"
	Highlight string // empty means no highlight
}

// Calendar is the validated in-memory form of a calendar file
type Calendar struct {
	Styles  Styles
	Entries []DateEntry // sorted by date
}

// Span returns the first and last entry dates
func (c *Calendar) Span() (first, last dateutil.Date) {
	if len(c.Entries) == 0 {
		return
	}
	return c.Entries[0].Date, c.Entries[len(c.Entries)-1].Date
}

// Years returns the distinct years covered by the entries, ascending
func (c *Calendar) Years() []int {
	seen := make(map[int]bool)
	var years []int
	for _, e := range c.Entries {
		if !seen[e.Date.Year] {
			seen[e.Date.Year] = true
			years = append(years, e.Date.Year)
		}
	}
	sort.Ints(years)
	return years
}

// Layout lays out the calendar's entries into month grids
func (c *Calendar) Layout() ([]MonthGrid, error) {
	return Layout(c.Entries, c.Styles)
}

func sortEntries(entries []DateEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.Before(entries[j].Date)
	})
}
