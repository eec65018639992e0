package calendar

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/username/highlight-calendar/pkg/dateutil"
	"go.uber.org/zap"
)

// Loader reads a calendar file from disk
type Loader struct {
	filePath string
	logger   *zap.Logger
}

// NewLoader creates a new Loader instance
func NewLoader(filePath string, logger *zap.Logger) *Loader {
	return &Loader{
		filePath: filePath,
		logger:   logger,
	}
}

// Load reads, parses and validates the calendar file
func (l *Loader) Load() (*Calendar, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read calendar file: %w", err)
	}

	cal, err := Parse(bytes.NewReader(data))
	if err != nil {
		var parseErr *ConfigParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = l.filePath
		}
		return nil, err
	}

	first, last := cal.Span()
	l.logger.Info("Calendar file loaded",
		zap.String("file", l.filePath),
		zap.Int("highlights", len(cal.Styles)),
		zap.Int("entries", len(cal.Entries)),
		zap.Stringer("first", first),
		zap.Stringer("last", last))

	return cal, nil
}

// file mirrors the TOML document before validation
type file struct {
	Highlights map[string]highlightSpec `toml:"highlights"`
	Data       map[string]any           `toml:"data"`
	Render     map[string]any           `toml:"render"` // runtime settings, read by internal/config
	Log        map[string]any           `toml:"log"`
}

type highlightSpec struct {
	Shape  string `toml:"shape"`
	Colour any    `toml:"colour"`
	Color  any    `toml:"color"`
}

type rawEntry struct {
	key       string
	date      string
	label     string
	highlight string
}

// Parse decodes a calendar document and validates it in one pass.
// The first problem found is returned; keys are visited in sorted order
// so the same file always reports the same error.
func Parse(r io.Reader) (*Calendar, error) {
	var doc file
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, &ConfigParseError{Err: err}
	}

	styles, err := parseHighlights(doc.Highlights)
	if err != nil {
		return nil, err
	}

	raw, err := flattenData(doc.Data)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, &ConfigParseError{Key: "data", Err: fmt.Errorf("no entries found")}
	}

	entries := make([]DateEntry, 0, len(raw))
	for _, re := range raw {
		date, err := dateutil.ParseDate(re.date)
		if err != nil {
			return nil, err
		}
		entries = append(entries, DateEntry{
			Date:      date,
			Label:     re.label,
			Highlight: re.highlight,
		})
	}

	if err := validateEntries(entries, styles); err != nil {
		return nil, err
	}

	sortEntries(entries)
	return &Calendar{Styles: styles, Entries: entries}, nil
}

func parseHighlights(specs map[string]highlightSpec) (Styles, error) {
	styles := make(Styles, len(specs))
	for _, name := range sortedKeys(specs) {
		spec := specs[name]
		key := "highlights." + name

		shape, err := ParseShape(spec.Shape)
		if err != nil {
			return nil, &ConfigParseError{Key: key, Err: err}
		}

		colourValue := spec.Colour
		if colourValue == nil {
			colourValue = spec.Color
		} else if spec.Color != nil {
			return nil, &ConfigParseError{Key: key, Err: fmt.Errorf("both colour and color are set")}
		}
		colour, err := ParseColour(colourValue)
		if err != nil {
			return nil, &ConfigParseError{Key: key, Err: err}
		}

		styles[name] = Highlight{Name: name, Shape: shape, Colour: colour}
	}
	return styles, nil
}

// flattenData accepts both the dotted form (2023-01-29.Sun = "x", which TOML
// decodes as a nested table) and the quoted form ("2023-01-29.Sun" = "x").
func flattenData(data map[string]any) ([]rawEntry, error) {
	var entries []rawEntry
	for _, key := range sortedKeys(data) {
		switch v := data[key].(type) {
		case string:
			date, label, ok := strings.Cut(key, ".")
			if !ok {
				return nil, &ConfigParseError{Key: "data." + key, Err: fmt.Errorf("key must be YYYY-MM-DD.Weekday")}
			}
			entries = append(entries, rawEntry{key: key, date: date, label: label, highlight: v})
		case map[string]any:
			for _, label := range sortedKeys(v) {
				name, ok := v[label].(string)
				if !ok {
					return nil, &ConfigParseError{
						Key: fmt.Sprintf("data.%s.%s", key, label),
						Err: fmt.Errorf("value must be a highlight name or \"\""),
					}
				}
				entries = append(entries, rawEntry{key: key + "." + label, date: key, label: label, highlight: name})
			}
		default:
			return nil, &ConfigParseError{Key: "data." + key, Err: fmt.Errorf("value must be a highlight name or \"\"")}
		}
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	return entries, nil
}

// validateEntries checks every date and every duplicate before any weekday
// or highlight, so one date written under two labels is reported as a
// duplicate whichever label sorts first.
func validateEntries(entries []DateEntry, styles Styles) error {
	seen := make(map[dateutil.Date]string, len(entries))
	for _, e := range entries {
		if _, ok := dateutil.NewDate(e.Date.Year, e.Date.Month, e.Date.Day); !ok {
			return &dateutil.MalformedDateError{Input: e.Date.String(), Err: fmt.Errorf("no such day")}
		}

		key := e.Date.String() + "." + e.Label
		if first, dup := seen[e.Date]; dup {
			return &DuplicateDateError{Date: e.Date, First: first, Second: key}
		}
		seen[e.Date] = key
	}

	for _, e := range entries {
		actual := e.Date.Weekday()
		if w, ok := dateutil.ParseWeekday(e.Label); !ok || w != actual {
			return &WeekdayMismatchError{Date: e.Date, Label: e.Label, Actual: actual}
		}

		if _, ok := styles.Lookup(e.Highlight); !ok {
			return &UnknownHighlightError{Date: e.Date, Name: e.Highlight}
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
