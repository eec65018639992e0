package calendar

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/image/colornames"
)

// Shape is the kind of mark drawn behind a day number
type Shape int

const (
	ShapeCircle Shape = iota + 1
	ShapeRectangle
)

// ParseShape parses a shape name from the calendar file
func ParseShape(s string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "circle":
		return ShapeCircle, nil
	case "rectangle", "rect":
		return ShapeRectangle, nil
	case "":
		return 0, fmt.Errorf("shape is required")
	default:
		return 0, fmt.Errorf("unknown shape %q, expected circle or rectangle", s)
	}
}

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeRectangle:
		return "rectangle"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Colour is an 8-bit RGB colour
type Colour struct {
	R, G, B uint8
}

// Hex returns the colour as #rrggbb
func (c Colour) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseColour accepts an [r, g, b] array, a "#rrggbb" string or an SVG colour name
func ParseColour(v any) (Colour, error) {
	switch v := v.(type) {
	case nil:
		return Colour{}, fmt.Errorf("colour is required")
	case string:
		return parseColourString(v)
	case []any:
		return parseColourArray(v)
	default:
		return Colour{}, fmt.Errorf("unsupported colour value %v", v)
	}
}

func parseColourString(s string) (Colour, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(s, "#") {
		raw, err := hex.DecodeString(s[1:])
		if err != nil || len(raw) != 3 {
			return Colour{}, fmt.Errorf("invalid hex colour %q, expected #rrggbb", s)
		}
		return Colour{R: raw[0], G: raw[1], B: raw[2]}, nil
	}

	named, ok := colornames.Map[s]
	if !ok {
		return Colour{}, fmt.Errorf("unknown colour name %q", s)
	}
	return Colour{R: named.R, G: named.G, B: named.B}, nil
}

func parseColourArray(parts []any) (Colour, error) {
	if len(parts) != 3 {
		return Colour{}, fmt.Errorf("colour must have 3 components, got %d", len(parts))
	}

	var rgb [3]uint8
	for i, p := range parts {
		var n int64
		switch p := p.(type) {
		case int64:
			n = p
		case float64:
			if p != float64(int64(p)) {
				return Colour{}, fmt.Errorf("colour component %v is not an integer", p)
			}
			n = int64(p)
		default:
			return Colour{}, fmt.Errorf("colour component %v is not a number", p)
		}
		if n < 0 || n > 255 {
			return Colour{}, fmt.Errorf("colour component %d out of range 0..255", n)
		}
		rgb[i] = uint8(n)
	}
	return Colour{R: rgb[0], G: rgb[1], B: rgb[2]}, nil
}

// Highlight is a named visual style applied to a day
type Highlight struct {
	Name   string
	Shape  Shape
	Colour Colour
}

// Styles maps highlight names to their style
type Styles map[string]Highlight

// Lookup resolves a highlight name. An empty name resolves to nil.
func (s Styles) Lookup(name string) (*Highlight, bool) {
	if name == "" {
		return nil, true
	}
	h, ok := s[name]
	if !ok {
		return nil, false
	}
	return &h, true
}
