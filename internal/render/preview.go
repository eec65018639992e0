package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/username/highlight-calendar/internal/calendar"
)

const previewCellWidth = 4

// Preview prints month grids as text. Circle highlights colour the number,
// rectangle highlights colour the cell background. Colours are dropped when
// w is not a terminal.
func Preview(w io.Writer, grids []calendar.MonthGrid) error {
	r := lipgloss.NewRenderer(w)

	title := r.NewStyle().
		Bold(true).
		Width(previewCellWidth * calendar.GridColumns).
		Align(lipgloss.Center).
		Foreground(lipgloss.Color(headerColour.Hex()))
	weekday := r.NewStyle().
		Italic(true).
		Width(previewCellWidth).
		Align(lipgloss.Right)
	day := r.NewStyle().
		Width(previewCellWidth).
		Align(lipgloss.Right)

	for i, grid := range grids {
		var b strings.Builder
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(title.Render(grid.Title()))
		b.WriteString("\n")

		for _, label := range weekdayLabels {
			b.WriteString(weekday.Render(label))
		}
		b.WriteString("\n")

		for row := 0; row < grid.Weeks(); row++ {
			for _, cell := range grid.Cells[row] {
				if cell.Blank() {
					b.WriteString(strings.Repeat(" ", previewCellWidth))
					continue
				}
				b.WriteString(highlightStyle(day, cell.Highlight).Render(strconv.Itoa(cell.Day)))
			}
			b.WriteString("\n")
		}

		if _, err := fmt.Fprint(w, b.String()); err != nil {
			return fmt.Errorf("failed to write preview: %w", err)
		}
	}
	return nil
}

func highlightStyle(base lipgloss.Style, h *calendar.Highlight) lipgloss.Style {
	if h == nil {
		return base
	}
	colour := lipgloss.Color(h.Colour.Hex())
	switch h.Shape {
	case calendar.ShapeRectangle:
		return base.
			Background(colour).
			Foreground(lipgloss.Color(contrastText(h.Colour).Hex()))
	default:
		return base.Bold(true).Foreground(colour)
	}
}
