package render

import (
	"math"
	"strconv"
	"time"

	"github.com/username/highlight-calendar/internal/calendar"
)

// surface is the part of *fpdf.Fpdf the page layouts draw with
type surface interface {
	AddPage()
	GetPageSize() (width, height float64)
	SetFont(familyStr, styleStr string, size float64)
	SetTextColor(r, g, b int)
	SetFillColor(r, g, b int)
	SetDrawColor(r, g, b int)
	SetLineWidth(width float64)
	Rect(x, y, w, h float64, styleStr string)
	Circle(x, y, r float64, styleStr string)
	Line(x1, y1, x2, y2 float64)
	SetXY(x, y float64)
	CellFormat(w, h float64, txtStr, borderStr string, ln int, alignStr string, fill bool, link int, linkStr string)
}

const fontFamily = "Helvetica"

var (
	headerColour = calendar.Colour{R: 46, G: 117, B: 181}
	ruleColour   = calendar.Colour{R: 200, G: 200, B: 200}
	black        = calendar.Colour{}
	white        = calendar.Colour{R: 255, G: 255, B: 255}

	weekdayLabels = [calendar.GridColumns]string{"M", "T", "W", "T", "F", "S", "S"}
)

type box struct {
	x, y, w, h float64
}

// monthStyle holds font sizes in points and band heights in mm
type monthStyle struct {
	headerFont    float64
	headerHeight  float64
	weekdayFont   float64
	weekdayHeight float64
	dayFont       float64
}

var (
	fullPageMonth = monthStyle{headerFont: 20, headerHeight: 14, weekdayFont: 14, weekdayHeight: 12, dayFont: 18}
	yearPageMonth = monthStyle{headerFont: 11, headerHeight: 6, weekdayFont: 8, weekdayHeight: 5, dayFont: 8}
)

func drawMonthPage(s surface, grid calendar.MonthGrid) {
	s.AddPage()
	pageW, pageH := s.GetPageSize()

	margin := 15.0
	drawMonth(s, grid, box{x: margin, y: margin, w: pageW - 2*margin, h: pageH - 2*margin}, fullPageMonth)
}

// drawYearPage draws the twelve months of year in four rows of three
func drawYearPage(s surface, cal *calendar.Calendar, year int) error {
	s.AddPage()
	pageW, pageH := s.GetPageSize()

	titleHeight := 24.0
	s.SetFont(fontFamily, "B", 36)
	setTextColour(s, black)
	s.SetXY(0, 8)
	s.CellFormat(pageW, titleHeight, strconv.Itoa(year), "", 0, "CM", false, 0, "")

	xMargin, xSep, yMargin := 10.0, 10.0, 10.0
	top := 8 + titleHeight + yMargin
	colW := (pageW - 2*xMargin - 2*xSep) / 3
	rowH := (pageH - top - yMargin) / 4

	for i := 0; i < 12; i++ {
		row, col := i/3, i%3
		grid, err := cal.MonthGridFor(year, time.Month(i+1))
		if err != nil {
			return err
		}
		b := box{
			x: xMargin + float64(col)*(colW+xSep),
			y: top + float64(row)*rowH,
			w: colW,
			h: rowH - yMargin/2,
		}
		drawMonth(s, grid, b, yearPageMonth)
	}
	return nil
}

// drawMonth draws a header band, weekday initials and a fixed 6-row grid
// into b.
func drawMonth(s surface, grid calendar.MonthGrid, b box, st monthStyle) {
	setFillColour(s, headerColour)
	s.Rect(b.x, b.y, b.w, st.headerHeight, "F")
	s.SetFont(fontFamily, "B", st.headerFont)
	setTextColour(s, white)
	s.SetXY(b.x, b.y)
	s.CellFormat(b.w, st.headerHeight, grid.Title(), "", 0, "CM", false, 0, "")

	cellW := b.w / calendar.GridColumns
	y := b.y + st.headerHeight

	s.SetFont(fontFamily, "I", st.weekdayFont)
	setTextColour(s, black)
	for col, label := range weekdayLabels {
		s.SetXY(b.x+float64(col)*cellW, y)
		s.CellFormat(cellW, st.weekdayHeight, label, "", 0, "CM", false, 0, "")
	}
	y += st.weekdayHeight

	setDrawColour(s, ruleColour)
	s.SetLineWidth(0.2)
	s.Line(b.x, y, b.x+b.w, y)

	cellH := (b.y + b.h - y) / calendar.GridRows
	s.SetFont(fontFamily, "", st.dayFont)
	for row := 0; row < grid.Weeks(); row++ {
		for col, cell := range grid.Cells[row] {
			if cell.Blank() {
				continue
			}
			drawDay(s, cell, box{x: b.x + float64(col)*cellW, y: y + float64(row)*cellH, w: cellW, h: cellH})
		}
	}
}

func drawDay(s surface, cell calendar.Cell, b box) {
	text := black
	if h := cell.Highlight; h != nil {
		setFillColour(s, h.Colour)
		switch h.Shape {
		case calendar.ShapeCircle:
			s.Circle(b.x+b.w/2, b.y+b.h/2, circleRadius(b), "F")
		case calendar.ShapeRectangle:
			// 0.1mm overlap avoids hairline gaps between neighbouring boxes
			s.Rect(b.x, b.y, b.w+0.1, b.h+0.1, "F")
		}
		text = contrastText(h.Colour)
	}

	setTextColour(s, text)
	s.SetXY(b.x, b.y)
	s.CellFormat(b.w, b.h, strconv.Itoa(cell.Day), "", 0, "CM", false, 0, "")
}

func circleRadius(b box) float64 {
	return math.Min(b.w, b.h) * 0.4
}

// contrastText picks black or white text for a filled background
func contrastText(bg calendar.Colour) calendar.Colour {
	luma := 0.299*float64(bg.R) + 0.587*float64(bg.G) + 0.114*float64(bg.B)
	if luma < 128 {
		return white
	}
	return black
}

func setFillColour(s surface, c calendar.Colour) {
	s.SetFillColor(int(c.R), int(c.G), int(c.B))
}

func setTextColour(s surface, c calendar.Colour) {
	s.SetTextColor(int(c.R), int(c.G), int(c.B))
}

func setDrawColour(s surface, c calendar.Colour) {
	s.SetDrawColor(int(c.R), int(c.G), int(c.B))
}
