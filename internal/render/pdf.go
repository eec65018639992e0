package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/username/highlight-calendar/internal/calendar"
	"go.uber.org/zap"
)

const (
	LayoutMonth = "month"
	LayoutYear  = "year"
)

// Layouts lists the accepted page layouts
var Layouts = []string{LayoutMonth, LayoutYear}

// Options controls the document produced by PDFRenderer
type Options struct {
	Title    string
	Layout   string // LayoutMonth or LayoutYear
	PageSize string // A3, A4, A5, Letter or Legal

	// CreatedAt is written as both the creation and modification date. It is
	// fixed so that rendering the same calendar twice gives the same bytes.
	CreatedAt time.Time
}

// Progress receives one Add(1) per finished page
type Progress interface {
	Add(num int) error
}

// PDFRenderer draws calendars into PDF documents
type PDFRenderer struct {
	opts     Options
	progress Progress
	logger   *zap.Logger
}

// NewPDFRenderer creates a new PDFRenderer
func NewPDFRenderer(opts Options, logger *zap.Logger) *PDFRenderer {
	if opts.Layout == "" {
		opts.Layout = LayoutMonth
	}
	if opts.PageSize == "" {
		opts.PageSize = "A4"
	}
	if opts.CreatedAt.IsZero() {
		opts.CreatedAt = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return &PDFRenderer{
		opts:   opts,
		logger: logger,
	}
}

// SetProgress installs a page progress reporter
func (r *PDFRenderer) SetProgress(p Progress) {
	r.progress = p
}

// PageCount returns the number of pages Render will produce
func (r *PDFRenderer) PageCount(cal *calendar.Calendar) (int, error) {
	if r.opts.Layout == LayoutYear {
		return len(cal.Years()), nil
	}
	grids, err := cal.Layout()
	if err != nil {
		return 0, err
	}
	return len(grids), nil
}

// Render writes the whole document to w and returns the page count
func (r *PDFRenderer) Render(cal *calendar.Calendar, w io.Writer) (int, error) {
	doc := r.newDocument()

	pages, err := r.draw(doc, cal)
	if err != nil {
		return 0, err
	}

	if err := doc.Output(w); err != nil {
		return 0, fmt.Errorf("failed to write PDF: %w", err)
	}
	return pages, nil
}

// RenderFile renders into path. The file is created only once the document
// has been drawn and is removed again if writing fails.
func (r *PDFRenderer) RenderFile(cal *calendar.Calendar, path string) (err error) {
	doc := r.newDocument()

	pages, err := r.draw(doc, cal)
	if err != nil {
		return err
	}
	if doc.Err() {
		return fmt.Errorf("error generating PDF: %w", doc.Error())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	if err := doc.Output(f); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}

	r.logger.Info("Calendar written",
		zap.String("file", path),
		zap.String("layout", r.opts.Layout),
		zap.Int("pages", pages))

	return nil
}

func (r *PDFRenderer) newDocument() *fpdf.Fpdf {
	doc := fpdf.New("P", "mm", r.opts.PageSize, "")
	doc.SetAutoPageBreak(false, 0)
	doc.SetCatalogSort(true)
	doc.SetCreationDate(r.opts.CreatedAt)
	doc.SetModificationDate(r.opts.CreatedAt)
	doc.SetTitle(r.opts.Title, true)
	doc.SetCreator("highlight-calendar", true)
	return doc
}

func (r *PDFRenderer) draw(s surface, cal *calendar.Calendar) (int, error) {
	// Layout validates the entries for both page layouts
	grids, err := cal.Layout()
	if err != nil {
		return 0, err
	}

	switch r.opts.Layout {
	case LayoutMonth:
		for _, grid := range grids {
			drawMonthPage(s, grid)
			r.pageDone(grid.Title())
		}
		return len(grids), nil

	case LayoutYear:
		years := cal.Years()
		for _, year := range years {
			if err := drawYearPage(s, cal, year); err != nil {
				return 0, err
			}
			r.pageDone(fmt.Sprint(year))
		}
		return len(years), nil

	default:
		return 0, errors.New("unknown layout " + r.opts.Layout)
	}
}

func (r *PDFRenderer) pageDone(title string) {
	r.logger.Debug("Page drawn", zap.String("page", title))
	if r.progress != nil {
		if err := r.progress.Add(1); err != nil {
			r.logger.Debug("Progress update failed", zap.Error(err))
		}
	}
}
