package document

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/tripforge/tripforge-api/internal/types"
)

// RenderError is fatal for the request that triggered the render, surfaced
// as a 500 by the handler.
type RenderError struct {
	Err error
}

func (e *RenderError) Error() string { return fmt.Sprintf("pdf render failed: %v", e.Err) }
func (e *RenderError) Unwrap() error { return e.Err }

// Service renders an Itinerary into a downloadable PDF document.
type Service interface {
	RenderItinerary(itinerary *types.Itinerary) ([]byte, error)
}

type ServiceImpl struct {
	logger *slog.Logger
	// fontPath points at a TTF with CJK coverage. When absent the renderer
	// degrades to the Helvetica core font.
	fontPath string
}

func NewServiceImpl(fontPath string, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{logger: logger, fontPath: fontPath}
}

const (
	fontFamily   = "Itinerary"
	pageBreakY   = 250.0 // mm; beyond this a section starts on a new page
	sectionLimit = 215.0
)

// RenderItinerary lays out the plan on A4: title, summary rule, per-day
// activity blocks, hotel section, footer with page numbers. An itinerary with
// no destinations still renders; the trip section is simply empty.
func (s *ServiceImpl) RenderItinerary(itinerary *types.Itinerary) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AliasNbPages("")

	family := s.registerFont(pdf)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-14)
		pdf.SetFont(family, "", 8)
		pdf.SetTextColor(153, 153, 153)
		footer := fmt.Sprintf("AI-generated travel plan | %s | page %d/{nb}",
			time.Now().Format("2006-01-02 15:04"), pdf.PageNo())
		pdf.CellFormat(0, 8, footer, "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	// Title and summary line.
	pdf.SetFont(family, "B", 22)
	pdf.SetTextColor(102, 126, 234)
	pdf.MultiCell(0, 10, itinerary.Title, "", "C", false)
	pdf.Ln(2)

	pdf.SetFont(family, "", 11)
	pdf.SetTextColor(102, 102, 102)
	summary := fmt.Sprintf("%d days  |  %d destinations  |  %d travelers",
		itinerary.Summary.Days, itinerary.Summary.Destinations, itinerary.Summary.Travelers)
	pdf.CellFormat(0, 7, summary, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetDrawColor(102, 126, 234)
	pdf.SetLineWidth(0.6)
	pdf.Line(18, pdf.GetY(), 192, pdf.GetY())
	pdf.Ln(8)

	// Trip details.
	pdf.SetFont(family, "B", 15)
	pdf.SetTextColor(102, 126, 234)
	pdf.CellFormat(0, 8, "Trip Details", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	for _, dest := range itinerary.Destinations {
		s.renderDestination(pdf, family, dest)
	}

	// Hotels.
	if pdf.GetY() > sectionLimit {
		pdf.AddPage()
	}
	pdf.SetFont(family, "B", 15)
	pdf.SetTextColor(102, 126, 234)
	pdf.CellFormat(0, 8, "Recommended Hotels", "", 1, "L", false, 0, "")
	pdf.Ln(2)

	for _, hotel := range itinerary.Hotels {
		if pdf.GetY() > pageBreakY {
			pdf.AddPage()
		}
		pdf.SetFont(family, "B", 11)
		pdf.SetTextColor(51, 51, 51)
		pdf.CellFormat(0, 6, hotel.Name, "", 1, "L", false, 0, "")
		pdf.SetFont(family, "", 9)
		pdf.SetTextColor(102, 126, 234)
		pdf.CellFormat(0, 5, hotel.City, "", 1, "L", false, 0, "")
		pdf.SetTextColor(102, 102, 102)
		pdf.MultiCell(0, 5, hotel.Description, "", "L", false)
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Err: err}
	}
	if buf.Len() == 0 {
		return nil, &RenderError{Err: fmt.Errorf("renderer produced an empty document")}
	}

	s.logger.Info("itinerary pdf rendered",
		slog.String("title", itinerary.Title),
		slog.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}

func (s *ServiceImpl) renderDestination(pdf *gofpdf.Fpdf, family string, dest types.Destination) {
	pdf.SetFont(family, "BU", 13)
	pdf.SetTextColor(51, 51, 51)
	pdf.CellFormat(0, 7, fmt.Sprintf("%s, %s", dest.City, dest.Country), "", 1, "L", false, 0, "")
	pdf.Ln(1)

	pdf.SetFont(family, "", 10)
	pdf.SetTextColor(102, 102, 102)
	pdf.MultiCell(0, 5, dest.Description, "", "L", false)
	pdf.Ln(3)

	for _, day := range dest.Days {
		if pdf.GetY() > pageBreakY {
			pdf.AddPage()
		}

		pdf.SetFont(family, "B", 11)
		pdf.SetTextColor(102, 126, 234)
		pdf.CellFormat(0, 6, day.Date, "", 1, "L", false, 0, "")
		pdf.SetFont(family, "", 10)
		pdf.SetTextColor(51, 51, 51)
		pdf.CellFormat(0, 5, day.Title, "", 1, "L", false, 0, "")
		pdf.Ln(1)

		for _, act := range day.Activities {
			pdf.SetFont(family, "", 9)
			pdf.SetTextColor(51, 51, 51)
			pdf.CellFormat(0, 5, fmt.Sprintf("%s - %s", act.Time, act.Name), "", 1, "L", false, 0, "")
			pdf.SetFont(family, "", 8)
			pdf.SetTextColor(102, 102, 102)
			pdf.MultiCell(0, 4, fmt.Sprintf("    %s (%s)", act.Description, act.Duration), "", "L", false)
			pdf.Ln(1)
		}

		pdf.SetFont(family, "", 9)
		pdf.SetTextColor(255, 152, 0)
		pdf.CellFormat(0, 5, "Accommodation: "+day.Accommodation, "", 1, "L", false, 0, "")
		pdf.Ln(3)
	}

	pdf.Ln(2)
}

// registerFont loads the configured UTF-8 font for CJK content, falling back
// to the Helvetica core font when the file is unavailable.
func (s *ServiceImpl) registerFont(pdf *gofpdf.Fpdf) string {
	if s.fontPath == "" {
		return "Helvetica"
	}
	if _, err := os.Stat(s.fontPath); err != nil {
		s.logger.Warn("pdf font not found, using core font", slog.String("path", s.fontPath))
		return "Helvetica"
	}
	pdf.AddUTF8Font(fontFamily, "", s.fontPath)
	pdf.AddUTF8Font(fontFamily, "B", s.fontPath)
	if pdf.Err() {
		s.logger.Warn("pdf font registration failed, using core font", slog.String("path", s.fontPath))
		pdf.ClearError()
		return "Helvetica"
	}
	return fontFamily
}
