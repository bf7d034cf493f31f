package output

import (
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/ukaji3/dutyroster-go/pkg/dutyroster/models"
)

// pdfColumnWidths are the column widths in millimetres, in RecordHeaders order.
var pdfColumnWidths = []float64{45, 45, 50, 50}

const pdfRowHeight = 10

// WritePDF renders one teacher's records as a bordered table on an A4 page.
// Text is transcoded to cp1252; characters outside it are replaced.
func WritePDF(w io.Writer, title string, records []models.ScheduleRecord) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	if title != "" {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, pdfRowHeight, tr(title), "", 1, "L", false, 0, "")
	}

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(220, 220, 220)
	for i, h := range models.RecordHeaders {
		pdf.CellFormat(pdfColumnWidths[i], pdfRowHeight, tr(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	for _, rec := range records {
		for i, v := range rec.Values() {
			pdf.CellFormat(pdfColumnWidths[i], pdfRowHeight, tr(v), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}
