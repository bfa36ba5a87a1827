package exporting

import (
	"bytes"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
)

const (
	pdfLineHeight   = 7.0
	pdfBottomMargin = 15.0
)

// generatePDF desenha a tabela paginada. Toda célula passa pela
// transliteração porque a fonte core não cobre o alfabeto vietnamita.
func (s *Service) generatePDF(req Request, cells [][]string) ([]byte, error) {
	orientation := "P"
	if req.Orientation == OrientationLandscape {
		orientation = "L"
	}

	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.SetAutoPageBreak(false, pdfBottomMargin)
	pdf.AddPage()

	pageWidth, pageHeight := pdf.GetPageSize()
	leftMargin, _, rightMargin, _ := pdf.GetMargins()
	usableWidth := pageWidth - leftMargin - rightMargin

	widths := columnWidths(req.Columns, usableWidth)

	if req.Title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(usableWidth, 10, Transliterate(req.Title), "", 1, "C", false, 0, "")

		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		generated := "Ngay tao: " + time.Now().Format("02/01/2006 15:04")
		pdf.CellFormat(usableWidth, 5, generated, "", 1, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(3)
	}

	drawHeader := func() {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetFillColor(48, 84, 150)
		pdf.SetTextColor(255, 255, 255)

		for i, column := range req.Columns {
			pdf.CellFormat(widths[i], pdfLineHeight, Transliterate(column.Title), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Arial", "", 9)
		pdf.SetTextColor(0, 0, 0)
	}

	drawHeader()

	for rowIndex, row := range cells {
		if pdf.GetY()+pdfLineHeight > pageHeight-pdfBottomMargin {
			pdf.AddPage()
			drawHeader()
		}

		shaded := rowIndex%2 == 1
		if shaded {
			pdf.SetFillColor(235, 238, 245)
		}

		for i, value := range row {
			pdf.CellFormat(widths[i], pdfLineHeight, Transliterate(value), "1", 0, "L", shaded, 0, "")
		}
		pdf.Ln(-1)
	}

	var buffer bytes.Buffer
	if err := pdf.Output(&buffer); err != nil {
		return nil, errors.Wrapf(ErrGeneration, "pdf: %v", err)
	}

	return buffer.Bytes(), nil
}

// columnWidths reparte a largura útil da página. Larguras declaradas valem
// como proporção; as não declaradas recebem uma fatia padrão. O conjunto é
// escalado para ocupar a página inteira.
func columnWidths(columns []Column, usableWidth float64) []float64 {
	widths := make([]float64, len(columns))

	total := 0.0
	for i, column := range columns {
		width := column.Width
		if width <= 0 {
			width = 30
		}

		widths[i] = width
		total += width
	}

	scale := usableWidth / total
	for i := range widths {
		widths[i] *= scale
	}

	return widths
}
